package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/AstralStudios/GeminiBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// BanMiddleware verifica si el usuario está baneado antes de ejecutar comandos
func (c *ExtendedClient) BanMiddleware(ctx *CommandContext) error {
	if c.Bans == nil {
		return nil
	}

	userID := ctx.User().ID

	lookupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	record, banned := c.Bans.Find(lookupCtx, userID)
	if !banned || record == nil {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🚫 Acceso Denegado",
		Description: "Has sido baneado y no puedes usar este bot.",
		Color:       ColorError,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: EmbedFooter},
	}

	if record.Reason != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Razón",
			Value: record.Reason,
		})
	}
	if !record.BannedAt.IsZero() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Fecha",
			Value: record.BannedAt.Format("2006-01-02 15:04"),
		})
	}

	if replyErr := ctx.ReplyEphemeralEmbed(embed); replyErr != nil {
		logger.Error(fmt.Sprintf("Error respondiendo a usuario baneado: %v", replyErr), "BanMiddleware")
	}

	logger.Warn(fmt.Sprintf("Usuario baneado intentó usar comando: %s", userID), "BanMiddleware")
	return fmt.Errorf("user is banned")
}
