// Package mod - /unban command
package mod

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/AstralStudios/GeminiBotGo/pkg/banlist"
	"github.com/AstralStudios/GeminiBotGo/pkg/discord"
	"github.com/AstralStudios/GeminiBotGo/pkg/logger"
	"github.com/AstralStudios/GeminiBotGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// Discord snowflakes are 17 to 19 digits
var snowflakePattern = regexp.MustCompile(`^\d{17,19}$`)

// createUnbanCommand creates the /unban command
func createUnbanCommand() *discord.Command {
	return discord.NewCommand(
		"unban",
		"Desbanea a un usuario del bot",
		"mod",
		unbanHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "userid",
			Description: "ID del usuario a desbanear",
			Required:    true,
		},
	).AsAdminOnly()
}

// unbanHandler handles the /unban command
func unbanHandler(ctx *discord.CommandContext) error {
	granted, err := requireAdmin(ctx, "unban")
	if !granted {
		return err
	}

	// Acknowledge before touching the store
	if err := ctx.Defer(); err != nil {
		return err
	}

	userID := ctx.GetStringOption("userid")

	if !snowflakePattern.MatchString(userID) {
		return ctx.EditReply("❌ ID de usuario inválido. Debe ser un ID de Discord (17-19 dígitos).")
	}

	storeCtx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	// Look up the record first so the confirmation can echo the ban details
	record, banned := ctx.Client.Bans.Find(storeCtx, userID)

	err = ctx.Client.Bans.Remove(storeCtx, userID, ctx.User().ID)
	if errors.Is(err, banlist.ErrNotBanned) {
		return ctx.EditReply("⚠️ Ese usuario no está baneado.")
	}
	if err != nil {
		logger.Error(fmt.Sprintf("Error desbaneando usuario %s: %v", userID, err), "UnbanCommand")
		embed := discord.ErrorEmbed("❌ Error", "No se pudo eliminar el baneo. Inténtalo de nuevo.")
		discord.WithFooter(embed, ModEmbedFooter)
		return ctx.EditReplyEmbed(embed)
	}

	username := ""
	if banned && record != nil {
		username = record.Username
	}
	logger.Info(fmt.Sprintf("Usuario %s (%s) desbaneado por %s", username, userID, ctx.User().ID), "UnbanCommand")

	if p := mqtt.Get(); p != nil {
		p.PublishModeration(mqtt.ModerationEvent{
			Action:   "unban",
			UserID:   userID,
			Username: username,
			By:       ctx.User().ID,
		})
	}

	embed := discord.SuccessEmbed("✅ Usuario Desbaneado",
		fmt.Sprintf("<@%s> puede volver a usar el bot.", userID))
	if banned && record != nil {
		if record.Username != "" {
			discord.WithField(embed, "👤 Usuario", record.Username, true)
		}
		if !record.BannedAt.IsZero() {
			discord.WithField(embed, "📅 Baneado el", record.BannedAt.Format("2006-01-02 15:04"), true)
		}
		if record.Reason != "" {
			discord.WithField(embed, "📝 Razón original", record.Reason, false)
		}
	}
	discord.WithFooter(embed, ModEmbedFooter)

	return ctx.EditReplyEmbed(embed)
}
