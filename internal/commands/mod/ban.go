// Package mod - /ban command
package mod

import (
	"context"
	"errors"
	"fmt"

	"github.com/AstralStudios/GeminiBotGo/pkg/banlist"
	"github.com/AstralStudios/GeminiBotGo/pkg/config"
	"github.com/AstralStudios/GeminiBotGo/pkg/discord"
	"github.com/AstralStudios/GeminiBotGo/pkg/format"
	"github.com/AstralStudios/GeminiBotGo/pkg/logger"
	"github.com/AstralStudios/GeminiBotGo/pkg/mqtt"
	"github.com/AstralStudios/GeminiBotGo/pkg/permissions"
	"github.com/bwmarrin/discordgo"
)

const (
	// defaultBanReason is stored when the admin omits a reason
	defaultBanReason = "No se proporcionó razón"

	// maxReasonLength bounds the stored ban reason
	maxReasonLength = 500
)

// createBanCommand creates the /ban command
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Banea a un usuario del bot",
		"mod",
		banHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a banear del bot",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del baneo",
			Required:    false,
			MaxLength:   maxReasonLength,
		},
	).AsAdminOnly()
}

// banHandler handles the /ban command
func banHandler(ctx *discord.CommandContext) error {
	granted, err := requireAdmin(ctx, "ban")
	if !granted {
		return err
	}

	// Acknowledge before any store or API work
	if err := ctx.Defer(); err != nil {
		return err
	}

	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.EditReply("❌ Debes especificar un usuario.")
	}

	if user.Bot {
		return ctx.EditReply("❌ No puedes banear bots.")
	}

	// Admins cannot ban each other or the owner
	cfg := config.Get()
	if permissions.HasAdminPermission(cfg, user.ID) {
		return ctx.EditReply("❌ No puedes banear a otro administrador.")
	}

	reason := ctx.GetStringOption("razon")
	if reason == "" {
		reason = defaultBanReason
	}
	reason = format.Truncate(reason, maxReasonLength)

	storeCtx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	err = ctx.Client.Bans.Add(storeCtx, user.ID, user.Username, reason, ctx.User().ID)
	if errors.Is(err, banlist.ErrAlreadyBanned) {
		return ctx.EditReply(fmt.Sprintf("⚠️ **%s** ya está baneado.", user.Username))
	}
	if err != nil {
		logger.Error(fmt.Sprintf("Error baneando usuario %s: %v", user.ID, err), "BanCommand")
		embed := discord.ErrorEmbed("❌ Error", "No se pudo guardar el baneo. Inténtalo de nuevo.")
		discord.WithFooter(embed, ModEmbedFooter)
		return ctx.EditReplyEmbed(embed)
	}

	logger.Warn(fmt.Sprintf("Usuario %s (%s) baneado por %s: %s", user.Username, user.ID, ctx.User().ID, reason), "BanCommand")

	if p := mqtt.Get(); p != nil {
		p.PublishModeration(mqtt.ModerationEvent{
			Action:   "ban",
			UserID:   user.ID,
			Username: user.Username,
			Reason:   reason,
			By:       ctx.User().ID,
		})
	}

	embed := discord.NewEmbed(discord.ColorError, "🔨 Usuario Baneado",
		fmt.Sprintf("**%s** ya no puede usar el bot.", user.Username))
	discord.WithField(embed, "👤 Usuario", fmt.Sprintf("<@%s>", user.ID), true)
	discord.WithField(embed, "⚖️ Baneado por", fmt.Sprintf("<@%s>", ctx.User().ID), true)
	discord.WithField(embed, "📝 Razón", reason, false)
	discord.WithFooter(embed, ModEmbedFooter)

	return ctx.EditReplyEmbed(embed)
}
