// Package mod provides the ban moderation commands.
// Each command is in its own file for better organization
package mod

import (
	"fmt"
	"time"

	"github.com/AstralStudios/GeminiBotGo/pkg/config"
	"github.com/AstralStudios/GeminiBotGo/pkg/discord"
	"github.com/AstralStudios/GeminiBotGo/pkg/mqtt"
	"github.com/AstralStudios/GeminiBotGo/pkg/permissions"
)

// ModEmbedFooter is the footer shown on moderation embeds
const ModEmbedFooter = "GeminiAIBot - Sistema de Baneos"

// storeTimeout bounds every ban store operation from a command handler
const storeTimeout = 10 * time.Second

// RegisterModCommands registers all moderation commands
func RegisterModCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createBanCommand())
	client.CommandHandler.RegisterCommand(createUnbanCommand())
	client.CommandHandler.RegisterCommand(createBanlistCommand())
}

// requireAdmin gates a command on the owner/admin permission model.
// Every check is audited, granted or not. Returns false after replying
// when the caller lacks permission.
func requireAdmin(ctx *discord.CommandContext, command string) (bool, error) {
	cfg := config.Get()
	userID := ctx.User().ID

	granted := permissions.HasAdminPermission(cfg, userID)
	permissions.LogCheck(cfg, userID, command, granted)

	if p := mqtt.Get(); p != nil {
		p.PublishAudit(mqtt.AuditEvent{
			UserID:  userID,
			Command: command,
			Granted: granted,
		})
	}

	if !granted {
		embed := discord.ErrorEmbed("🚫 Permiso Denegado",
			fmt.Sprintf("No tienes permiso para usar `/%s`. Solo el owner y los administradores del bot pueden usar este comando.", command))
		discord.WithFooter(embed, ModEmbedFooter)
		return false, ctx.ReplyEphemeralEmbed(embed)
	}

	return true, nil
}
