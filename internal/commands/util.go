// Package commands provides utility commands for the bot.
package commands

import (
	"fmt"
	"time"

	"github.com/AstralStudios/GeminiBotGo/pkg/config"
	"github.com/AstralStudios/GeminiBotGo/pkg/database"
	"github.com/AstralStudios/GeminiBotGo/pkg/discord"
)

// RegisterUtilCommands registers all utility commands
func RegisterUtilCommands(client *discord.ExtendedClient) {
	// Ping command
	pingCmd := discord.NewCommand(
		"ping",
		"Comprueba la latencia del bot",
		"util",
		func(ctx *discord.CommandContext) error {
			latency := ctx.Client.Session.HeartbeatLatency().Milliseconds()
			return ctx.Reply(fmt.Sprintf("🏓 Pong! Latencia: %dms", latency))
		},
	)
	client.CommandHandler.RegisterCommand(pingCmd)

	// Status command
	statusCmd := discord.NewCommand(
		"status",
		"Muestra el estado del bot",
		"util",
		func(ctx *discord.CommandContext) error {
			db := database.Get()
			dbStatus, _ := db.GetStatus()
			uptime := time.Since(ctx.Client.StartTime).Round(time.Second)

			embed := discord.NewEmbed(discord.ColorPrimary, "📊 Estado del Bot", "")
			discord.WithField(embed, "🤖 Bot", "🟢 Online", true)
			discord.WithField(embed, "🗄️ Base de datos", dbStatus, true)
			discord.WithField(embed, "🌐 Servidores", fmt.Sprintf("%d", ctx.Client.GuildCount()), true)
			discord.WithField(embed, "⏱️ Uptime", uptime.String(), true)
			discord.WithField(embed, "📦 Versión", config.Version, true)
			discord.WithFooter(embed, "")

			return ctx.ReplyEmbed(embed)
		},
	)
	client.CommandHandler.RegisterCommand(statusCmd)

	// Help command
	helpCmd := discord.NewCommand(
		"help",
		"Muestra información de ayuda",
		"util",
		func(ctx *discord.CommandContext) error {
			cfg := config.Get()

			embed := discord.NewEmbed(discord.ColorPrimary, "📖 Ayuda de GeminiAIBot",
				"Soy un bot impulsado por Gemini AI. Estos son mis comandos:")

			aiCommands := "• `/ask <question>` - Hazle una pregunta a la IA"
			if cfg.Features.ImageGeneration {
				aiCommands += "\n• `/image <prompt>` - Genera una imagen"
			}
			if cfg.Features.SentimentAnalysis {
				aiCommands += "\n• `/sentiment <text>` - Analiza el sentimiento de un texto"
			}
			discord.WithField(embed, "🤖 IA", aiCommands, false)

			discord.WithField(embed, "🔨 Moderación (solo admins)",
				"• `/ban <usuario> [razon]` - Banea a un usuario del bot\n"+
					"• `/unban <userid>` - Desbanea a un usuario\n"+
					"• `/banlist [pagina]` - Lista de usuarios baneados", false)

			discord.WithField(embed, "🔧 Utilidad",
				"• `/ping` - Comprueba la latencia\n"+
					"• `/status` - Estado del bot\n"+
					"• `/help` - Este mensaje", false)

			discord.WithFooter(embed, "")
			return ctx.ReplyEmbed(embed)
		},
	)
	client.CommandHandler.RegisterCommand(helpCmd)
}
