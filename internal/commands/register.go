// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (ai, mod, etc.)
package commands

import (
	"github.com/AstralStudios/GeminiBotGo/internal/commands/ai"
	"github.com/AstralStudios/GeminiBotGo/internal/commands/mod"
	"github.com/AstralStudios/GeminiBotGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Utility commands
	RegisterUtilCommands(client)

	// AI commands (/ask, /image, /sentiment)
	ai.RegisterAICommands(client)

	// Moderation commands (/ban, /unban, /banlist)
	mod.RegisterModCommands(client)
}
