// Package ai provides the AI commands backed by Gemini.
// Each command is in its own file for better organization
package ai

import (
	"github.com/AstralStudios/GeminiBotGo/pkg/config"
	"github.com/AstralStudios/GeminiBotGo/pkg/discord"
)

// RegisterAICommands registers the AI commands enabled by the feature flags
func RegisterAICommands(client *discord.ExtendedClient) {
	cfg := config.Get()

	client.CommandHandler.RegisterCommand(createAskCommand())

	if cfg.Features.ImageGeneration {
		client.CommandHandler.RegisterCommand(createImageCommand())
	}

	if cfg.Features.SentimentAnalysis {
		client.CommandHandler.RegisterCommand(createSentimentCommand())
	}
}
