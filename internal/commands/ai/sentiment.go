// Package ai - /sentiment command
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AstralStudios/GeminiBotGo/pkg/discord"
	"github.com/AstralStudios/GeminiBotGo/pkg/format"
	"github.com/AstralStudios/GeminiBotGo/pkg/gemini"
	"github.com/AstralStudios/GeminiBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// sentimentTimeout bounds the provider call for one analysis
const sentimentTimeout = 2 * time.Minute

// createSentimentCommand creates the /sentiment command
func createSentimentCommand() *discord.Command {
	return discord.NewCommand(
		"sentiment",
		"Analiza el sentimiento de un texto",
		"ai",
		sentimentHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "text",
			Description: "El texto a analizar",
			Required:    true,
		},
	)
}

// sentimentHandler handles the /sentiment command
func sentimentHandler(ctx *discord.CommandContext) error {
	text := ctx.GetStringOption("text")

	if text == "" {
		return ctx.ReplyEphemeral("❌ Debes escribir un texto para analizar.")
	}
	if len(text) > maxQuestionLength {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ El texto es demasiado largo (máximo %d caracteres).", maxQuestionLength))
	}

	if err := ctx.Defer(); err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(context.Background(), sentimentTimeout)
	defer cancel()

	result, err := gemini.Get().AnalyzeSentiment(callCtx, text)
	if err != nil {
		logger.Error(fmt.Sprintf("Error en /sentiment: %v", err), "SentimentCommand")
		return replyAIFailure(ctx, err)
	}

	stars := int(result.Rating + 0.5)
	if stars < 1 {
		stars = 1
	}
	if stars > 5 {
		stars = 5
	}

	embed := discord.NewEmbed(discord.ColorPrimary, "📊 GeminiAIBot - Análisis de Sentimiento", result.Summary)
	discord.WithField(embed, "⭐ Calificación",
		fmt.Sprintf("%s (%.1f/5)", strings.Repeat("⭐", stars), result.Rating), true)
	discord.WithField(embed, "🎯 Confianza", fmt.Sprintf("%.0f%%", result.Confidence*100), true)
	discord.WithField(embed, "📝 Texto", format.Truncate(text, format.FieldEchoLimit), false)
	discord.WithFooter(embed, fmt.Sprintf("Solicitado por %s • %s", ctx.User().Username, discord.EmbedFooter))

	return ctx.EditReplyEmbed(embed)
}
