// Package ai - /ask command
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/AstralStudios/GeminiBotGo/pkg/discord"
	"github.com/AstralStudios/GeminiBotGo/pkg/format"
	"github.com/AstralStudios/GeminiBotGo/pkg/gemini"
	"github.com/AstralStudios/GeminiBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// maxQuestionLength bounds /ask input to the Discord message limit
const maxQuestionLength = 2000

// askTimeout bounds the provider call for a single question
const askTimeout = 2 * time.Minute

// createAskCommand creates the /ask command
func createAskCommand() *discord.Command {
	return discord.NewCommand(
		"ask",
		"Hazle una pregunta a Gemini AI",
		"ai",
		askHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "question",
			Description: "La pregunta que quieres hacerle a la IA",
			Required:    true,
		},
	)
}

// askHandler handles the /ask command
func askHandler(ctx *discord.CommandContext) error {
	question := ctx.GetStringOption("question")

	if question == "" {
		return ctx.ReplyEphemeral("❌ Debes escribir una pregunta.")
	}
	if len(question) > maxQuestionLength {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ La pregunta es demasiado larga (máximo %d caracteres).", maxQuestionLength))
	}

	// Acknowledge before the slow provider call
	if err := ctx.Defer(); err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	answer, err := gemini.Get().Ask(callCtx, question)
	if err != nil {
		logger.Error(fmt.Sprintf("Error en /ask: %v", err), "AskCommand")
		return replyAIFailure(ctx, err)
	}

	chunks := format.Chunk(answer, format.EmbedDescriptionLimit)

	// First chunk edits the deferred response, the rest follow up
	first := discord.NewEmbed(discord.ColorPrimary, "🤖 GeminiAIBot - Respuesta de IA", chunks[0])
	discord.WithField(first, "❓ Pregunta", format.Truncate(question, format.FieldEchoLimit), false)
	discord.WithFooter(first, fmt.Sprintf("Solicitado por %s • %s", ctx.User().Username, discord.EmbedFooter))

	if err := ctx.EditReplyEmbed(first); err != nil {
		return err
	}

	for i, chunk := range chunks[1:] {
		followUp := discord.NewEmbed(discord.ColorPrimary, fmt.Sprintf("🤖 GeminiAIBot - Respuesta de IA (Parte %d)", i+2), chunk)
		discord.WithFooter(followUp, fmt.Sprintf("Solicitado por %s • %s", ctx.User().Username, discord.EmbedFooter))
		if err := ctx.FollowUpEmbed(followUp); err != nil {
			return err
		}
	}

	return nil
}

// replyAIFailure maps a classified provider failure to a user-facing embed
func replyAIFailure(ctx *discord.CommandContext, err error) error {
	kind := gemini.KindOf(err)

	embed := discord.ErrorEmbed("❌ Error de IA", kind.UserMessage())
	discord.WithField(embed, "🔧 Troubleshooting",
		"Si el problema persiste, intenta de nuevo en unos minutos o contacta al administrador del bot.", false)
	discord.WithFooter(embed, "")

	return ctx.EditReplyEmbed(embed)
}
