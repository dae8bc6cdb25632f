// Package ai - /image command
package ai

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/AstralStudios/GeminiBotGo/pkg/discord"
	"github.com/AstralStudios/GeminiBotGo/pkg/format"
	"github.com/AstralStudios/GeminiBotGo/pkg/gemini"
	"github.com/AstralStudios/GeminiBotGo/pkg/logger"
	"github.com/AstralStudios/GeminiBotGo/pkg/tempfile"
	"github.com/bwmarrin/discordgo"
)

const (
	// maxPromptLength bounds the /image prompt
	maxPromptLength = 1000

	// imageTimeout bounds the provider call for one image
	imageTimeout = 3 * time.Minute

	// uploadGrace keeps the temp file on disk until Discord has fetched it
	uploadGrace = 60 * time.Second
)

var tempFiles *tempfile.Manager

// SetTempManager wires the temp-file manager used for generated images
func SetTempManager(m *tempfile.Manager) {
	tempFiles = m
}

// createImageCommand creates the /image command
func createImageCommand() *discord.Command {
	return discord.NewCommand(
		"image",
		"Genera una imagen con Gemini AI",
		"ai",
		imageHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "prompt",
			Description: "Descripción de la imagen que quieres generar",
			Required:    true,
		},
	)
}

// imageHandler handles the /image command
func imageHandler(ctx *discord.CommandContext) error {
	prompt := ctx.GetStringOption("prompt")

	if prompt == "" {
		return ctx.ReplyEphemeral("❌ Debes describir la imagen que quieres generar.")
	}
	if len(prompt) > maxPromptLength {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ El prompt es demasiado largo (máximo %d caracteres).", maxPromptLength))
	}

	// Local moderation runs before any provider call
	if keyword := gemini.DeniedKeyword(prompt); keyword != "" {
		logger.Warn(fmt.Sprintf("Prompt rechazado por moderación (%s): %s", keyword, ctx.User().ID), "ImageCommand")
		embed := discord.ErrorEmbed("🚫 Prompt Rechazado",
			"Tu descripción contiene contenido no permitido. Por favor usa un prompt apropiado.")
		discord.WithFooter(embed, "")
		return ctx.ReplyEphemeralEmbed(embed)
	}

	if err := ctx.Defer(); err != nil {
		return err
	}

	file, err := tempFiles.New("generated", "png")
	if err != nil {
		logger.Error(fmt.Sprintf("Error creando archivo temporal: %v", err), "ImageCommand")
		return replyImageFailure(ctx, err)
	}

	callCtx, cancel := context.WithTimeout(context.Background(), imageTimeout)
	defer cancel()

	if err := gemini.Get().GenerateImage(callCtx, prompt, file.Path); err != nil {
		file.Discard()
		logger.Error(fmt.Sprintf("Error en /image: %v", err), "ImageCommand")
		return replyImageFailure(ctx, err)
	}

	reader, err := os.Open(file.Path)
	if err != nil {
		file.Discard()
		logger.Error(fmt.Sprintf("Error abriendo imagen generada: %v", err), "ImageCommand")
		return replyImageFailure(ctx, err)
	}
	defer reader.Close()

	embed := discord.NewEmbed(discord.ColorAccent, "🎨 GeminiAIBot - Imagen Generada", "")
	discord.WithField(embed, "📝 Descripción", format.Truncate(prompt, format.FieldEchoLimit), false)
	discord.WithFooter(embed, fmt.Sprintf("Solicitado por %s • %s", ctx.User().Username, discord.EmbedFooter))
	embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + file.Name}

	attachment := &discordgo.File{
		Name:   file.Name,
		Reader: reader,
	}

	if err := ctx.EditReplyEmbedWithFile(embed, attachment); err != nil {
		file.Discard()
		return err
	}

	// The upload already happened; the file only needs to outlive the edit
	file.Release(uploadGrace)
	return nil
}

// replyImageFailure maps a classified provider failure to a user-facing embed
func replyImageFailure(ctx *discord.CommandContext, err error) error {
	kind := gemini.KindOf(err)

	embed := discord.ErrorEmbed("❌ Error Generando Imagen", kind.UserMessage())
	discord.WithField(embed, "💡 Tips",
		"Intenta con una descripción diferente, más específica o sin contenido sensible.", false)
	discord.WithFooter(embed, "")

	return ctx.EditReplyEmbed(embed)
}
