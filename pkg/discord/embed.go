package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Discord color scheme used across all embeds
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorSuccess = 0x57F287 // Discord green
	ColorError   = 0xED4245 // Discord red
	ColorWarning = 0xFEE75C // Discord yellow
	ColorAccent  = 0xEB459E // Discord pink
)

// EmbedFooter is the footer text shown on bot embeds
const EmbedFooter = "GeminiAIBot"

// NewEmbed creates a timestamped embed with the given color
func NewEmbed(color int, title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// ErrorEmbed creates an error embed
func ErrorEmbed(title, description string) *discordgo.MessageEmbed {
	return NewEmbed(ColorError, title, description)
}

// SuccessEmbed creates a success embed
func SuccessEmbed(title, description string) *discordgo.MessageEmbed {
	return NewEmbed(ColorSuccess, title, description)
}

// WithField appends an inline or block field to an embed
func WithField(embed *discordgo.MessageEmbed, name, value string, inline bool) *discordgo.MessageEmbed {
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return embed
}

// WithFooter sets the standard bot footer with optional extra text
func WithFooter(embed *discordgo.MessageEmbed, text string) *discordgo.MessageEmbed {
	if text == "" {
		text = EmbedFooter
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: text}
	return embed
}
