// Package mod - /banlist command
package mod

import (
	"context"
	"fmt"
	"strings"

	"github.com/AstralStudios/GeminiBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// pageSize is how many records one /banlist page shows
const pageSize = 10

// createBanlistCommand creates the /banlist command
func createBanlistCommand() *discord.Command {
	return discord.NewCommand(
		"banlist",
		"Muestra la lista de usuarios baneados",
		"mod",
		banlistHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "pagina",
			Description: "Página a mostrar",
			Required:    false,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
		},
	).AsAdminOnly()
}

// banlistHandler handles the /banlist command
func banlistHandler(ctx *discord.CommandContext) error {
	granted, err := requireAdmin(ctx, "banlist")
	if !granted {
		return err
	}

	// Acknowledge before reading the store
	if err := ctx.Defer(); err != nil {
		return err
	}

	page := int(ctx.GetIntOption("pagina"))
	if page < 1 {
		page = 1
	}

	storeCtx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	records := ctx.Client.Bans.List(storeCtx)

	if len(records) == 0 {
		embed := discord.SuccessEmbed("📋 Lista de Baneos", "¡No hay usuarios baneados! 🎉")
		discord.WithFooter(embed, ModEmbedFooter)
		return ctx.EditReplyEmbed(embed)
	}

	totalPages := (len(records) + pageSize - 1) / pageSize
	if page > totalPages {
		return ctx.EditReply(fmt.Sprintf("❌ La página %d no existe. Solo hay %d página(s).", page, totalPages))
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}

	var lines strings.Builder
	for i, record := range records[start:end] {
		name := record.Username
		if name == "" {
			name = record.UserID
		}
		lines.WriteString(fmt.Sprintf("**%d.** %s (`%s`)\n└ 📝 %s • 📅 %s\n",
			start+i+1,
			name,
			record.UserID,
			record.Reason,
			record.BannedAt.Format("2006-01-02"),
		))
	}

	embed := discord.NewEmbed(discord.ColorWarning, "📋 Lista de Baneos", lines.String())
	discord.WithField(embed, "📊 Total", fmt.Sprintf("%d usuario(s) baneado(s)", len(records)), true)
	discord.WithField(embed, "📄 Página", fmt.Sprintf("%d de %d", page, totalPages), true)

	// First page also shows the most recent bans
	if page == 1 {
		stats := ctx.Client.Bans.Stats(storeCtx)
		if len(stats.Recent) > 0 {
			var recent strings.Builder
			for _, record := range stats.Recent {
				name := record.Username
				if name == "" {
					name = record.UserID
				}
				recent.WriteString(fmt.Sprintf("• %s (%s)\n", name, record.BannedAt.Format("2006-01-02")))
			}
			discord.WithField(embed, "🕒 Baneos recientes", recent.String(), false)
		}
	}

	discord.WithFooter(embed, ModEmbedFooter)

	return ctx.EditReplyEmbed(embed)
}
