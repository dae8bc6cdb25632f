package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestReplyEphemeralEmbedExists verifies that the ReplyEphemeralEmbed method exists
// and has the correct signature (compile-time check)
func TestReplyEphemeralEmbedExists(t *testing.T) {
	type replyEphemeralEmbedFunc func(*CommandContext, *discordgo.MessageEmbed) error

	var _ replyEphemeralEmbedFunc = (*CommandContext).ReplyEphemeralEmbed

	t.Log("✅ ReplyEphemeralEmbed method exists with correct signature")
}

// TestCommandCreation verifies that commands can be created with the builder pattern
func TestCommandCreation(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("ask", "Pregunta a la IA", "ai", handler)

	if cmd == nil {
		t.Fatal("NewCommand returned nil")
	}

	if cmd.Name != "ask" {
		t.Errorf("Name = %v, want %v", cmd.Name, "ask")
	}

	if cmd.Description != "Pregunta a la IA" {
		t.Errorf("Description = %v, want %v", cmd.Description, "Pregunta a la IA")
	}

	if cmd.Category != "ai" {
		t.Errorf("Category = %v, want %v", cmd.Category, "ai")
	}

	if cmd.Run == nil {
		t.Error("Run function is nil")
	}
}

// TestCommandWithOptions verifies the WithOptions builder method
func TestCommandWithOptions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "question",
		Description: "La pregunta",
		Required:    true,
	}

	cmd := NewCommand("ask", "Pregunta a la IA", "ai", handler).
		WithOptions(option)

	if cmd.Options == nil {
		t.Fatal("Options is nil")
	}

	if len(cmd.Options) != 1 {
		t.Fatalf("Options length = %v, want %v", len(cmd.Options), 1)
	}

	if cmd.Options[0].Name != "question" {
		t.Errorf("Option name = %v, want %v", cmd.Options[0].Name, "question")
	}
}

// TestCommandAsAdminOnly verifies the AsAdminOnly builder method
func TestCommandAsAdminOnly(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("ban", "Banea a un usuario", "mod", handler).AsAdminOnly()

	if !cmd.AdminOnly {
		t.Error("AdminOnly should be true after calling AsAdminOnly()")
	}
}

// TestCommandAsDev verifies the AsDev builder method
func TestCommandAsDev(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("debug", "Comando de desarrollo", "dev", handler).AsDev()

	if !cmd.IsDev {
		t.Error("IsDev should be true after calling AsDev()")
	}
}

// TestToApplicationCommand verifies conversion to Discord application command
func TestToApplicationCommand(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "prompt",
		Description: "Descripción de la imagen",
		Required:    true,
	}

	cmd := NewCommand("image", "Genera una imagen", "ai", handler).
		WithOptions(option)

	appCmd := cmd.ToApplicationCommand()

	if appCmd == nil {
		t.Fatal("ToApplicationCommand returned nil")
	}

	if appCmd.Name != "image" {
		t.Errorf("ApplicationCommand Name = %v, want %v", appCmd.Name, "image")
	}

	if len(appCmd.Options) != 1 {
		t.Fatalf("ApplicationCommand Options length = %v, want %v", len(appCmd.Options), 1)
	}
}

// TestCommandCollection verifies the command collection operations
func TestCommandCollection(t *testing.T) {
	cc := NewCommandCollection()

	if cc.Size() != 0 {
		t.Errorf("Size() = %v, want 0", cc.Size())
	}

	cmd := NewCommand("ping", "Latencia del bot", "util", func(ctx *CommandContext) error {
		return nil
	})
	cc.Set(cmd.Name, cmd)

	if cc.Size() != 1 {
		t.Errorf("Size() = %v, want 1", cc.Size())
	}

	got, ok := cc.Get("ping")
	if !ok || got == nil {
		t.Fatal("Get(\"ping\") should return the registered command")
	}
	if got.Name != "ping" {
		t.Errorf("Name = %v, want %v", got.Name, "ping")
	}

	if _, ok := cc.Get("missing"); ok {
		t.Error("Get(\"missing\") should report not found")
	}
}
