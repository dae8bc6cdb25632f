// Package main is the entry point for the GeminiAIBot application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AstralStudios/GeminiBotGo/internal/commands"
	"github.com/AstralStudios/GeminiBotGo/internal/commands/ai"
	"github.com/AstralStudios/GeminiBotGo/internal/events"
	"github.com/AstralStudios/GeminiBotGo/pkg/banlist"
	"github.com/AstralStudios/GeminiBotGo/pkg/config"
	"github.com/AstralStudios/GeminiBotGo/pkg/database"
	"github.com/AstralStudios/GeminiBotGo/pkg/discord"
	"github.com/AstralStudios/GeminiBotGo/pkg/errors"
	"github.com/AstralStudios/GeminiBotGo/pkg/gemini"
	"github.com/AstralStudios/GeminiBotGo/pkg/logger"
	"github.com/AstralStudios/GeminiBotGo/pkg/mqtt"
	"github.com/AstralStudios/GeminiBotGo/pkg/tempfile"
	"github.com/AstralStudios/GeminiBotGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Required credentials; without them there is nothing to run
	if cfg.BotToken == "" {
		fmt.Println("botToken no está configurado. Define la variable de entorno botToken.")
		os.Exit(1)
	}
	if cfg.GeminiAPIKey == "" {
		fmt.Println("geminiApiKey no está configurado. Define la variable de entorno geminiApiKey.")
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando GeminiAIBot...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			_ = discordClient.Stop()
		}
	})

	// Initialize database (only when a MongoDB URL is configured)
	var db *database.Database
	if cfg.UsesMongo() {
		db, err = database.Init(cfg.MongoDBURL, cfg.DBName)
		if err != nil {
			logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
			// Continue without database - it will attempt to reconnect
		}
		defer func() {
			if db != nil {
				_ = db.Disconnect()
			}
		}()
	}

	// Pick the ban store: MongoDB when configured, JSON file otherwise
	var bans banlist.Repository
	if cfg.UsesMongo() && db != nil {
		bans = banlist.NewMongoRepository(db)
		logger.System("Usando lista de baneos en MongoDB", "Main")
	} else {
		bans = banlist.NewFileRepository(cfg.DataDir)
		logger.System("Usando lista de baneos en archivo JSON", "Main")
	}

	// Initialize MQTT
	mqttClientID := "geminibot"
	if !cfg.IsProd() {
		mqttClientID = "geminibot_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Initialize Gemini client
	geminiClient, err := gemini.Init(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Gemini client: %v", err), "Main")
		os.Exit(1)
	}
	defer geminiClient.Close()

	// Temp-file manager for generated images
	ai.SetTempManager(tempfile.NewManager(cfg.TempDir))

	// Initialize keep-alive web server
	webServer := web.Init()
	web.SetupRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken, bans)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Register commands using the commands package
	commands.RegisterAll(discordClient)

	// Register events using the events package
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func() {
		_ = discordClient.Stop()
	}()

	logger.Success("GeminiAIBot iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando GeminiAIBot...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
