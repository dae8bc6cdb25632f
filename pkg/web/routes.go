// Package web provides API routes for the keep-alive server.
package web

import (
	"net/http"
	"time"

	"github.com/AstralStudios/GeminiBotGo/pkg/database"
	"github.com/AstralStudios/GeminiBotGo/pkg/discord"
	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up the keep-alive and API routes
func SetupRoutes(s *Server) {
	s.GET("/", keepAliveHandler)
	s.GET("/status", uptimeHandler)

	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
	}
}

// keepAliveHandler answers uptime pings with a plain text banner
func keepAliveHandler(c *gin.Context) {
	c.String(http.StatusOK, "GeminiAIBot está en línea 🤖 | Bot Status: Active")
}

// uptimeHandler reports readiness and uptime for monitoring services
func uptimeHandler(c *gin.Context) {
	client := discord.Get()

	status := "offline"
	uptime := time.Duration(0)
	if client != nil && client.IsReady() {
		status = "online"
		uptime = time.Since(client.StartTime)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"bot":       "GeminiAIBot",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    uptime.Round(time.Second).String(),
	})
}

// statusHandler returns the bot and database status
func statusHandler(c *gin.Context) {
	db := database.Get()
	client := discord.Get()

	dbStatus, dbOnline := db.GetStatus()

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
		},
		"bot": gin.H{
			"isOnline": botOnline,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "GeminiAIBot is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "El bot no está disponible en este momento.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"avatar":   user.Avatar,
		"guilds":   client.GuildCount(),
		"isReady":  client.IsReady(),
	})
}
