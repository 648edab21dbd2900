package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"discord-mcp/internal/discord"
	"discord-mcp/internal/handler"
	mcpserver "discord-mcp/internal/server"
	"discord-mcp/pkg/config"
	"discord-mcp/pkg/logger"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatal("Failed to create Discord session", zap.Error(err))
	}

	// Required intents:
	// - IntentsGuilds: guild and channel enumeration for resolution
	// - IntentsGuildMessages: read messages in guild channels
	// - IntentMessageContent: message content in fetched history
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	// Open connection
	if err := dg.Open(); err != nil {
		log.Fatal("Failed to open Discord connection", zap.Error(err))
	}
	defer dg.Close()

	client := discord.NewGateway(dg)
	messagesHandler := handler.NewMessagesHandler(client, log)
	srv := mcpserver.New(messagesHandler)

	log.Info("Discord MCP server ready",
		zap.String("bot", client.BotUser().Username),
		zap.Int("guilds", len(client.Guilds())),
		zap.String("transport", cfg.Transport),
	)

	switch cfg.Transport {
	case config.TransportSSE:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := mcpserver.ServeSSE(ctx, srv, cfg.SSEAddr); err != nil {
			log.Fatal("SSE server failed", zap.Error(err))
		}
	default:
		// Stdio serves until the client closes stdin.
		if err := mcpserver.ServeStdio(srv); err != nil {
			log.Fatal("Stdio server failed", zap.Error(err))
		}
	}

	log.Info("Shutting down Discord MCP server...")
}
