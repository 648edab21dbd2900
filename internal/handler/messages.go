// Package handler implements the MCP tool handlers for the Discord
// messaging operations.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"discord-mcp/internal/discord"
	apperrors "discord-mcp/pkg/errors"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// MessagesHandler handles the send/read/reply tool calls against one
// long-lived Discord client.
type MessagesHandler struct {
	client discord.Client
	logger *zap.Logger
}

// NewMessagesHandler creates a new messages handler
func NewMessagesHandler(client discord.Client, logger *zap.Logger) *MessagesHandler {
	return &MessagesHandler{
		client: client,
		logger: logger,
	}
}

// readMessage is one entry of the read-messages result payload.
type readMessage struct {
	Channel   string `json:"channel"`
	Server    string `json:"server"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// SendMessageHandler sends a message verbatim to a resolved channel.
func (h *MessagesHandler) SendMessageHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := h.invocationLogger("send-message")

	params, verr := parseSendParams(request)
	if verr != nil {
		log.Warn("Rejected send-message arguments", zap.Strings("violations", verr.Violations))
		return mcp.NewToolResultError(verr.Diagnostic()), nil
	}

	ch, guild, err := discord.ResolveChannel(h.client, params.channel, params.server)
	if err != nil {
		if apperrors.IsNotFound(err) {
			log.Info("Channel resolution failed", zap.String("channel", params.channel), zap.String("server", params.server))
			return mcp.NewToolResultText("Could not send message: " + apperrors.Diagnostic(err)), nil
		}
		log.Error("Channel resolution failed", zap.Error(err))
		return nil, err
	}

	sent, err := h.client.ChannelMessageSend(ch.ID, params.message)
	if err != nil {
		log.Error("Discord send failed", zap.String("channel_id", ch.ID), zap.Error(err))
		return nil, err
	}

	log.Info("Message sent",
		zap.String("channel_id", ch.ID),
		zap.String("message_id", sent.ID),
	)
	return mcp.NewToolResultText(fmt.Sprintf("Message sent to #%s in %s (message ID: %s)", ch.Name, guild.Name, sent.ID)), nil
}

// ReadMessagesHandler fetches recent messages from a resolved channel and
// returns them as a JSON-encoded list, newest first (the platform's native
// recency order).
func (h *MessagesHandler) ReadMessagesHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := h.invocationLogger("read-messages")

	params, verr := parseReadParams(request)
	if verr != nil {
		log.Warn("Rejected read-messages arguments", zap.Strings("violations", verr.Violations))
		return mcp.NewToolResultError(verr.Diagnostic()), nil
	}

	ch, guild, err := discord.ResolveChannel(h.client, params.channel, params.server)
	if err != nil {
		if apperrors.IsNotFound(err) {
			log.Info("Channel resolution failed", zap.String("channel", params.channel), zap.String("server", params.server))
			return mcp.NewToolResultText("Could not read messages: " + apperrors.Diagnostic(err)), nil
		}
		log.Error("Channel resolution failed", zap.Error(err))
		return nil, err
	}

	messages, err := h.client.ChannelMessages(ch.ID, params.limit, "", "", "")
	if err != nil {
		log.Error("Discord fetch failed", zap.String("channel_id", ch.ID), zap.Error(err))
		return nil, err
	}

	records := make([]readMessage, 0, len(messages))
	for _, msg := range messages {
		author := "unknown"
		if msg.Author != nil {
			author = msg.Author.String()
		}
		records = append(records, readMessage{
			Channel:   ch.Name,
			Server:    guild.Name,
			Author:    author,
			Content:   msg.Content,
			Timestamp: msg.Timestamp.Format(time.RFC3339),
		})
	}

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, err
	}

	log.Info("Messages read", zap.String("channel_id", ch.ID), zap.Int("count", len(records)))
	return mcp.NewToolResultText(string(payload)), nil
}

// ReplyHandler locates the most recent human message in the channel's
// conversation window and sends a threaded reply to it.
func (h *MessagesHandler) ReplyHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := h.invocationLogger("reply-to-conversation")

	params, verr := parseReplyParams(request)
	if verr != nil {
		log.Warn("Rejected reply-to-conversation arguments", zap.Strings("violations", verr.Violations))
		return mcp.NewToolResultError(verr.Diagnostic()), nil
	}

	ch, _, err := discord.ResolveChannel(h.client, params.channel, params.server)
	if err != nil {
		if apperrors.IsNotFound(err) {
			log.Info("Channel resolution failed", zap.String("channel", params.channel), zap.String("server", params.server))
			return mcp.NewToolResultText("Could not reply: " + apperrors.Diagnostic(err)), nil
		}
		log.Error("Channel resolution failed", zap.Error(err))
		return nil, err
	}

	conv, err := discord.FindLastUserMessage(h.client, ch.ID, h.client.BotUser().ID, params.contextSize)
	if err != nil {
		log.Error("Discord fetch failed", zap.String("channel_id", ch.ID), zap.Error(err))
		return nil, err
	}

	if conv.LastUserMessage == nil {
		log.Info("No user message in window", zap.String("channel_id", ch.ID), zap.Int("window", params.contextSize))
		return mcp.NewToolResultText(fmt.Sprintf(
			"Could not reply: no user message found in the last %d messages of #%s", params.contextSize, ch.Name)), nil
	}

	target := conv.LastUserMessage
	sent, err := h.client.ChannelMessageSendReply(ch.ID, params.message, target.Reference())
	if err != nil {
		log.Error("Discord reply failed", zap.String("channel_id", ch.ID), zap.String("target_id", target.ID), zap.Error(err))
		return nil, err
	}

	log.Info("Reply sent",
		zap.String("channel_id", ch.ID),
		zap.String("target_id", target.ID),
		zap.String("message_id", sent.ID),
	)
	return mcp.NewToolResultText(fmt.Sprintf(
		"Replied to %s in #%s (message ID: %s)\n\nConversation context:\n%s",
		target.Author.Username, ch.Name, sent.ID, discord.FormatTranscript(conv.Window))), nil
}

func (h *MessagesHandler) invocationLogger(tool string) *zap.Logger {
	return h.logger.With(
		zap.String("tool", tool),
		zap.String("invocation_id", uuid.NewString()),
	)
}
