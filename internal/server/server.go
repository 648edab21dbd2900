// Package server declares the MCP tool schemas and wires them to the
// message handlers.
package server

import (
	"context"
	"errors"
	"net/http"

	"discord-mcp/internal/handler"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"
)

const (
	// Name is the MCP server name advertised during initialization.
	Name = "discord-mcp"
	// Version is the MCP server version advertised during initialization.
	Version = "1.0.0"
)

// New builds the MCP server with the three messaging tools registered.
func New(h *handler.MessagesHandler) *server.MCPServer {
	s := server.NewMCPServer(Name, Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.AddTool(mcp.NewTool("send-message",
		mcp.WithDescription("Send a message to a Discord channel"),
		mcp.WithString("server",
			mcp.Description("Server name or ID (optional if bot is only in one server)"),
		),
		mcp.WithString("channel",
			mcp.Required(),
			mcp.Description("Channel name (e.g. \"general\") or ID"),
		),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("Message content to send"),
		),
	), h.SendMessageHandler)

	s.AddTool(mcp.NewTool("read-messages",
		mcp.WithDescription("Read recent messages from a Discord channel"),
		mcp.WithString("server",
			mcp.Description("Server name or ID (optional if bot is only in one server)"),
		),
		mcp.WithString("channel",
			mcp.Required(),
			mcp.Description("Channel name (e.g. \"general\") or ID"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of messages to fetch (default 50, max 100)"),
			mcp.DefaultNumber(handler.DefaultReadLimit),
			mcp.Min(1),
			mcp.Max(handler.MaxReadLimit),
		),
	), h.ReadMessagesHandler)

	s.AddTool(mcp.NewTool("reply-to-conversation",
		mcp.WithDescription("Reply to the most recent non-bot message in a Discord channel"),
		mcp.WithString("server",
			mcp.Description("Server name or ID (optional if bot is only in one server)"),
		),
		mcp.WithString("channel",
			mcp.Required(),
			mcp.Description("Channel name (e.g. \"general\") or ID"),
		),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("Reply content to send"),
		),
		mcp.WithNumber("contextSize",
			mcp.Description("Number of recent messages to scan for the reply target (default 25, max 50)"),
			mcp.DefaultNumber(handler.DefaultContextSize),
			mcp.Min(1),
			mcp.Max(handler.MaxContextSize),
		),
	), h.ReplyHandler)

	return s
}

// ServeStdio serves the MCP server over stdin/stdout until EOF.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// ServeSSE serves the MCP server over SSE on addr until ctx is cancelled.
func ServeSSE(ctx context.Context, s *server.MCPServer, addr string) error {
	sse := server.NewSSEServer(s)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := sse.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return sse.Shutdown(context.Background())
	})
	return g.Wait()
}
