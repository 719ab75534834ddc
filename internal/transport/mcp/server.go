// Package mcp exposes the portfolio assistant as a Model Context Protocol
// tool over stdio.
package mcp

import (
	"context"
	"errors"
	"io"
	"os"

	mcpproto "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/internal/service/chat"
	"github.com/sandevgo/sensei/pkg/log"
)

const ToolName = "ask_portfolio"

type Asker interface {
	Ask(ctx context.Context, message, name string) (string, error)
}

type Server struct {
	mcp   *server.MCPServer
	asker Asker
	in    io.Reader
	out   io.Writer
}

func NewServer(asker Asker) *Server {
	s := &Server{
		mcp:   server.NewMCPServer(core.AgentName, core.AgentVersion, server.WithToolCapabilities(false)),
		asker: asker,
		in:    os.Stdin,
		out:   os.Stdout,
	}
	s.mcp.AddTool(askTool(), s.handleAsk)
	return s
}

func askTool() mcpproto.Tool {
	return mcpproto.NewTool(ToolName,
		mcpproto.WithDescription("Ask the portfolio assistant a question about the site owner's background, skills, certifications or projects."),
		mcpproto.WithString("message",
			mcpproto.Required(),
			mcpproto.Description("The visitor question"),
		),
		mcpproto.WithString("name",
			mcpproto.Description("Optional visitor name"),
		),
	)
}

// Start serves stdio until ctx is cancelled or the input closes.
func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("tool", ToolName).Msg("mcp stdio server started")
	stdio := server.NewStdioServer(s.mcp)
	err := stdio.Listen(ctx, s.in, s.out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) handleAsk(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	message, err := req.RequireString("message")
	if err != nil {
		return mcpproto.NewToolResultError(err.Error()), nil
	}
	name := req.GetString("name", "")

	answer, err := s.asker.Ask(ctx, message, name)
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return mcpproto.NewToolResultError(err.Error()), nil
	case err != nil:
		log.FromCtx(ctx).Error().Err(err).Msg("mcp ask failed")
		return mcpproto.NewToolResultError("internal error"), nil
	}
	return mcpproto.NewToolResultText(answer), nil
}
