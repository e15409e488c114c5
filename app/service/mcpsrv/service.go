package mcpsrv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"heartline/app/client/heart"
	"heartline/app/config"
	"heartline/app/service/decision"
	"heartline/app/service/engine"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/do"
)

// Service exposes the decision entry point as an MCP stdio tool so an LLM
// chat host can ask for a weather remark on each conversational turn.
type Service struct {
	cfg       *config.Config
	engineSvc *engine.Service

	mcpServer *server.MCPServer
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		cfg:       do.MustInvoke[*config.Config](di),
		engineSvc: do.MustInvoke[*engine.Service](di),
	}

	mcpServer := server.NewMCPServer("heartline", "1.0.0")

	tool := mcp.NewTool("maybe_weather_line",
		mcp.WithDescription("Decide whether the persona drops a weather remark this turn; returns the line or nothing"),
		mcp.WithString("persona",
			mcp.Required(),
			mcp.Description("Persona id: arisa or konatsu"),
		),
		mcp.WithBoolean("session_start",
			mcp.Description("Set on the first turn of a session"),
		),
	)

	mcpServer.AddTool(tool, s.handleMaybeWeatherLine)

	s.mcpServer = mcpServer

	return s, nil
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	stdioServer := server.NewStdioServer(s.mcpServer)

	if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp stdio server failed: %w", err)
	}

	return nil
}

func (s *Service) handleMaybeWeatherLine(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	persona, err := request.RequireString("persona")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sessionStart := request.GetBool("session_start", false)

	result, err := s.engineSvc.HandleTurn(ctx, heart.Persona(persona), decision.Options{
		SessionStart: sessionStart,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal turn result: %w", err)
	}

	return mcp.NewToolResultText(string(payload)), nil
}
