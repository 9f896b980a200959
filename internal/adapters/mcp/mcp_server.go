// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xvela/reframe/internal/classify"
	"github.com/xvela/reframe/internal/domain"
)

// Server implements the MCP server using mark3labs/mcp-go. All exposed
// tools wrap the deterministic translation engine, so results are
// reproducible for the same input.
type Server struct {
	server *server.MCPServer
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new MCP server instance.
func NewServer() *Server {
	s := &Server{}

	s.server = server.NewMCPServer(
		"reframe",
		"1.0.0",
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	// Tool: translate_thought
	translateTool := mcp.NewTool(
		"translate_thought",
		mcp.WithDescription("Translate an anxious thought into a calmer reading with a matched pattern, reframe, and one small step"),
		mcp.WithString(
			"text",
			mcp.Required(),
			mcp.Description("The anxious thought to translate"),
		),
		mcp.WithString(
			"mood",
			mcp.Description("Tone preset for the translation: calm, focus, confidence (default: calm)"),
			mcp.Enum("calm", "focus", "confidence"),
		),
	)
	s.server.AddTool(translateTool, s.handleTranslateThought)

	// Tool: buddy_reply
	buddyTool := mcp.NewTool(
		"buddy_reply",
		mcp.WithDescription("Get the supportive buddy's reply to a message"),
		mcp.WithString(
			"text",
			mcp.Required(),
			mcp.Description("The message to reply to"),
		),
	)
	s.server.AddTool(buddyTool, s.handleBuddyReply)

	// Tool: list_tools
	s.server.AddTool(
		mcp.NewTool(
			"list_tools",
			mcp.WithDescription("List the available self-help tools with their titles and subtitles"),
		),
		s.handleListTools,
	)

	// Tool: list_patterns
	s.server.AddTool(
		mcp.NewTool(
			"list_patterns",
			mcp.WithDescription("List the thought patterns the translator can recognize, in matching priority order"),
		),
		s.handleListPatterns,
	)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// handleTranslateThought handles the translate_thought tool.
func (s *Server) handleTranslateThought(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text is required: " + err.Error()), nil
	}

	mood := domain.MoodCalm
	if raw := request.GetString("mood", ""); raw != "" {
		mood, err = domain.ValidateMood(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid mood %q: must be calm, focus, or confidence", raw)), nil
		}
	}

	result := classify.Classify(text, mood)

	payload := map[string]interface{}{
		"mood":           string(result.Mood),
		"original_text":  result.OriginalText,
		"emotion":        result.EmotionLabel,
		"pattern":        result.PatternTag,
		"translation":    result.ReadableTranslation,
		"why":            result.Why,
		"reframe":        result.Reframe,
		"one_small_step": result.OneSmallStep,
	}

	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal translation: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleBuddyReply handles the buddy_reply tool.
func (s *Server) handleBuddyReply(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text is required: " + err.Error()), nil
	}

	payload := map[string]interface{}{
		"reply": classify.Reply(text),
	}

	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reply: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleListTools handles the list_tools tool.
func (s *Server) handleListTools(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var tools []map[string]interface{}
	for _, info := range domain.AllTools() {
		tools = append(tools, map[string]interface{}{
			"id":       string(info.Tool),
			"title":    info.Title,
			"subtitle": info.Subtitle,
		})
	}

	result := map[string]interface{}{
		"tools":       tools,
		"total_count": len(tools),
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tools: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleListPatterns handles the list_patterns tool.
func (s *Server) handleListPatterns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var patterns []map[string]interface{}
	for _, p := range classify.Patterns() {
		patterns = append(patterns, map[string]interface{}{
			"name":     p.Name,
			"emotion":  p.Emotion,
			"keywords": p.Keywords,
		})
	}

	result := map[string]interface{}{
		"patterns":    patterns,
		"total_count": len(patterns),
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patterns: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}
