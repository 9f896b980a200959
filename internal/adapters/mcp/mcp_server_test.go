package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("nil result")
	}
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content[0] is %T, want mcp.TextContent", result.Content[0])
	}
	return tc.Text
}

func TestNewServer(t *testing.T) {
	s := NewServer()

	if s == nil {
		t.Fatal("NewServer() returned nil")
	}
	if s.server == nil {
		t.Error("NewServer() did not create MCP server")
	}
}

func TestServer_IsRunning(t *testing.T) {
	s := NewServer()

	if s.IsRunning() {
		t.Error("IsRunning() should return false before Start()")
	}
}

func TestServer_handleTranslateThought(t *testing.T) {
	s := NewServer()
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"text": "What if I fail the exam",
				"mood": "focus",
			},
		},
	}

	result, err := s.handleTranslateThought(context.Background(), request)
	if err != nil {
		t.Fatalf("handleTranslateThought() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("handleTranslateThought() returned error result: %s", textContent(t, result))
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(textContent(t, result)), &payload); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if got := payload["emotion"]; got != "Fear" {
		t.Errorf("emotion = %v, want Fear", got)
	}
	if got := payload["pattern"]; got != "Catastrophizing · Focus" {
		t.Errorf("pattern = %v, want Catastrophizing · Focus", got)
	}
}

func TestServer_handleTranslateThought_DefaultsToCalm(t *testing.T) {
	s := NewServer()
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"text": "I feel stuck",
			},
		},
	}

	result, err := s.handleTranslateThought(context.Background(), request)
	if err != nil {
		t.Fatalf("handleTranslateThought() error = %v", err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(textContent(t, result)), &payload); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if got := payload["mood"]; got != "calm" {
		t.Errorf("mood = %v, want calm", got)
	}
}

func TestServer_handleTranslateThought_MissingText(t *testing.T) {
	s := NewServer()
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{},
		},
	}

	result, err := s.handleTranslateThought(context.Background(), request)
	if err != nil {
		t.Fatalf("handleTranslateThought() error = %v", err)
	}
	if !result.IsError {
		t.Error("handleTranslateThought() should return error for missing text")
	}
}

func TestServer_handleTranslateThought_InvalidMood(t *testing.T) {
	s := NewServer()
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"text": "anything",
				"mood": "furious",
			},
		},
	}

	result, err := s.handleTranslateThought(context.Background(), request)
	if err != nil {
		t.Fatalf("handleTranslateThought() error = %v", err)
	}
	if !result.IsError {
		t.Error("handleTranslateThought() should return error for invalid mood")
	}
}

func TestServer_handleBuddyReply(t *testing.T) {
	s := NewServer()
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"text": "I always mess things up",
			},
		},
	}

	result, err := s.handleBuddyReply(context.Background(), request)
	if err != nil {
		t.Fatalf("handleBuddyReply() error = %v", err)
	}

	var payload map[string]string
	if err := json.Unmarshal([]byte(textContent(t, result)), &payload); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if !strings.Contains(payload["reply"], "five-minute version") {
		t.Errorf("reply = %q, want the shrink-it reply", payload["reply"])
	}
}

func TestServer_handleListTools(t *testing.T) {
	s := NewServer()

	result, err := s.handleListTools(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handleListTools() error = %v", err)
	}

	var payload struct {
		Tools      []map[string]string `json:"tools"`
		TotalCount int                 `json:"total_count"`
	}
	if err := json.Unmarshal([]byte(textContent(t, result)), &payload); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if payload.TotalCount != 8 {
		t.Errorf("total_count = %d, want 8", payload.TotalCount)
	}
}

func TestServer_handleListPatterns(t *testing.T) {
	s := NewServer()

	result, err := s.handleListPatterns(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handleListPatterns() error = %v", err)
	}

	var payload struct {
		Patterns []struct {
			Name string `json:"name"`
		} `json:"patterns"`
		TotalCount int `json:"total_count"`
	}
	if err := json.Unmarshal([]byte(textContent(t, result)), &payload); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if payload.TotalCount != 5 {
		t.Errorf("total_count = %d, want 5", payload.TotalCount)
	}
	if payload.Patterns[0].Name != "Mind Reading" {
		t.Errorf("patterns[0] = %q, want Mind Reading", payload.Patterns[0].Name)
	}
}

func TestServer_Stop(t *testing.T) {
	s := NewServer()

	// Stop before Start should not panic
	if err := s.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}
