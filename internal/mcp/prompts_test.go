package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fenwick-labs/rulekit/internal/templates"
)

func testRules() []templates.Rule {
	return []templates.Rule{
		{Name: "000-core", File: "000-core.mdc", Description: "core principles", Body: "core body\n"},
		{Name: "300-testing", File: "300-testing.mdc", Description: "testing", Body: "testing body\n"},
	}
}

func TestRunPromptServerNilRunner(t *testing.T) {
	err := runPromptServer(context.Background(), "1.0.0", testRules(), nil)
	if err == nil || !strings.Contains(err.Error(), "runner is nil") {
		t.Fatalf("expected nil-runner error, got %v", err)
	}
}

func TestRunPromptServerWrapsRunnerError(t *testing.T) {
	runner := func(ctx context.Context, server *mcp.Server) error {
		return errors.New("transport closed")
	}
	err := runPromptServer(context.Background(), "1.0.0", testRules(), runner)
	if err == nil || !strings.Contains(err.Error(), "transport closed") {
		t.Fatalf("expected wrapped runner error, got %v", err)
	}
}

func TestRunPromptServerRegistersRulePrompts(t *testing.T) {
	var captured *mcp.Server
	runner := func(ctx context.Context, server *mcp.Server) error {
		captured = server
		return nil
	}
	if err := runPromptServer(context.Background(), "1.0.0", testRules(), runner); err != nil {
		t.Fatalf("runPromptServer error: %v", err)
	}
	if captured == nil {
		t.Fatalf("runner was not invoked")
	}
}

func TestPromptHandlerReturnsRuleBody(t *testing.T) {
	rule := testRules()[0]
	handler := promptHandler(rule)

	result, err := handler(context.Background(), &mcp.GetPromptRequest{})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.Description != rule.Description {
		t.Fatalf("unexpected description %q", result.Description)
	}
	if len(result.Messages) != 1 {
		t.Fatalf("expected one message, got %d", len(result.Messages))
	}
	content, ok := result.Messages[0].Content.(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Messages[0].Content)
	}
	if content.Text != rule.Body {
		t.Fatalf("unexpected prompt body %q", content.Text)
	}
}

func TestRunPromptServerCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Exercises the real stdio runner; a canceled context makes it return
	// promptly whether or not it reports the cancellation as an error.
	_ = RunPromptServer(ctx, "1.0.0", testRules())
}
