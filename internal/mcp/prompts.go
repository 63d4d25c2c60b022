// Package mcp serves the bundled rule documents to MCP clients.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fenwick-labs/rulekit/internal/messages"
	"github.com/fenwick-labs/rulekit/internal/templates"
)

type promptServerRunner func(ctx context.Context, server *mcp.Server) error

// RunPromptServer starts an MCP prompt server over stdio, exposing every
// bundled rule document as a prompt.
func RunPromptServer(ctx context.Context, version string, rules []templates.Rule) error {
	return runPromptServer(ctx, version, rules, defaultPromptServerRunner)
}

// runPromptServer builds the MCP prompt server and runs it using the provided runner.
func runPromptServer(ctx context.Context, version string, rules []templates.Rule, runner promptServerRunner) error {
	if runner == nil {
		return fmt.Errorf(messages.McpRunPromptServerFailedFmt, errors.New("prompt server runner is nil"))
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "rulekit",
		Version: version,
	}, nil)

	for _, rule := range rules {
		rule := rule
		prompt := &mcp.Prompt{
			Name:        rule.Name,
			Description: rule.Description,
		}
		server.AddPrompt(prompt, promptHandler(rule))
	}

	if err := runner(ctx, server); err != nil {
		return fmt.Errorf(messages.McpRunPromptServerFailedFmt, err)
	}

	return nil
}

// defaultPromptServerRunner runs the MCP prompt server over stdio.
func defaultPromptServerRunner(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func promptHandler(rule templates.Rule) func(context.Context, *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Description: rule.Description,
			Messages: []*mcp.PromptMessage{
				{
					Role:    "user",
					Content: &mcp.TextContent{Text: rule.Body},
				},
			},
		}, nil
	}
}
