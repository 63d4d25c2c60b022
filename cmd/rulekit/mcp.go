package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fenwick-labs/rulekit/internal/mcp"
	"github.com/fenwick-labs/rulekit/internal/messages"
	"github.com/fenwick-labs/rulekit/internal/templates"
)

var mcpRun = func(ctx context.Context, version string, rules []templates.Rule) error {
	return mcp.RunPromptServer(ctx, version, rules)
}

func newMcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.McpUse,
		Short: messages.McpShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := templates.Rules()
			if err != nil {
				return err
			}
			return mcpRun(cmd.Context(), Version, rules)
		},
	}
}
