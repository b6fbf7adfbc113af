// Copyright 2026 The Discordhook Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/davetashner/discordhook/internal/config"
	"github.com/davetashner/discordhook/internal/discord"
	"github.com/davetashner/discordhook/internal/mcpserver"
	"github.com/davetashner/discordhook/internal/redact"
)

// serveCmd runs the MCP server over stdio.
var serveCmd = &cobra.Command{
	Use:   "serve [webhook-url]",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing one tool:
  - send_message: post a text or markdown message to the Discord
    channel behind the configured webhook

The webhook URL may be given as the positional argument; otherwise it
is read from DISCORD_WEBHOOK_URL or the global config file. The server
refuses to start if no valid webhook URL can be resolved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	cfg, err := config.Resolve(arg)
	if err != nil {
		return exitError(ExitConfig, "discordhook: %v", err)
	}
	redact.Register(cfg.URL)

	sender := discord.NewSender(cfg)
	slog.Info("starting MCP server", "transport", "stdio", "tool", "send_message")

	return mcpserver.Run(cmd.Context(), Version, sender, &mcp.StdioTransport{})
}
