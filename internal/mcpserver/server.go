// Copyright 2026 The Discordhook Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes Discord webhook dispatch as a tool over stdio transport.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/discordhook/internal/discord"
)

// New creates a new MCP server with the send_message tool registered
// against the given sender.
func New(version string, sender *discord.Sender) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "discordhook",
		Title:   "Discordhook — Discord Webhook Bridge",
		Version: version,
	}, nil)

	registerTools(server, sender)
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, sender *discord.Sender, transport mcp.Transport) error {
	server := New(version, sender)
	return server.Run(ctx, transport)
}
