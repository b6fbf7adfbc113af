package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/discordhook/internal/discord"
	"github.com/davetashner/discordhook/internal/redact"
)

// SendMessageInput is the input schema for the send_message MCP tool.
type SendMessageInput struct {
	Content string `json:"content" jsonschema:"Message content to post to the Discord channel"`
	MsgType string `json:"msg_type,omitempty" jsonschema:"Message type: text or markdown (default: text)"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds the send_message tool to the MCP server.
func registerTools(server *mcp.Server, sender *discord.Sender) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "send_message",
		Description: "Send a message to the configured Discord channel via webhook. Supports text and markdown formats (Discord renders markdown natively).",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    false,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, handleSendMessage(sender))
}

// handleSendMessage builds the tool handler around the dispatcher. Every
// failure is returned as a tool-call error with redacted text; nothing here
// can take the server process down.
func handleSendMessage(sender *discord.Sender) func(context.Context, *mcp.CallToolRequest, SendMessageInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SendMessageInput) (*mcp.CallToolResult, any, error) {
		msgType, err := discord.ParseMessageType(input.MsgType)
		if err != nil {
			return nil, nil, err
		}

		msg := discord.Message{Content: input.Content, Type: msgType}
		if err := sender.Send(ctx, msg); err != nil {
			// The webhook URL can appear in transport errors; strip it
			// before the text crosses the MCP boundary.
			return nil, nil, errors.New(redact.String(err.Error()))
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: "message sent"},
			},
		}, nil, nil
	}
}
