// Copyright 2026 The Discordhook Authors
// SPDX-License-Identifier: MIT

// Package discord dispatches messages to a Discord channel through a
// webhook endpoint.
package discord

import "fmt"

// MessageType selects how message content is composed before dispatch.
type MessageType string

const (
	// TypeText sends the content as-is.
	TypeText MessageType = "text"
	// TypeMarkdown sends content that already carries Markdown syntax.
	// Discord renders Markdown natively in the content field, so the wire
	// payload is identical to text; the distinction exists for composition.
	TypeMarkdown MessageType = "markdown"
)

// Message is one outbound message. Created per invocation, never stored.
type Message struct {
	Content string
	Type    MessageType
}

// ParseMessageType maps a user-supplied type string to a MessageType.
// The empty string defaults to text. Anything else is a ValidationError.
func ParseMessageType(s string) (MessageType, error) {
	switch MessageType(s) {
	case "", TypeText:
		return TypeText, nil
	case TypeMarkdown:
		return TypeMarkdown, nil
	default:
		return "", &ValidationError{Reason: fmt.Sprintf("unsupported message type %q (supported: text, markdown)", s)}
	}
}

// composeContent produces the wire content for a message. The format
// decision is isolated here so the serialization step stays
// format-agnostic. Both supported types pass content through unchanged,
// since Discord renders Markdown natively in the content field.
func composeContent(_ MessageType, content string) string {
	return content
}

// webhookPayload is the JSON body Discord's webhook endpoint accepts.
// Only the content field is needed for plain messages.
type webhookPayload struct {
	Content string `json:"content"`
}
