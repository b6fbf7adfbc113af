// Copyright 2026 The Discordhook Authors
// SPDX-License-Identifier: MIT

package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/davetashner/discordhook/internal/config"
)

const (
	// defaultTimeout bounds each outbound request.
	defaultTimeout = 10 * time.Second

	// defaultRetryDelay is the fixed pause before the single retry.
	defaultRetryDelay = 500 * time.Millisecond

	// bodyExcerptLimit caps how much of a Discord error response is kept
	// for the error detail.
	bodyExcerptLimit = 1024

	// maxAttempts is the initial attempt plus one retry on transient
	// failure. 4xx responses are never retried.
	maxAttempts = 2
)

// Sender dispatches messages to a single webhook endpoint. It holds no
// mutable state; concurrent Send calls are independent.
type Sender struct {
	url        string
	client     *http.Client
	sleep      func(time.Duration)
	retryDelay time.Duration
}

// Option adjusts a Sender. Used by tests to inject a fake HTTP client and
// an instant sleep.
type Option func(*Sender)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Sender) { s.client = c }
}

// WithSleep replaces the function used to pause before the retry.
func WithSleep(fn func(time.Duration)) Option {
	return func(s *Sender) { s.sleep = fn }
}

// WithRetryDelay changes the fixed delay before the retry.
func WithRetryDelay(d time.Duration) Option {
	return func(s *Sender) { s.retryDelay = d }
}

// NewSender creates a Sender for the resolved webhook configuration.
func NewSender(cfg config.Webhook, opts ...Option) *Sender {
	s := &Sender{
		url:        cfg.URL,
		client:     &http.Client{Timeout: defaultTimeout},
		sleep:      time.Sleep,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send validates msg, POSTs it to the webhook, and interprets the response.
// A 5xx response or transport failure is retried exactly once after a fixed
// delay; a 4xx response fails immediately. Validation failures return a
// *ValidationError before any network call.
func (s *Sender) Send(ctx context.Context, msg Message) error {
	if msg.Content == "" {
		return &ValidationError{Reason: "message content must not be empty"}
	}
	typ := msg.Type
	if typ == "" {
		typ = TypeText
	}
	if typ != TypeText && typ != TypeMarkdown {
		return &ValidationError{Reason: fmt.Sprintf("unsupported message type %q (supported: text, markdown)", typ)}
	}

	payload, err := json.Marshal(webhookPayload{Content: composeContent(typ, msg.Content)})
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	id := uuid.NewString()
	slog.Debug("dispatching message", "id", id, "type", typ, "bytes", len(payload))

	for attempt := 1; ; attempt++ {
		err = s.post(ctx, payload)
		if err == nil {
			slog.Debug("message delivered", "id", id, "attempt", attempt)
			return nil
		}
		if !Transient(err) || attempt >= maxAttempts || ctx.Err() != nil {
			break
		}
		slog.Warn("transient delivery failure, retrying", "id", id, "attempt", attempt, "delay", s.retryDelay)
		s.sleep(s.retryDelay)
	}

	slog.Warn("message delivery failed", "id", id)
	return err
}

// post performs one HTTP POST and translates the response. A 2xx status
// (Discord webhooks answer 204 No Content) is success; anything else
// becomes a *StatusError carrying a body excerpt.
func (s *Sender) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting to webhook: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, bodyExcerptLimit))
	return &StatusError{
		Status: resp.StatusCode,
		Body:   strings.TrimSpace(string(body)),
	}
}
