// Copyright 2026 The Discordhook Authors
// SPDX-License-Identifier: MIT

// Package config resolves and validates the Discord webhook endpoint.
//
// Resolution order:
//  1. command-line argument
//  2. DISCORD_WEBHOOK_URL environment variable
//  3. webhook_url in the global config file
//
// The resolver runs once per process; the resulting Webhook value is
// immutable and safe for unsynchronized concurrent reads.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// EnvVar is the environment variable consulted when no command-line
// argument is given.
const EnvVar = "DISCORD_WEBHOOK_URL"

// webhookPathPrefix is the path every Discord webhook URL starts with.
const webhookPathPrefix = "/api/webhooks/"

// webhookHosts are the hosts Discord serves webhooks from.
var webhookHosts = map[string]bool{
	"discord.com":        true,
	"discordapp.com":     true,
	"ptb.discord.com":    true,
	"canary.discord.com": true,
}

// ErrMissing is returned when no webhook URL is present in any source.
var ErrMissing = errors.New("no webhook URL configured: pass one as an argument, set " + EnvVar + ", or add webhook_url to the config file")

// InvalidError reports a webhook URL that was present but not usable.
type InvalidError struct {
	Reason string
}

func (e *InvalidError) Error() string {
	return "invalid webhook URL: " + e.Reason
}

// Webhook holds the resolved webhook endpoint. Immutable after Resolve.
type Webhook struct {
	URL string
}

// Resolve determines the webhook URL from the given command-line argument,
// the environment, or the global config file, in that order, and validates
// it. It returns ErrMissing if no source yields a URL and an *InvalidError
// if the resolved URL is not a Discord webhook endpoint.
func Resolve(arg string) (Webhook, error) {
	raw := strings.TrimSpace(arg)
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv(EnvVar))
	}
	if raw == "" {
		global, err := LoadGlobal()
		if err != nil {
			return Webhook{}, fmt.Errorf("reading global config: %w", err)
		}
		raw = strings.TrimSpace(global.WebhookURL)
	}
	if raw == "" {
		return Webhook{}, ErrMissing
	}

	if err := validate(raw); err != nil {
		return Webhook{}, err
	}
	return Webhook{URL: raw}, nil
}

// validate checks that raw is an HTTPS Discord webhook URL.
func validate(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return &InvalidError{Reason: "not a parseable URL"}
	}
	if u.Scheme != "https" {
		return &InvalidError{Reason: fmt.Sprintf("scheme must be https, got %q", u.Scheme)}
	}
	if !webhookHosts[u.Host] {
		return &InvalidError{Reason: fmt.Sprintf("host %q is not a Discord webhook host", u.Host)}
	}
	if !strings.HasPrefix(u.Path, webhookPathPrefix) {
		return &InvalidError{Reason: "path does not start with " + webhookPathPrefix}
	}
	if u.Path == webhookPathPrefix {
		return &InvalidError{Reason: "webhook id and token are missing from the path"}
	}
	return nil
}
