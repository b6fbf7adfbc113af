// Copyright 2026 The Discordhook Authors
// SPDX-License-Identifier: MIT

// Package redact strips the webhook secret from strings before they appear
// in output, logs, or error messages. A Discord webhook URL is a bearer
// credential: anyone holding it can post to the channel, so it must never
// leak through an error path.
package redact

import (
	"os"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variable names whose values must never
// appear in output.
var sensitiveEnvVars = []string{
	"DISCORD_WEBHOOK_URL",
}

var (
	mu            sync.RWMutex
	cachedSecrets []string
	cacheOnce     sync.Once
)

func loadSecrets() {
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if val != "" && len(val) >= 4 {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
}

// Register adds a secret value to the redaction set. The serve and send
// commands register the resolved webhook URL here, which covers URLs that
// arrived via the command line or a config file rather than the environment.
// Values under 4 characters are ignored to avoid false-positive replacement.
func Register(secret string) {
	cacheOnce.Do(loadSecrets)
	if len(secret) < 4 {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	for _, s := range cachedSecrets {
		if s == secret {
			return
		}
	}
	cachedSecrets = append(cachedSecrets, secret)
}

// resetCache resets the cached secrets. Used by tests that change env vars
// between calls.
func resetCache() {
	mu.Lock()
	defer mu.Unlock()
	cachedSecrets = nil
	cacheOnce = sync.Once{}
}

// ResetForTest resets the cached secrets so tests in other packages can
// verify redaction behavior after setting env vars with t.Setenv.
func ResetForTest() { resetCache() }

// String replaces any occurrence of a known secret with "[REDACTED]".
// Returns the original string if no secrets are found.
func String(s string) string {
	cacheOnce.Do(loadSecrets)
	mu.RLock()
	defer mu.RUnlock()
	for _, secret := range cachedSecrets {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	return s
}
