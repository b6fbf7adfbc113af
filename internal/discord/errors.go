// Copyright 2026 The Discordhook Authors
// SPDX-License-Identifier: MIT

package discord

import (
	"context"
	"errors"
	"fmt"
)

// ValidationError reports a message rejected before any network I/O.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// StatusError reports a non-2xx response from Discord. Body holds an
// excerpt of the response body, capped at bodyExcerptLimit bytes.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("discord returned status %d", e.Status)
	}
	return fmt.Sprintf("discord returned status %d: %s", e.Status, e.Body)
}

// Transient reports whether err is worth a single retry. Server-side
// failures (5xx) and network-level failures qualify; 4xx responses and
// validation errors never do, and neither does a cancelled context.
func Transient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status >= 500
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return false
	}
	// Anything else is a transport failure: timeout, connection refused,
	// DNS failure.
	return true
}
