package main

import "fmt"

// Exit codes for the discordhook CLI.
const (
	ExitOK          = 0 // Message sent or server exited cleanly.
	ExitConfig      = 1 // Invalid arguments or unresolved webhook configuration.
	ExitSendFailure = 2 // Dispatch failed after exhausting the retry.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError.
func exitError(code int, format string, args ...any) *exitCodeError {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}
