package main

import (
	"errors"
	"testing"
)

func TestRunServe_NoConfigRefusesToStart(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DISCORD_WEBHOOK_URL", "")

	err := runServe(serveCmd, nil)
	if err == nil {
		t.Fatal("serve without a webhook URL should fail before serving")
	}

	var ece *exitCodeError
	if !errors.As(err, &ece) {
		t.Fatalf("want *exitCodeError, got %T: %v", err, err)
	}
	if ece.ExitCode() != ExitConfig {
		t.Errorf("exit code = %d, want %d", ece.ExitCode(), ExitConfig)
	}
}

func TestRunServe_InvalidURLRefusesToStart(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DISCORD_WEBHOOK_URL", "")

	err := runServe(serveCmd, []string{"http://example.com/not-a-webhook"})
	if err == nil {
		t.Fatal("serve with a non-Discord URL should fail before serving")
	}

	var ece *exitCodeError
	if !errors.As(err, &ece) {
		t.Fatalf("want *exitCodeError, got %T: %v", err, err)
	}
	if ece.ExitCode() != ExitConfig {
		t.Errorf("exit code = %d, want %d", ece.ExitCode(), ExitConfig)
	}
}
