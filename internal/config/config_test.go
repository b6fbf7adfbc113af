package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	argURL  = "https://discord.com/api/webhooks/111111/arg-token"
	envURL  = "https://discord.com/api/webhooks/222222/env-token"
	fileURL = "https://discord.com/api/webhooks/333333/file-token"
)

// isolateGlobalConfig points the global config dir at an empty temp dir so
// a developer's real ~/.config/discordhook/config.yaml cannot leak in.
func isolateGlobalConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeGlobalConfig(t *testing.T, xdgDir, content string) {
	t.Helper()
	cfgDir := filepath.Join(xdgDir, "discordhook")
	require.NoError(t, os.MkdirAll(cfgDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0o600))
}

func TestResolve_ArgumentWinsOverEnv(t *testing.T) {
	isolateGlobalConfig(t)
	t.Setenv(EnvVar, envURL)

	cfg, err := Resolve(argURL)
	require.NoError(t, err)
	assert.Equal(t, argURL, cfg.URL)
}

func TestResolve_EnvUsedWhenNoArgument(t *testing.T) {
	isolateGlobalConfig(t)
	t.Setenv(EnvVar, envURL)

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, envURL, cfg.URL)
}

func TestResolve_ConfigFileFallback(t *testing.T) {
	dir := isolateGlobalConfig(t)
	t.Setenv(EnvVar, "")
	writeGlobalConfig(t, dir, "webhook_url: "+fileURL+"\n")

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, fileURL, cfg.URL)
}

func TestResolve_EnvWinsOverConfigFile(t *testing.T) {
	dir := isolateGlobalConfig(t)
	t.Setenv(EnvVar, envURL)
	writeGlobalConfig(t, dir, "webhook_url: "+fileURL+"\n")

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, envURL, cfg.URL)
}

func TestResolve_NothingSetIsMissing(t *testing.T) {
	isolateGlobalConfig(t)
	t.Setenv(EnvVar, "")

	_, err := Resolve("")
	assert.ErrorIs(t, err, ErrMissing)
}

func TestResolve_WhitespaceOnlyIsMissing(t *testing.T) {
	isolateGlobalConfig(t)
	t.Setenv(EnvVar, "   ")

	_, err := Resolve("  ")
	assert.ErrorIs(t, err, ErrMissing)
}

func TestResolve_MalformedConfigFile(t *testing.T) {
	dir := isolateGlobalConfig(t)
	t.Setenv(EnvVar, "")
	writeGlobalConfig(t, dir, "webhook_url: [not: valid\n")

	_, err := Resolve("")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissing)
}

func TestResolve_InvalidURLs(t *testing.T) {
	isolateGlobalConfig(t)

	tests := []struct {
		name string
		url  string
	}{
		{"http scheme", "http://discord.com/api/webhooks/1/token"},
		{"wrong host", "https://example.com/api/webhooks/1/token"},
		{"wrong path", "https://discord.com/webhooks/1/token"},
		{"no id or token", "https://discord.com/api/webhooks/"},
		{"not a url", "https://disc ord.com/api/webhooks/1/token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.url)
			require.Error(t, err)

			var invalid *InvalidError
			assert.True(t, errors.As(err, &invalid), "want *InvalidError, got %T: %v", err, err)
		})
	}
}

func TestResolve_AcceptsAlternateHosts(t *testing.T) {
	isolateGlobalConfig(t)

	for _, host := range []string{"discord.com", "discordapp.com", "ptb.discord.com", "canary.discord.com"} {
		t.Run(host, func(t *testing.T) {
			u := "https://" + host + "/api/webhooks/42/some-token"
			cfg, err := Resolve(u)
			require.NoError(t, err)
			assert.Equal(t, u, cfg.URL)
		})
	}
}

func TestGlobalConfigPath_UsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	assert.Equal(t, filepath.Join("/tmp/xdg-test", "discordhook", "config.yaml"), GlobalConfigPath())
}

func TestLoadGlobal_MissingFileIsZeroValue(t *testing.T) {
	isolateGlobalConfig(t)

	cfg, err := LoadGlobal()
	require.NoError(t, err)
	assert.Empty(t, cfg.WebhookURL)
}
