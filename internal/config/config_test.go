// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seesaw/seesaw/pkg/errutil"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, DefaultMetricsAddr, cfg.MetricsAddr)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, DefaultAccessTokenTTL, cfg.AccessTokenTTL)
	assert.Equal(t, DefaultRefreshTokenTTL, cfg.RefreshTokenTTL)
	assert.False(t, cfg.AutoMigrate)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seesaw.yaml")
	content := []byte("listen_addr: \":9999\"\nadmin_token: file-secret\naccess_token_ttl: 30m\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "file-secret", cfg.AdminToken)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "CONFIG_LOAD_FAILED")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seesaw.yaml")
	require.NoError(t, os.WriteFile(path, []byte("admin_token: from-file\n"), 0o600))

	t.Setenv("SEESAW_ADMIN_TOKEN", "from-env")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.AdminToken)
}

func TestLoad_FlagsWin(t *testing.T) {
	t.Setenv("SEESAW_LISTEN_ADDR", ":7000")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("listen-addr", DefaultListenAddr, "")
	require.NoError(t, flags.Parse([]string{"--listen-addr", ":7070"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ListenAddr)
}

func TestLoad_UnchangedFlagKeepsEnvValue(t *testing.T) {
	t.Setenv("SEESAW_METRICS_ADDR", "127.0.0.1:9999")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("metrics-addr", DefaultMetricsAddr, "")
	flags.Bool("auto-migrate", false, "")
	require.NoError(t, flags.Parse([]string{"--auto-migrate"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.MetricsAddr)
	assert.True(t, cfg.AutoMigrate)
}

func TestLoad_DatabaseURLFallback(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/seesaw")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/seesaw", cfg.DatabaseURL)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DatabaseURL:     "postgres://localhost/seesaw",
			ListenAddr:      DefaultListenAddr,
			MetricsAddr:     DefaultMetricsAddr,
			LogFormat:       "json",
			AdminToken:      "secret",
			JWTSecret:       "jwt-secret",
			AccessTokenTTL:  DefaultAccessTokenTTL,
			RefreshTokenTTL: DefaultRefreshTokenTTL,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing database url", func(c *Config) { c.DatabaseURL = "" }},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }},
		{"missing admin token", func(c *Config) { c.AdminToken = "" }},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }},
		{"zero access ttl", func(c *Config) { c.AccessTokenTTL = 0 }},
		{"negative refresh ttl", func(c *Config) { c.RefreshTokenTTL = -time.Minute }},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			errutil.AssertErrorCode(t, cfg.Validate(), "CONFIG_INVALID")
		})
	}
}
