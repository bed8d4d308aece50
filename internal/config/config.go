// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

// Package config loads runtime configuration from a YAML file, SEESAW_*
// environment variables, and command-line flags, in that order of precedence
// (flags win).
package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// envPrefix is stripped from environment variables before mapping them to
// config keys (SEESAW_ADMIN_TOKEN -> admin_token).
const envPrefix = "SEESAW_"

// Default values for optional settings.
const (
	DefaultListenAddr      = ":8080"
	DefaultMetricsAddr     = "127.0.0.1:9100"
	DefaultLogFormat       = "json"
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 14 * 24 * time.Hour
)

// Config holds all runtime configuration for the seesaw server.
type Config struct {
	DatabaseURL     string        `koanf:"database_url"`
	ListenAddr      string        `koanf:"listen_addr"`
	MetricsAddr     string        `koanf:"metrics_addr"`
	LogFormat       string        `koanf:"log_format"`
	AdminToken      string        `koanf:"admin_token"`
	JWTSecret       string        `koanf:"jwt_secret"`
	AccessTokenTTL  time.Duration `koanf:"access_token_ttl"`
	RefreshTokenTTL time.Duration `koanf:"refresh_token_ttl"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

// Validate checks that the configuration is usable for serving.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return oops.Code("CONFIG_INVALID").Errorf("database_url is required (set DATABASE_URL or SEESAW_DATABASE_URL)")
	}
	if c.JWTSecret == "" {
		return oops.Code("CONFIG_INVALID").Errorf("jwt_secret is required")
	}
	if c.AdminToken == "" {
		return oops.Code("CONFIG_INVALID").Errorf("admin_token is required")
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return oops.Code("CONFIG_INVALID").
			With("log_format", c.LogFormat).
			Errorf("log_format must be 'json' or 'text'")
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return oops.Code("CONFIG_INVALID").Errorf("token TTLs must be positive")
	}
	return nil
}

// Load builds a Config from defaults, an optional YAML file, SEESAW_*
// environment variables, and an optional flag set. The bare DATABASE_URL
// environment variable is honored as a fallback for database_url.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	cfg := &Config{
		ListenAddr:      DefaultListenAddr,
		MetricsAddr:     DefaultMetricsAddr,
		LogFormat:       DefaultLogFormat,
		AccessTokenTTL:  DefaultAccessTokenTTL,
		RefreshTokenTTL: DefaultRefreshTokenTTL,
	}

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("path", path).Wrap(err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").With("operation", "load environment").Wrap(err)
	}

	if flags != nil {
		// Flag names use dashes (--listen-addr) while config keys use
		// underscores (listen_addr).
		p := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		})
		if err := k.Load(p, nil); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("operation", "load flags").Wrap(err)
		}
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").With("operation", "unmarshal").Wrap(err)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	return cfg, nil
}
