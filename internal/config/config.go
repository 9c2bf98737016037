// Package config loads command-line and server settings from PO_* variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds the settings shared by pocli and po-mcp-server.
type Config struct {
	APIURL      string        `envconfig:"API_URL" default:"http://localhost:8000"`
	APIToken    string        `envconfig:"API_TOKEN"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`
}

// Load reads Config from the environment (PO_API_URL, PO_API_TOKEN, ...).
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("PO", &c); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if c.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("load config: PO_HTTP_TIMEOUT must be > 0, got %s", c.HTTPTimeout)
	}
	return &c, nil
}

// Level maps LogLevel onto a zerolog level. Debug forces DebugLevel; unknown
// names fall back to InfoLevel.
func (c *Config) Level() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Init installs the console logger at the configured level.
func (c *Config) Init() {
	InitLogger()
	SetLogLevel(c.Level())

	log.Debug().
		Str("api_url", c.APIURL).
		Bool("token_set", c.APIToken != "").
		Dur("http_timeout", c.HTTPTimeout).
		Str("log_level", c.Level().String()).
		Msg("configuration loaded")
}
