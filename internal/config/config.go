// Package config resolves process configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/joeshaw/envdecode"
)

// Config is the full runtime configuration for the storefront server.
type Config struct {
	Server  ServerConfig
	PayPal  PayPalConfig
	Logging LoggingConfig
	HTTP    HTTPConfig
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host string `env:"HOST,default="`
	Port int    `env:"PORT,default=3000"`
}

// PayPalConfig carries the payment provider credentials. Both ClientID and
// ClientSecret may be empty; the server then runs in demo-only mode.
type PayPalConfig struct {
	ClientID     string `env:"PAYPAL_CLIENT_ID,default="`
	ClientSecret string `env:"PAYPAL_CLIENT_SECRET,default="`
	APIBase      string `env:"PAYPAL_API_BASE,default=https://api-m.sandbox.paypal.com"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL,default=info"`
	Format string `env:"LOG_FORMAT,default=text"`
}

// HTTPConfig tunes the middleware chain.
type HTTPConfig struct {
	RateLimitPerSecond int    `env:"RATE_LIMIT_RPS,default=25"`
	RateLimitBurst     int    `env:"RATE_LIMIT_BURST,default=50"`
	CORSOrigins        string `env:"CORS_ALLOWED_ORIGINS,default=*"`
}

// Load decodes configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	cfg.PayPal.APIBase = strings.TrimRight(strings.TrimSpace(cfg.PayPal.APIBase), "/")
	return &cfg, nil
}

// AllowedOrigins splits the configured CORS origin list.
func (c HTTPConfig) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
