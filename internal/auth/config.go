package auth

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds token issuance settings, loaded from config/auth.yaml
type Config struct {
	Issuer          string `yaml:"issuer"`
	Audience        string `yaml:"audience"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
	CookieName      string `yaml:"cookie_name"`
	SecureCookies   bool   `yaml:"secure_cookies"`
}

// DefaultConfig returns the settings used when no auth.yaml is present
func DefaultConfig() *Config {
	return &Config{
		Issuer:          "shortlink-backend",
		Audience:        "shortlink",
		TokenTTLMinutes: 60,
		CookieName:      "token",
		SecureCookies:   false,
	}
}

// LoadConfig reads auth configuration from a YAML file, filling unset fields
// with defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read auth config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse auth config: %w", err)
	}

	if cfg.TokenTTLMinutes <= 0 {
		cfg.TokenTTLMinutes = 60
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "token"
	}

	return cfg, nil
}

// TokenTTL returns the configured token lifetime
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}
