package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Public base used to build short URLs, e.g. https://sho.rt
	BaseURL string `mapstructure:"BASE_URL"`

	// Length of generated short ids (custom aliases may be 3-20 chars)
	ShortIDLength int `mapstructure:"SHORT_ID_LENGTH"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Rate limiting (admission gate in front of the shorten and login endpoints)
	ShortenRateWindowMinutes int `mapstructure:"RATE_LIMIT_SHORTEN_WINDOW_MINUTES"`
	ShortenRateMax           int `mapstructure:"RATE_LIMIT_SHORTEN_MAX"`
	LoginRateWindowMinutes   int `mapstructure:"RATE_LIMIT_LOGIN_WINDOW_MINUTES"`
	LoginRateMax             int `mapstructure:"RATE_LIMIT_LOGIN_MAX"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("BASE_URL", "http://localhost:7010")
	viper.SetDefault("SHORT_ID_LENGTH", 7)

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "shortlink")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Rate limit defaults mirror the classic 10 shortens / 15 min and 5 logins / hour
	viper.SetDefault("RATE_LIMIT_SHORTEN_WINDOW_MINUTES", 15)
	viper.SetDefault("RATE_LIMIT_SHORTEN_MAX", 10)
	viper.SetDefault("RATE_LIMIT_LOGIN_WINDOW_MINUTES", 60)
	viper.SetDefault("RATE_LIMIT_LOGIN_MAX", 5)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.BaseURL == "" || !strings.HasPrefix(config.BaseURL, "http") {
		return fmt.Errorf("BASE_URL must be an absolute http(s) URL")
	}

	if config.ShortIDLength < 3 || config.ShortIDLength > 20 {
		return fmt.Errorf("SHORT_ID_LENGTH must be between 3 and 20")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
