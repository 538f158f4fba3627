package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full back-office configuration surface.
type Config struct {
	Server  ServerConfig
	FarmAPI FarmAPIConfig
	Storage StorageConfig
	Ticker  TickerConfig
	Session SessionConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// FarmAPIConfig points at the remote farm backend.
type FarmAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StorageConfig locates the local fallback store.
type StorageConfig struct {
	Path string
}

// TickerConfig holds the market price poller schedule.
type TickerConfig struct {
	CronSchedule string
}

// SessionConfig holds session gate options. ForceDemo routes every session
// into demo mode regardless of the stored token.
type SessionConfig struct {
	ForceDemo bool
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	timeoutSeconds, err := strconv.Atoi(getenvWithDefault("HTTP_TIMEOUT_SECONDS", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS: %w", err)
	}

	forceDemo, _ := strconv.ParseBool(getenvWithDefault("DEMO_MODE", "false"))

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		FarmAPI: FarmAPIConfig{
			BaseURL: os.Getenv("FARM_API_BASE_URL"),
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		Storage: StorageConfig{
			Path: getenvWithDefault("STORAGE_PATH", "backoffice.db"),
		},
		Ticker: TickerConfig{
			CronSchedule: getenvWithDefault("TICKER_CRON_SCHEDULE", "@every 5m"),
		},
		Session: SessionConfig{
			ForceDemo: forceDemo,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
// An absent backend base URL is a startup misconfiguration, not a runtime error.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.FarmAPI.BaseURL == "" {
		return errors.New("FARM_API_BASE_URL must be provided")
	}

	if c.FarmAPI.Timeout <= 0 {
		return errors.New("HTTP_TIMEOUT_SECONDS must be positive")
	}

	if c.Storage.Path == "" {
		return errors.New("STORAGE_PATH must not be empty")
	}

	if c.Ticker.CronSchedule == "" {
		return errors.New("TICKER_CRON_SCHEDULE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
