package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Telegram TelegramConfig
	Browser  BrowserConfig
	Scraper  ScraperConfig
	Metrics  MetricsConfig
	Logging  LoggingConfig
}

type TelegramConfig struct {
	Token          string
	UpdateTimeout  int
	MinQueryLength int
}

type BrowserConfig struct {
	Headless       bool
	UserAgent      string
	ViewportWidth  int
	ViewportHeight int
	NavTimeout     time.Duration
	SettleDelay    time.Duration
}

type ScraperConfig struct {
	RenderTimeout time.Duration
	MinInterval   time.Duration
	MaxInterval   time.Duration
	ResultLimit   int
}

type MetricsConfig struct {
	Enabled bool
	Port    string
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	cfg := &Config{
		Telegram: TelegramConfig{
			Token:          os.Getenv("TELEGRAM_BOT_TOKEN"),
			UpdateTimeout:  getIntOrDefault("TELEGRAM_UPDATE_TIMEOUT", 60),
			MinQueryLength: getIntOrDefault("TELEGRAM_MIN_QUERY_LENGTH", 2),
		},
		Browser: BrowserConfig{
			Headless:       getBoolOrDefault("BROWSER_HEADLESS", true),
			UserAgent:      getEnvOrDefault("BROWSER_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
			ViewportWidth:  getIntOrDefault("BROWSER_VIEWPORT_WIDTH", 1920),
			ViewportHeight: getIntOrDefault("BROWSER_VIEWPORT_HEIGHT", 1080),
			NavTimeout:     getDurationOrDefault("BROWSER_NAV_TIMEOUT", 30*time.Second),
			SettleDelay:    getDurationOrDefault("BROWSER_SETTLE_DELAY", 3*time.Second),
		},
		Scraper: ScraperConfig{
			RenderTimeout: getDurationOrDefault("SCRAPER_RENDER_TIMEOUT", 15*time.Second),
			MinInterval:   getDurationOrDefault("SCRAPER_MIN_INTERVAL", time.Second),
			MaxInterval:   getDurationOrDefault("SCRAPER_MAX_INTERVAL", 3*time.Second),
			ResultLimit:   getIntOrDefault("SCRAPER_RESULT_LIMIT", 5),
		},
		Metrics: MetricsConfig{
			Enabled: getBoolOrDefault("METRICS_ENABLED", true),
			Port:    getEnvOrDefault("METRICS_PORT", "9090"),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	if c.Scraper.ResultLimit < 1 {
		return fmt.Errorf("SCRAPER_RESULT_LIMIT must be at least 1")
	}

	if c.Scraper.RenderTimeout <= 0 {
		return fmt.Errorf("SCRAPER_RENDER_TIMEOUT must be positive")
	}

	if c.Telegram.MinQueryLength < 1 {
		return fmt.Errorf("TELEGRAM_MIN_QUERY_LENGTH must be at least 1")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
