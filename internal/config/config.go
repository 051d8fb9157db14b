// Package config builds the immutable application configuration.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/mwrites/ledgerbot/internal/common"
)

// Ingestion modes. The mode is decided once at startup, not per message.
const (
	ModePull = "pull"
	ModePush = "push"
)

// Config is assembled once at startup and passed to components by
// reference. No component reads viper or the environment after this.
type Config struct {
	Telegram TelegramConfig
	LLM      LLMConfig
	Database DatabaseConfig
	Relay    RelayConfig
	Logging  LoggingConfig
}

// TelegramConfig configures the ingestion gateway.
type TelegramConfig struct {
	Token         string
	Mode          string // pull or push
	WebhookAddr   string // listen address in push mode
	WebhookSecret string // optional shared secret for push updates
	PollTimeout   time.Duration
}

// LLMConfig configures the extraction collaborator.
type LLMConfig struct {
	Provider    string
	APIKey      string
	Model       string
	Timeout     time.Duration
	RetryDelay  time.Duration
	MaxRetries  int
	MaxTokens   int
	Temperature float64
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string
}

// RelayConfig wires the optional split between ingestion and processing.
// When URL is set the gateway calls a remote processor instead of the
// in-process pipeline; Addr is where this process serves the relay API.
type RelayConfig struct {
	Addr string
	URL  string
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads the configuration from viper.
func Load() (*Config, error) {
	viper.SetDefault("telegram.mode", ModePull)
	viper.SetDefault("telegram.poll_timeout", 30*time.Second)
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.timeout", 15*time.Second)
	viper.SetDefault("llm.max_retries", 2)
	viper.SetDefault("llm.retry_delay", time.Second)
	viper.SetDefault("llm.max_tokens", 300)
	viper.SetDefault("llm.temperature", 0.1)
	viper.SetDefault("database.path", "$HOME/.local/share/ledgerbot/ledgerbot.db")
	viper.SetDefault("relay.addr", ":8000")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")

	cfg := &Config{
		Telegram: TelegramConfig{
			Token:         viper.GetString("telegram.token"),
			Mode:          viper.GetString("telegram.mode"),
			WebhookAddr:   viper.GetString("telegram.webhook_addr"),
			WebhookSecret: viper.GetString("telegram.webhook_secret"),
			PollTimeout:   viper.GetDuration("telegram.poll_timeout"),
		},
		LLM: LLMConfig{
			Provider:    viper.GetString("llm.provider"),
			APIKey:      viper.GetString("llm.api_key"),
			Model:       viper.GetString("llm.model"),
			Timeout:     viper.GetDuration("llm.timeout"),
			MaxRetries:  viper.GetInt("llm.max_retries"),
			RetryDelay:  viper.GetDuration("llm.retry_delay"),
			MaxTokens:   viper.GetInt("llm.max_tokens"),
			Temperature: viper.GetFloat64("llm.temperature"),
		},
		Database: DatabaseConfig{
			Path: viper.GetString("database.path"),
		},
		Relay: RelayConfig{
			Addr: viper.GetString("relay.addr"),
			URL:  viper.GetString("relay.url"),
		},
		Logging: LoggingConfig{
			Level:  viper.GetString("logging.level"),
			Format: viper.GetString("logging.format"),
		},
	}

	if cfg.Telegram.Mode != ModePull && cfg.Telegram.Mode != ModePush {
		return nil, fmt.Errorf("%w: telegram.mode must be %q or %q, got %q",
			common.ErrInvalidConfig, ModePull, ModePush, cfg.Telegram.Mode)
	}
	if cfg.Telegram.Mode == ModePush && cfg.Telegram.WebhookAddr == "" {
		return nil, fmt.Errorf("%w: telegram.webhook_addr is required in push mode",
			common.ErrMissingConfig)
	}

	return cfg, nil
}
