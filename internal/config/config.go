// ABOUTME: Configuration loading and parsing for amenbot.
// ABOUTME: YAML with environment variable expansion and duration parsing.

package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete bot configuration.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Database DatabaseConfig `yaml:"database"`
	Bot      BotConfig      `yaml:"bot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// TelegramConfig holds Bot API connection settings.
type TelegramConfig struct {
	Token   string `yaml:"token"`
	BaseURL string `yaml:"base_url"` // defaults to the public Bot API

	PollTimeout    time.Duration `yaml:"-"`
	PollTimeoutRaw string        `yaml:"poll_timeout"`
}

// AnalysisConfig holds analysis backend settings.
type AnalysisConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`

	Timeout    time.Duration `yaml:"-"`
	TimeoutRaw string        `yaml:"timeout"`
}

// DatabaseConfig holds the mode store location.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// BotConfig holds behavioral knobs.
type BotConfig struct {
	// ChunkLimit caps outbound message size. Telegram rejects messages
	// over 4096 characters, which is the default.
	ChunkLimit int `yaml:"chunk_limit"`
	// SiteURL and CoinURL feed the inline keyboard link buttons.
	SiteURL string `yaml:"site_url"`
	CoinURL string `yaml:"coin_url"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a configuration file from path. Environment variables in the
// form ${VAR_NAME} are expanded and duration strings parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with environment values.
// Unset variables expand to the empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

func parseDurations(cfg *Config) error {
	var err error

	if cfg.Telegram.PollTimeoutRaw != "" {
		cfg.Telegram.PollTimeout, err = time.ParseDuration(cfg.Telegram.PollTimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing telegram.poll_timeout %q: %w", cfg.Telegram.PollTimeoutRaw, err)
		}
	}

	if cfg.Analysis.TimeoutRaw != "" {
		cfg.Analysis.Timeout, err = time.ParseDuration(cfg.Analysis.TimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing analysis.timeout %q: %w", cfg.Analysis.TimeoutRaw, err)
		}
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Telegram.PollTimeout == 0 {
		cfg.Telegram.PollTimeout = 30 * time.Second
	}
	if cfg.Analysis.Timeout == 0 {
		cfg.Analysis.Timeout = 60 * time.Second
	}
	if cfg.Bot.ChunkLimit == 0 {
		cfg.Bot.ChunkLimit = 4096
	}
}

// Validate checks that all required fields are present.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}
	if c.Analysis.BaseURL == "" {
		return fmt.Errorf("analysis.base_url is required")
	}
	if c.Analysis.APIKey == "" {
		return fmt.Errorf("analysis.api_key is required")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	return nil
}
