// Package config loads and validates scraper configuration via Viper.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all configuration knobs loaded via Viper.
type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Output  OutputConfig  `mapstructure:"output"`
	Board   BoardConfig   `mapstructure:"board"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SourceConfig points at the leaders page.
type SourceConfig struct {
	URL            string `mapstructure:"url"`
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// HTTPConfig configures fetch retry behavior.
type HTTPConfig struct {
	MaxRetries       int `mapstructure:"max_retries"`
	BackoffInitialMs int `mapstructure:"backoff_initial_ms"`
	BackoffMaxMs     int `mapstructure:"backoff_max_ms"`
}

// OutputConfig sets the CSV export location.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// BoardConfig bounds the extracted leaderboards.
type BoardConfig struct {
	MaxEntries int `mapstructure:"max_entries"`
}

// LoggingConfig toggles zap development features and the log file path.
type LoggingConfig struct {
	Development bool   `mapstructure:"development"`
	File        string `mapstructure:"file"`
}

// Load builds a Config from disk/environment. An explicit path must exist;
// with an empty path the working directory and $HOME/.leaderscraper are
// searched, and missing files fall back to defaults plus environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LEADERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.leaderscraper")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source.url", "https://www.basketball-reference.com/leagues/NBA_2025_leaders.html")
	// The source serves bot UAs a challenge page, so default to a browser string.
	v.SetDefault("source.user_agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	v.SetDefault("source.timeout_seconds", 10)
	v.SetDefault("http.max_retries", 3)
	v.SetDefault("http.backoff_initial_ms", 500)
	v.SetDefault("http.backoff_max_ms", 5000)
	v.SetDefault("output.dir", "data")
	v.SetDefault("board.max_entries", 15)
	v.SetDefault("logging.development", true)
	v.SetDefault("logging.file", "leaderscraper.log")
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Source.URL == "" {
		return fmt.Errorf("source.url must be set")
	}
	if _, err := url.ParseRequestURI(c.Source.URL); err != nil {
		return fmt.Errorf("source.url invalid: %w", err)
	}
	if c.Source.TimeoutSeconds <= 0 {
		return fmt.Errorf("source.timeout_seconds must be > 0")
	}
	if c.HTTP.MaxRetries <= 0 {
		return fmt.Errorf("http.max_retries must be > 0")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must be set")
	}
	if c.Board.MaxEntries <= 0 {
		return fmt.Errorf("board.max_entries must be > 0")
	}
	return nil
}

// Timeout converts the source timeout into a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Source.TimeoutSeconds) * time.Second
}

// BackoffInitial returns the first retry delay.
func (c Config) BackoffInitial() time.Duration {
	return time.Duration(c.HTTP.BackoffInitialMs) * time.Millisecond
}

// BackoffMax returns the retry delay ceiling.
func (c Config) BackoffMax() time.Duration {
	return time.Duration(c.HTTP.BackoffMaxMs) * time.Millisecond
}
