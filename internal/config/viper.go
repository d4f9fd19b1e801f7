// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fjacquet/creditlens/internal/common"
	"fjacquet/creditlens/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override, e.g. CREDITLENS_LOG_LEVEL.
const EnvPrefix = "CREDITLENS"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	API struct {
		BaseURL           string `mapstructure:"base_url" yaml:"base_url"`
		TimeoutSeconds    int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		RequestsPerMinute int    `mapstructure:"requests_per_minute" yaml:"requests_per_minute"`
	} `mapstructure:"api" yaml:"api"`

	Session struct {
		TokenFile string `mapstructure:"token_file" yaml:"token_file"`
	} `mapstructure:"session" yaml:"session"`

	Output struct {
		Format     string `mapstructure:"format" yaml:"format"`
		IncludeRaw bool   `mapstructure:"include_raw" yaml:"include_raw"`
	} `mapstructure:"output" yaml:"output"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Batch struct {
		Workers int `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"batch" yaml:"batch"`
}

// Timeout returns the per-request API timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// DelimiterRune returns the CSV delimiter as a rune, or the default comma
// when none is set.
func (c *Config) DelimiterRune() rune {
	for _, r := range c.CSV.Delimiter {
		return r
	}
	return common.DefaultDelimiter
}

// InitializeConfig loads configuration with hierarchical lookup:
// defaults, then config.yaml from $HOME/.creditlens, .creditlens or the
// working directory, then CREDITLENS_* environment variables.
func InitializeConfig() (*Config, error) {
	return load("")
}

// LoadFromFile is InitializeConfig with an explicit config file. Unlike the
// lookup path, a missing or unreadable explicit file is an error.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return InitializeConfig()
	}
	return load(path)
}

func load(explicit string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.creditlens")
		v.AddConfigPath(".creditlens")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file
	if err := v.ReadInConfig(); err != nil {
		if explicit != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", explicit, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultTokenFile is where the session token is kept when session.token_file is unset.
func DefaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".creditlens", "session.yaml")
	}
	return filepath.Join(home, ".creditlens", "session.yaml")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// API defaults
	v.SetDefault("api.base_url", "http://localhost:3000")
	v.SetDefault("api.timeout_seconds", 30)
	v.SetDefault("api.requests_per_minute", 60)

	// Session defaults
	v.SetDefault("session.token_file", DefaultTokenFile())

	// Output defaults
	v.SetDefault("output.format", "text")
	v.SetDefault("output.include_raw", false)

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// Batch defaults
	v.SetDefault("batch.workers", 4)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	u, err := url.Parse(config.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute http(s) URL, got: %s", config.API.BaseURL)
	}

	if config.API.TimeoutSeconds < 1 || config.API.TimeoutSeconds > 300 {
		return fmt.Errorf("api.timeout_seconds must be between 1 and 300, got: %d", config.API.TimeoutSeconds)
	}

	if config.API.RequestsPerMinute < 1 || config.API.RequestsPerMinute > 1000 {
		return fmt.Errorf("api.requests_per_minute must be between 1 and 1000, got: %d", config.API.RequestsPerMinute)
	}

	if config.Session.TokenFile == "" {
		return fmt.Errorf("session.token_file must not be empty")
	}

	if err := validation.IsValidOutputFormat(config.Output.Format); err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Batch.Workers < 1 || config.Batch.Workers > 64 {
		return fmt.Errorf("batch.workers must be between 1 and 64, got: %d", config.Batch.Workers)
	}

	return nil
}

