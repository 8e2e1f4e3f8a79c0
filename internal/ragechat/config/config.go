package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/longkey1/ragechat/internal/ragechat/storage"
)

// Config holds the configuration for the chat
type Config struct {
	Storage          string `toml:"storage" mapstructure:"storage"`   // "file", "sqlite" or "memory"
	DataDir          string `toml:"data_dir" mapstructure:"data_dir"` // Relative paths resolve against the config file directory
	MinDelayMS       int    `toml:"min_delay_ms" mapstructure:"min_delay_ms"`
	MaxDelayMS       int    `toml:"max_delay_ms" mapstructure:"max_delay_ms"`
	TypingIntervalMS int    `toml:"typing_interval_ms" mapstructure:"typing_interval_ms"`
	Seed             int64  `toml:"seed" mapstructure:"seed"`                     // 0 = seed from the clock
	ResponsesFile    string `toml:"responses_file" mapstructure:"responses_file"` // Empty = built-in response pack
}

// MinDelay returns the minimum reply delay.
func (c *Config) MinDelay() time.Duration {
	return time.Duration(c.MinDelayMS) * time.Millisecond
}

// MaxDelay returns the maximum reply delay.
func (c *Config) MaxDelay() time.Duration {
	return time.Duration(c.MaxDelayMS) * time.Millisecond
}

// TypingInterval returns the typing indicator refresh interval.
func (c *Config) TypingInterval() time.Duration {
	return time.Duration(c.TypingIntervalMS) * time.Millisecond
}

// NewDefaultConfig returns a new Config with default values
func NewDefaultConfig(dataDir string) *Config {
	return &Config{
		Storage:          storage.BackendFile,
		DataDir:          dataDir,
		MinDelayMS:       1000,
		MaxDelayMS:       4000,
		TypingIntervalMS: 300,
		Seed:             0,
		ResponsesFile:    "",
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.MinDelayMS < 0 || c.MaxDelayMS < 0 {
		return fmt.Errorf("reply delays cannot be negative (min_delay_ms=%d, max_delay_ms=%d)", c.MinDelayMS, c.MaxDelayMS)
	}
	if c.MaxDelayMS < c.MinDelayMS {
		return fmt.Errorf("max_delay_ms (%d) is less than min_delay_ms (%d)", c.MaxDelayMS, c.MinDelayMS)
	}
	if c.TypingIntervalMS <= 0 {
		return fmt.Errorf("typing_interval_ms must be positive (got %d)", c.TypingIntervalMS)
	}
	return nil
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	dataDir, err := ResolvePath(config.DataDir)
	if err != nil {
		return nil, fmt.Errorf("error resolving data directory path '%s': %w", config.DataDir, err)
	}
	config.DataDir = dataDir

	if config.ResponsesFile != "" {
		responsesFile, err := ResolvePath(config.ResponsesFile)
		if err != nil {
			return nil, fmt.Errorf("error resolving responses file path '%s': %w", config.ResponsesFile, err)
		}
		config.ResponsesFile = responsesFile
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
