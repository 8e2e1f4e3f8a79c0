package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "equal delays", mutate: func(c *Config) { c.MinDelayMS, c.MaxDelayMS = 500, 500 }},
		{name: "negative delay", mutate: func(c *Config) { c.MinDelayMS = -1 }, wantErr: true},
		{name: "max below min", mutate: func(c *Config) { c.MinDelayMS, c.MaxDelayMS = 3000, 1000 }, wantErr: true},
		{name: "zero interval", mutate: func(c *Config) { c.TypingIntervalMS = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDefaultConfig("/tmp/data")
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDurations(t *testing.T) {
	c := NewDefaultConfig("")
	assert.Equal(t, time.Second, c.MinDelay())
	assert.Equal(t, 4*time.Second, c.MaxDelay())
	assert.Equal(t, 300*time.Millisecond, c.TypingInterval())
}

func TestLoadConfig_ResolvesAgainstConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.toml")
	content := `
storage = "sqlite"
data_dir = "data"
min_delay_ms = 10
max_delay_ms = 20
typing_interval_ms = 5
seed = 42
responses_file = "responses.toml"
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	viper.SetConfigFile(configFile)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "responses.toml"), cfg.ResponsesFile)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 10*time.Millisecond, cfg.MinDelay())
}

func TestLoadConfig_RejectsInvalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("data_dir", "/tmp/data")
	viper.Set("min_delay_ms", 100)
	viper.Set("max_delay_ms", 50)
	viper.Set("typing_interval_ms", 300)

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	abs, err := ResolvePath("/var/lib/ragechat")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/ragechat", abs)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	p, err := ResolvePath("~/chat")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "chat"), p)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	p, err = ResolvePath("rel")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "rel"), p)
}
