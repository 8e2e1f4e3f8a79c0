package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/longkey1/ragechat/internal/ragechat/config"
	"github.com/longkey1/ragechat/internal/ragechat/response"
	"github.com/spf13/cobra"
)

const responsesFileName = "responses.toml"

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration file",
	Long: `Initialize the configuration file with default settings.
The config file will be created at $HOME/.config/ragechat/config.toml by default.
You can specify a different location using the --config option.

The built-in responses are written next to it as responses.toml, ready to edit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile := filepath.Join(userConfigDir(), "config.toml")
		if cfgFile != "" {
			configFile = cfgFile
		}

		responsesFile, err := writeInitFiles(configFile)
		if err != nil {
			return err
		}

		fmt.Printf("Configuration file created at: %s\n", configFile)
		fmt.Printf("Responses file created at: %s\n", responsesFile)
		return nil
	},
}

// writeInitFiles creates the config file and the response pack beside it.
// An existing config file is never overwritten; an existing response pack is kept.
func writeInitFiles(configFile string) (string, error) {
	configDir := filepath.Dir(configFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return "", fmt.Errorf("config file already exists at: %s", configFile)
	}

	cfg := config.NewDefaultConfig("data")
	cfg.ResponsesFile = responsesFileName

	f, err := os.Create(configFile)
	if err != nil {
		return "", fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	responsesFile := filepath.Join(configDir, responsesFileName)
	if _, err := os.Stat(responsesFile); err == nil {
		return responsesFile, nil
	}

	rf, err := os.Create(responsesFile)
	if err != nil {
		return "", fmt.Errorf("failed to create responses file: %w", err)
	}
	defer rf.Close()

	if err := response.DefaultPack().Encode(rf); err != nil {
		return "", fmt.Errorf("failed to encode responses: %w", err)
	}
	return responsesFile, nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
