package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/longkey1/ragechat/internal/ragechat/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const configFields = "configfile, storage, data_dir, min_delay_ms, max_delay_ms, typing_interval_ms, seed, responses_file"

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [field]",
	Short: "Display current configuration",
	Long: `Display the current configuration values.
This command shows all configuration values loaded from the config file and environment variables.

If a field name is specified, only that field's value is displayed.
Available fields: ` + configFields + `

Examples:
  ragechat config                 # Show all configuration
  ragechat config storage         # Show only the storage backend
  ragechat config data_dir        # Show only the data directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if len(args) > 0 {
			return writeConfigField(os.Stdout, cfg, viper.ConfigFileUsed(), args[0])
		}
		writeConfig(os.Stdout, cfg, viper.ConfigFileUsed())
		return nil
	},
}

func writeConfigField(w io.Writer, cfg *config.Config, configFile, field string) error {
	switch strings.ToLower(field) {
	case "configfile":
		fmt.Fprintln(w, configFile)
	case "storage":
		fmt.Fprintln(w, cfg.Storage)
	case "data_dir", "datadir":
		fmt.Fprintln(w, cfg.DataDir)
	case "min_delay_ms", "mindelayms":
		fmt.Fprintln(w, cfg.MinDelayMS)
	case "max_delay_ms", "maxdelayms":
		fmt.Fprintln(w, cfg.MaxDelayMS)
	case "typing_interval_ms", "typingintervalms":
		fmt.Fprintln(w, cfg.TypingIntervalMS)
	case "seed":
		fmt.Fprintln(w, cfg.Seed)
	case "responses_file", "responsesfile":
		fmt.Fprintln(w, responsesLabel(cfg))
	default:
		return fmt.Errorf("unknown field: %s\nAvailable fields: %s", field, configFields)
	}
	return nil
}

func writeConfig(w io.Writer, cfg *config.Config, configFile string) {
	fmt.Fprintf(w, "ConfigFile: %s\n", configFile)
	fmt.Fprintf(w, "Storage: %s\n", cfg.Storage)
	fmt.Fprintf(w, "DataDir: %s\n", cfg.DataDir)
	fmt.Fprintf(w, "ReplyDelay: %s - %s\n", cfg.MinDelay(), cfg.MaxDelay())
	fmt.Fprintf(w, "TypingInterval: %s\n", cfg.TypingInterval())
	fmt.Fprintf(w, "Seed: %d\n", cfg.Seed)
	fmt.Fprintf(w, "ResponsesFile: %s\n", responsesLabel(cfg))
}

func responsesLabel(cfg *config.Config) string {
	if cfg.ResponsesFile == "" {
		return "(built-in)"
	}
	return cfg.ResponsesFile
}

func init() {
	rootCmd.AddCommand(configCmd)
}
