/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/longkey1/ragechat/internal/ragechat/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ragechat",
	Short: "A chat that refuses to help you",
	Long: `ragechat is a terminal chat with a sarcastic, entirely offline "AI".
Replies are canned and picked by keyword; nothing is sent anywhere.
The transcript and theme are kept in local storage between runs.
You can configure the tool using a TOML configuration file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogger, initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ragechat/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initLogger installs the default slog logger on stderr.
func initLogger() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// userConfigDir returns $HOME/.config/ragechat.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	return filepath.Join(home, ".config", "ragechat")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("RAGECHAT")
	viper.AutomaticEnv()

	configDir := userConfigDir()
	defaultConfig := config.NewDefaultConfig(filepath.Join(configDir, "data"))

	viper.SetDefault("storage", defaultConfig.Storage)
	viper.SetDefault("data_dir", defaultConfig.DataDir)
	viper.SetDefault("min_delay_ms", defaultConfig.MinDelayMS)
	viper.SetDefault("max_delay_ms", defaultConfig.MaxDelayMS)
	viper.SetDefault("typing_interval_ms", defaultConfig.TypingIntervalMS)
	viper.SetDefault("seed", defaultConfig.Seed)
	viper.SetDefault("responses_file", defaultConfig.ResponsesFile)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(configDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	}

	slog.Debug("config loaded",
		"file", viper.ConfigFileUsed(),
		"storage", viper.GetString("storage"),
		"data_dir", viper.GetString("data_dir"),
		"responses_file", viper.GetString("responses_file"),
	)
}
