package cmd

import (
	"fmt"
	"strings"

	"github.com/longkey1/ragechat/internal/ragechat"
	"github.com/longkey1/ragechat/internal/ragechat/theme"
	"github.com/spf13/cobra"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|toggle]",
	Short: "Show or change the theme",
	Long: `Show the stored theme, or change it.

Examples:
  ragechat theme          # Show the current theme
  ragechat theme dark     # Switch to dark
  ragechat theme toggle   # Flip between light and dark`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(ragechat.ThemeLight), string(ragechat.ThemeDark), "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		prefs, err := theme.Load(a.kv)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Println(prefs.Current())
			return nil
		}

		t, err := applyTheme(prefs, args[0])
		if err != nil {
			return err
		}
		fmt.Println(t)
		return nil
	},
}

// applyTheme sets the preference from a theme name or "toggle".
func applyTheme(prefs *theme.Preference, arg string) (ragechat.Theme, error) {
	if strings.EqualFold(strings.TrimSpace(arg), "toggle") {
		return prefs.Toggle()
	}
	t, err := ragechat.ParseTheme(arg)
	if err != nil {
		return "", err
	}
	return t, prefs.Set(t)
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
