/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/longkey1/ragechat/internal/ragechat/response"
	"github.com/spf13/cobra"
)

// promptsCmd represents the prompts command
var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List quick prompts",
	Long: `List the quick prompts of the response pack.
In a chat, '/quick N' puts prompt N in the input line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		writePrompts(os.Stdout, a.pack)
		return nil
	},
}

func writePrompts(w io.Writer, pack *response.Pack) {
	if len(pack.QuickPrompts) == 0 {
		fmt.Fprintln(w, "No quick prompts.")
		return
	}
	for i, p := range pack.QuickPrompts {
		fmt.Fprintf(w, "%d. %s\n", i+1, p)
	}
}

func init() {
	rootCmd.AddCommand(promptsCmd)
}
