/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/longkey1/ragechat/internal/ragechat/response"
	"github.com/spf13/cobra"
)

var classifyText string

// responsesCmd represents the responses command
var responsesCmd = &cobra.Command{
	Use:   "responses",
	Short: "List response categories",
	Long: `List the categories of the response pack in match order.
The first category with a keyword contained in the message wins;
messages matching none get a fallback reply.

Use --classify to see which category a message would get.

Example:
  ragechat responses
  ragechat responses --classify "Bonjour, how does CSS work?"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if cmd.Flags().Changed("classify") {
			engine := response.NewEngine(a.pack, newRand(a.cfg.Seed))
			fmt.Println(engine.Classify(classifyText))
			return nil
		}

		if verbose && a.cfg.ResponsesFile != "" {
			fmt.Fprintf(os.Stderr, "Responses file: %s\n", a.cfg.ResponsesFile)
		}
		writeResponses(os.Stdout, a.pack)
		return nil
	},
}

func writeResponses(out io.Writer, pack *response.Pack) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCATEGORY\tKEYWORDS\tREPLIES")
	fmt.Fprintln(w, "-\t--------\t--------\t-------")
	for i, c := range pack.Categories {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", i+1, c.Name, strings.Join(c.Keywords, ", "), len(c.Replies))
	}
	fmt.Fprintf(w, "-\t%s\t%s\t%d\n", response.CategoryFallback, "(anything else)", len(pack.Fallback))
	w.Flush()
}

func init() {
	rootCmd.AddCommand(responsesCmd)

	responsesCmd.Flags().StringVar(&classifyText, "classify", "", "Print the category a message would be answered from")
}
