package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/longkey1/ragechat/internal/ragechat/console"
	"github.com/longkey1/ragechat/internal/ragechat/conversation"
	"github.com/longkey1/ragechat/internal/ragechat/render"
	"github.com/longkey1/ragechat/internal/ragechat/storage"
	"github.com/longkey1/ragechat/internal/ragechat/theme"
	"github.com/spf13/cobra"
)

const followDebounce = 200 * time.Millisecond

var (
	historyHTML   bool
	historyJSON   bool
	historyFollow bool
	clearYes      bool
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the saved chat transcript",
	Long: `Show the chat transcript saved in storage.

Use --html for a standalone HTML page, or --json for the raw stored value.
With --follow the transcript is printed again whenever a running chat saves it
(file storage only).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyHTML && historyJSON {
			return fmt.Errorf("cannot specify both --html and --json")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		format := historyFormatText
		switch {
		case historyHTML:
			format = historyFormatHTML
		case historyJSON:
			format = historyFormatJSON
		}

		if err := printHistory(os.Stdout, a.kv, format); err != nil {
			return err
		}
		if !historyFollow {
			return nil
		}

		fs, ok := a.kv.(*storage.FileStorage)
		if !ok {
			return fmt.Errorf("--follow requires the %s storage backend (configured: %s)", storage.BackendFile, a.cfg.Storage)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return followHistory(ctx, fs, os.Stdout, format)
	},
}

// historyClearCmd represents the history clear command
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved chat transcript",
	Long: `Delete the chat transcript from storage. The theme preference is kept.

Warning: This action cannot be undone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if !clearYes {
			fmt.Printf("Are you rage quitting? [y/N]: ")
			var response string
			fmt.Scanln(&response)
			if !isYes(response) {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := conversation.NewStore(a.kv, a.logger).Clear(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Println("Chat history deleted.")
		return nil
	},
}

type historyFormat int

const (
	historyFormatText historyFormat = iota
	historyFormatHTML
	historyFormatJSON
)

// printHistory writes the stored transcript to w in the given format.
func printHistory(w io.Writer, kv storage.Storage, format historyFormat) error {
	store := conversation.NewStore(kv, nil)
	messages, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	prefs, err := theme.Load(kv)
	if err != nil {
		return err
	}

	switch format {
	case historyFormatHTML:
		_, err := io.WriteString(w, render.NewHTML().Document(prefs.Current(), messages))
		return err
	case historyFormatJSON:
		data, err := conversation.Marshal(messages)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	if len(messages) == 0 {
		fmt.Fprintln(w, "No messages.")
		return nil
	}
	view := console.New(w, io.Discard, console.Options{Highlight: console.IsTerminal(w)})
	view.ApplyTheme(prefs.Current())
	for _, m := range messages {
		view.RenderMessage(m)
	}
	return nil
}

// followHistory reprints the transcript on every change until ctx is done.
func followHistory(ctx context.Context, fs *storage.FileStorage, w io.Writer, format historyFormat) error {
	return fs.Watch(ctx, storage.HistoryKey, followDebounce, func() {
		fmt.Fprintf(w, "\n--- updated %s ---\n", time.Now().Format("15:04:05"))
		if err := printHistory(w, fs, format); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	})
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().BoolVar(&historyHTML, "html", false, "Print the transcript as an HTML page")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Print the stored JSON value")
	historyCmd.Flags().BoolVarP(&historyFollow, "follow", "f", false, "Print again whenever the transcript changes")
	historyClearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Do not ask for confirmation")
}
