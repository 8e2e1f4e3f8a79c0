/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/longkey1/ragechat/internal/ragechat"
	"github.com/longkey1/ragechat/internal/ragechat/console"
	"github.com/longkey1/ragechat/internal/ragechat/render"
	"github.com/longkey1/ragechat/internal/ragechat/response"
	"github.com/longkey1/ragechat/internal/ragechat/session"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	userPrompt  = "You> "
	copyWarning = "Why are you copying this? I literally told you it doesn't work"
)

var noColor bool

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat",
	Long: `Start an interactive chat with the AI.
The previous transcript is restored from storage and every completed turn is saved.

Type '/help' for commands, '/exit' or 'Ctrl+D' to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		tty := console.IsTerminal(os.Stdout) && !noColor
		view := console.New(os.Stdout, os.Stderr, console.Options{
			Animate:   tty && console.IsTerminal(os.Stderr),
			Highlight: tty,
		})

		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		ctrl, err := a.newController(view, &lineConfirmer{line: line})
		if err != nil {
			return err
		}
		defer ctrl.Close()

		if err := ctrl.Start(); err != nil {
			return fmt.Errorf("restoring chat: %w", err)
		}

		repl := &chatREPL{
			ctrl: ctrl,
			view: view,
			pack: a.pack,
			out:  os.Stderr,
			copy: clipboard.WriteAll,
		}
		return repl.run(cmd.Context(), line)
	},
}

// lineConfirmer asks yes/no questions on the liner prompt.
type lineConfirmer struct {
	line *liner.State
}

func (c *lineConfirmer) Confirm(question string) bool {
	answer, err := c.line.Prompt(question + " [y/N]: ")
	if err != nil {
		return false
	}
	return isYes(answer)
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// lineReader is the part of liner the REPL uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	PromptWithSuggestion(prompt, text string, pos int) (string, error)
	AppendHistory(item string)
}

// chatREPL reads lines and dispatches them to the controller.
type chatREPL struct {
	ctrl *session.Controller
	view *console.View
	pack *response.Pack
	out  io.Writer
	copy func(text string) error
}

func (r *chatREPL) run(ctx context.Context, line lineReader) error {
	fmt.Fprintf(r.out, "\n=== ragechat ===\n")
	fmt.Fprintf(r.out, "Type '/help' for commands, '/exit' or 'Ctrl+D' to quit\n\n")

	for {
		input, err := r.read(line)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return nil
		}
		if err != nil {
			return fmt.Errorf("input error: %w", err)
		}

		trimmed := strings.TrimSpace(input)
		if strings.HasPrefix(trimmed, "/") {
			if !r.handleCommand(trimmed) {
				return nil
			}
			continue
		}

		if !r.ctrl.SendMessage(input) {
			continue
		}
		line.AppendHistory(trimmed)

		if err := r.ctrl.Wait(ctx); err != nil {
			return err
		}
	}
}

// read prompts for a line, pre-filled with a pending quick prompt.
func (r *chatREPL) read(line lineReader) (string, error) {
	if draft := r.view.TakeDraft(); draft != "" {
		return line.PromptWithSuggestion(userPrompt, draft, -1)
	}
	return line.Prompt(userPrompt)
}

// handleCommand processes slash commands.
// Returns true to continue the loop, false to exit
func (r *chatREPL) handleCommand(input string) bool {
	fields := strings.Fields(input)
	command := strings.ToLower(fields[0])

	switch command {
	case "/help", "/h":
		r.printHelp()
	case "/clear", "/c":
		r.ctrl.ClearChat()
	case "/theme", "/t":
		r.view.Notice("Theme: %s", r.ctrl.ToggleTheme())
	case "/quick", "/q":
		r.quick(fields[1:])
	case "/voice":
		r.ctrl.Voice()
	case "/attach":
		r.ctrl.Attach()
	case "/copy":
		r.copyLastCode()
	case "/exit", "/quit":
		fmt.Fprintln(r.out, "Goodbye!")
		return false
	default:
		fmt.Fprintf(r.out, "Unknown command: %s (type '/help' for available commands)\n", command)
	}
	return true
}

func (r *chatREPL) printHelp() {
	fmt.Fprintln(r.out, "\nAvailable commands:")
	fmt.Fprintln(r.out, "  /help, /h      - Show this help message")
	fmt.Fprintln(r.out, "  /clear, /c     - Delete the chat history")
	fmt.Fprintln(r.out, "  /theme, /t     - Toggle light/dark theme")
	fmt.Fprintln(r.out, "  /quick, /q [N] - List quick prompts, or put prompt N in the input")
	fmt.Fprintln(r.out, "  /voice         - Talk to the AI")
	fmt.Fprintln(r.out, "  /attach        - Send the AI a file")
	fmt.Fprintln(r.out, "  /copy          - Copy the last code block")
	fmt.Fprintln(r.out, "  /exit, /quit   - Exit")
	fmt.Fprintln(r.out, "  Ctrl+D         - Exit")
	fmt.Fprintln(r.out, "")
}

func (r *chatREPL) quick(args []string) {
	prompts := r.pack.QuickPrompts
	if len(args) == 0 {
		for i, p := range prompts {
			fmt.Fprintf(r.out, "  %d. %s\n", i+1, p)
		}
		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(prompts) {
		fmt.Fprintf(r.out, "No quick prompt %q (1-%d)\n", args[0], len(prompts))
		return
	}
	r.ctrl.FillPrompt(prompts[n-1])
}

// copyLastCode copies the last code block the AI sent.
func (r *chatREPL) copyLastCode() {
	code, ok := lastCodeBlock(r.ctrl.Messages())
	if !ok {
		fmt.Fprintln(r.out, "Nothing to copy.")
		return
	}
	fmt.Fprintln(r.out, copyWarning)
	if err := r.copy(code); err != nil {
		slog.Debug("clipboard write failed", "error", err)
	}
}

func lastCodeBlock(messages []ragechat.Message) (string, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Sender != ragechat.SenderAI {
			continue
		}
		if blocks := render.CodeBlocks(messages[i].Content); len(blocks) > 0 {
			return blocks[len(blocks)-1].Code, true
		}
	}
	return "", false
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable code highlighting and the animated typing indicator")
}
