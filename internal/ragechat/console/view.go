// Package console renders the chat transcript and typing indicator in a
// terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/longkey1/ragechat/internal/ragechat"
	"github.com/longkey1/ragechat/internal/ragechat/render"
)

const (
	clearLine   = "\r\033[K"
	clearScreen = "\033[H\033[2J"
	typingIcon  = "☢"
)

// Options controls terminal features.
type Options struct {
	Animate   bool // redraw the typing indicator in place
	Highlight bool // syntax-highlight code blocks
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// View writes the transcript to out and the typing indicator to status.
type View struct {
	mu       sync.Mutex
	out      io.Writer
	status   io.Writer
	renderer *lipgloss.Renderer
	opts     Options
	theme    ragechat.Theme
	styles   styles
	draft    string
}

// New creates a view in the default theme.
func New(out, status io.Writer, opts Options) *View {
	r := lipgloss.NewRenderer(out)
	return &View{
		out:      out,
		status:   status,
		renderer: r,
		opts:     opts,
		theme:    ragechat.DefaultTheme,
		styles:   newStyles(r, ragechat.DefaultTheme),
	}
}

// RenderMessage prints one message.
func (v *View) RenderMessage(m ragechat.Message) {
	v.mu.Lock()
	defer v.mu.Unlock()

	name := v.styles.user.Render("You")
	if m.Sender == ragechat.SenderAI {
		name = v.styles.ai.Render("AI")
	}
	fmt.Fprintf(v.out, "\n%s %s\n%s\n", name, v.styles.time.Render(m.Timestamp), v.formatContent(m))
}

func (v *View) formatContent(m ragechat.Message) string {
	if m.Sender != ragechat.SenderAI || !strings.Contains(m.Content, render.FenceMarker) {
		return m.Content
	}

	var parts []string
	for _, s := range render.Split(m.Content) {
		if s.Block == nil {
			if text := strings.Trim(s.Text, "\n"); text != "" {
				parts = append(parts, text)
			}
			continue
		}
		parts = append(parts, v.formatCodeBlock(*s.Block))
	}
	return strings.Join(parts, "\n")
}

func (v *View) formatCodeBlock(cb render.CodeBlock) string {
	code := cb.Code
	if v.opts.Highlight {
		code = highlightCode(code, cb.Language, v.styles.chroma)
	}
	title := v.styles.codeTitle.Render(cb.Language + " " + render.CodeWarning)
	return v.styles.codeBlock.Render(title + "\n" + code)
}

// ResetTranscript clears the screen, or prints a separator when not animating.
func (v *View) ResetTranscript() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.opts.Animate {
		fmt.Fprint(v.out, clearScreen)
		return
	}
	fmt.Fprintln(v.out, v.styles.notice.Render("--- chat cleared ---"))
}

// ClearInput drops any pending draft.
func (v *View) ClearInput() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.draft = ""
}

// FillInput stores text as the draft for the next prompt.
func (v *View) FillInput(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.draft = text
}

// TakeDraft returns the draft and clears it.
func (v *View) TakeDraft() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	d := v.draft
	v.draft = ""
	return d
}

// ApplyTheme switches palettes.
func (v *View) ApplyTheme(t ragechat.Theme) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.theme = t
	v.renderer.SetHasDarkBackground(t == ragechat.ThemeDark)
	v.styles = newStyles(v.renderer, t)
}

// Theme returns the applied theme.
func (v *View) Theme() ragechat.Theme {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.theme
}

// ShowTyping shows the indicator.
func (v *View) ShowTyping() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.opts.Animate {
		fmt.Fprintf(v.status, "%s%s ...", clearLine, typingIcon)
		return
	}
	fmt.Fprintf(v.status, "%s AI is typing...\n", typingIcon)
}

// SetTypingStatus redraws the indicator line. Without animation the update
// is dropped rather than printing a new line per tick.
func (v *View) SetTypingStatus(text, color string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.opts.Animate {
		return
	}
	line := v.styles.typing.Background(lipgloss.Color(color)).Render(typingIcon + " " + text)
	fmt.Fprint(v.status, clearLine+line)
}

// HideTyping erases the indicator.
func (v *View) HideTyping() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.opts.Animate {
		fmt.Fprint(v.status, clearLine)
	}
}

// Notice prints an informational line to the transcript.
func (v *View) Notice(format string, args ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.out, v.styles.notice.Render(fmt.Sprintf(format, args...)))
}
