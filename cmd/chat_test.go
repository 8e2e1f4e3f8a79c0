package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longkey1/ragechat/internal/ragechat"
	"github.com/longkey1/ragechat/internal/ragechat/config"
	"github.com/longkey1/ragechat/internal/ragechat/console"
	"github.com/longkey1/ragechat/internal/ragechat/response"
	"github.com/longkey1/ragechat/internal/ragechat/schedule"
	"github.com/longkey1/ragechat/internal/ragechat/session"
	"github.com/longkey1/ragechat/internal/ragechat/storage"
	"github.com/longkey1/ragechat/internal/ragechat/theme"
)

// scriptedLines replays inputs and accepts every suggestion unchanged.
type scriptedLines struct {
	inputs      []string
	suggestions []string
	history     []string
}

func (s *scriptedLines) Prompt(string) (string, error) {
	if len(s.inputs) == 0 {
		return "", io.EOF
	}
	next := s.inputs[0]
	s.inputs = s.inputs[1:]
	return next, nil
}

func (s *scriptedLines) PromptWithSuggestion(_, text string, _ int) (string, error) {
	s.suggestions = append(s.suggestions, text)
	return text, nil
}

func (s *scriptedLines) AppendHistory(item string) {
	s.history = append(s.history, item)
}

type yes struct{}

func (yes) Confirm(string) bool { return true }

type replHarness struct {
	repl   *chatREPL
	out    *bytes.Buffer
	screen *bytes.Buffer
	copied []string
}

func newREPLHarness(t *testing.T) *replHarness {
	t.Helper()

	cfg := config.NewDefaultConfig(t.TempDir())
	cfg.MinDelayMS = 1
	cfg.MaxDelayMS = 3
	cfg.TypingIntervalMS = 1
	cfg.Seed = 42

	kv := storage.NewMemoryStorage()
	a := &app{cfg: cfg, kv: kv, pack: response.DefaultPack()}
	prefs, err := theme.Load(kv)
	require.NoError(t, err)

	h := &replHarness{out: &bytes.Buffer{}, screen: &bytes.Buffer{}}
	view := console.New(h.screen, io.Discard, console.Options{})
	ctrl := a.newControllerWith(view, yes{}, prefs, schedule.Clock{})
	t.Cleanup(ctrl.Close)
	require.NoError(t, ctrl.Start())

	h.repl = &chatREPL{
		ctrl: ctrl,
		view: view,
		pack: a.pack,
		out:  h.out,
		copy: func(text string) error {
			h.copied = append(h.copied, text)
			return nil
		},
	}
	return h
}

func TestChatREPL_Turn(t *testing.T) {
	h := newREPLHarness(t)
	lines := &scriptedLines{inputs: []string{"   ", "hello", "/exit"}}

	require.NoError(t, h.repl.run(context.Background(), lines))

	messages := h.repl.ctrl.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "hello", messages[0].Content)
	assert.Equal(t, ragechat.SenderAI, messages[1].Sender)
	assert.Contains(t, response.DefaultPack().Categories[0].Replies, messages[1].Content)
	assert.Equal(t, []string{"hello"}, lines.history)
	assert.Contains(t, h.out.String(), "Goodbye!")
}

func TestChatREPL_EOFEndsSession(t *testing.T) {
	h := newREPLHarness(t)

	require.NoError(t, h.repl.run(context.Background(), &scriptedLines{}))
	assert.Contains(t, h.out.String(), "Goodbye!")
}

func TestChatREPL_QuickPromptPrefill(t *testing.T) {
	h := newREPLHarness(t)
	prompts := h.repl.pack.QuickPrompts
	lines := &scriptedLines{inputs: []string{"/quick 2"}}

	require.NoError(t, h.repl.run(context.Background(), lines))

	assert.Equal(t, []string{prompts[1]}, lines.suggestions)
	messages := h.repl.ctrl.Messages()
	require.NotEmpty(t, messages)
	assert.Equal(t, prompts[1], messages[0].Content)
}

func TestChatREPL_QuickPromptErrors(t *testing.T) {
	h := newREPLHarness(t)

	for _, cmd := range []string{"/quick 0", "/quick 99", "/quick two"} {
		assert.True(t, h.repl.handleCommand(cmd))
	}
	assert.Equal(t, 3, bytes.Count(h.out.Bytes(), []byte("No quick prompt")))
	assert.Equal(t, "", h.repl.view.TakeDraft())

	h.repl.handleCommand("/quick")
	for _, p := range h.repl.pack.QuickPrompts {
		assert.Contains(t, h.out.String(), p)
	}
}

func TestChatREPL_CopyLastCode(t *testing.T) {
	h := newREPLHarness(t)

	h.repl.handleCommand("/copy")
	assert.Contains(t, h.out.String(), "Nothing to copy.")
	assert.Empty(t, h.copied)

	lines := &scriptedLines{inputs: []string{"teach me css", "/copy"}}
	require.NoError(t, h.repl.run(context.Background(), lines))

	require.Len(t, h.copied, 1)
	assert.Contains(t, h.copied[0], "display: block !important;")
	assert.Contains(t, h.out.String(), copyWarning)
}

func TestChatREPL_CopyFailureIgnored(t *testing.T) {
	h := newREPLHarness(t)
	h.repl.copy = func(string) error { return errors.New("no clipboard") }

	lines := &scriptedLines{inputs: []string{"js?", "/copy", "/exit"}}
	require.NoError(t, h.repl.run(context.Background(), lines))
	assert.Contains(t, h.out.String(), copyWarning)
}

func TestChatREPL_Commands(t *testing.T) {
	h := newREPLHarness(t)

	assert.True(t, h.repl.handleCommand("/voice"))
	assert.True(t, h.repl.handleCommand("/attach"))
	messages := h.repl.ctrl.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, session.VoiceReply, messages[0].Content)
	assert.Equal(t, session.AttachReply, messages[1].Content)

	assert.True(t, h.repl.handleCommand("/clear"))
	assert.Empty(t, h.repl.ctrl.Messages())
	assert.Contains(t, h.screen.String(), session.PlaceholderText)

	assert.True(t, h.repl.handleCommand("/theme"))
	assert.Equal(t, ragechat.ThemeDark, h.repl.ctrl.Theme())
	assert.Contains(t, h.screen.String(), "Theme: dark")

	assert.True(t, h.repl.handleCommand("/HELP"))
	assert.Contains(t, h.out.String(), "Available commands:")

	assert.True(t, h.repl.handleCommand("/nope"))
	assert.Contains(t, h.out.String(), "Unknown command: /nope")

	assert.False(t, h.repl.handleCommand("/quit"))
}

func TestChatREPL_ContextCancelled(t *testing.T) {
	h := newREPLHarness(t)
	h.repl.ctrl.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A closed controller ignores sends, so the loop never waits.
	lines := &scriptedLines{inputs: []string{"hello"}}
	require.NoError(t, h.repl.run(ctx, lines))
	assert.Empty(t, lines.history)
}

func TestIsYes(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y", true},
		{"Y", true},
		{" yes ", true},
		{"", false},
		{"n", false},
		{"yep", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, isYes(tt.input))
		})
	}
}

func TestLastCodeBlock(t *testing.T) {
	messages := []ragechat.Message{
		{Sender: ragechat.SenderAI, Content: "```go\nfirst\n```"},
		{Sender: ragechat.SenderAI, Content: "no code"},
		{Sender: ragechat.SenderUser, Content: "```go\nmine\n```"},
	}

	code, ok := lastCodeBlock(messages)
	require.True(t, ok)
	assert.Equal(t, "first", code)

	_, ok = lastCodeBlock(messages[1:])
	assert.False(t, ok)
}
