// Package session runs the chat turn lifecycle: user input, the simulated
// typing delay, the canned reply and persistence.
package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/longkey1/ragechat/internal/ragechat"
	"github.com/longkey1/ragechat/internal/ragechat/conversation"
	"github.com/longkey1/ragechat/internal/ragechat/response"
	"github.com/longkey1/ragechat/internal/ragechat/schedule"
	"github.com/longkey1/ragechat/internal/ragechat/theme"
	"github.com/longkey1/ragechat/internal/ragechat/typing"
)

// Canned strings used outside the response pack.
const (
	ClearQuestion   = "Are you rage quitting?"
	PlaceholderText = "Oh look, you deleted the chat history. Trying to hide the evidence of your bad prompts?"
	PlaceholderTime = "Now"
	VoiceReply      = "🎤 I'm not listening to your voice. Type it like a normal person."
	AttachReply     = "📎 I don't want your files. They probably have bugs."
)

// Default reply delay bounds.
const (
	DefaultMinDelay = 1000 * time.Millisecond
	DefaultMaxDelay = 4000 * time.Millisecond
)

// View is the rendering surface the controller drives.
type View interface {
	typing.Display

	// RenderMessage appends a message to the visible transcript.
	RenderMessage(m ragechat.Message)

	// ResetTranscript empties the visible transcript.
	ResetTranscript()

	// ClearInput empties the input field after a send.
	ClearInput()

	// FillInput puts text in the input field without sending it.
	FillInput(text string)

	// ApplyTheme switches the display theme.
	ApplyTheme(t ragechat.Theme)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) bool
}

// Deps are the collaborators of a Controller.
type Deps struct {
	Store     *conversation.Store
	Engine    *response.Engine
	Theme     *theme.Preference
	Scheduler schedule.Scheduler
	Rand      ragechat.Rand
	View      View
	Confirmer Confirmer
	Phrases   []string // typing indicator phrases
}

// Options tune timing and logging. Zero values select the defaults.
type Options struct {
	MinDelay       time.Duration
	MaxDelay       time.Duration
	TypingInterval time.Duration
	Now            func() time.Time
	Logger         *slog.Logger
}

// Controller orchestrates one chat. At most one turn is in flight at a time.
type Controller struct {
	mu       sync.Mutex
	store    *conversation.Store
	engine   *response.Engine
	themes   *theme.Preference
	typing   *typing.Simulator
	sched    schedule.Scheduler
	rnd      ragechat.Rand
	view     View
	confirm  Confirmer
	opts     Options
	pending  schedule.Token
	turnDone chan struct{}
	closed   bool
}

// New wires a controller. Call Start before the first turn.
func New(deps Deps, opts Options) *Controller {
	if opts.MinDelay <= 0 {
		opts.MinDelay = DefaultMinDelay
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = DefaultMaxDelay
	}
	if opts.MaxDelay < opts.MinDelay {
		opts.MaxDelay = opts.MinDelay
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Controller{
		store:   deps.Store,
		engine:  deps.Engine,
		themes:  deps.Theme,
		typing:  typing.NewSimulator(deps.Scheduler, deps.Rand, deps.View, deps.Phrases, opts.TypingInterval),
		sched:   deps.Scheduler,
		rnd:     deps.Rand,
		view:    deps.View,
		confirm: deps.Confirmer,
		opts:    opts,
	}
}

// Start applies the stored theme and renders the stored conversation in order.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.view.ApplyTheme(c.themes.Current())

	messages, err := c.store.Load()
	if err != nil {
		return err
	}
	for _, m := range messages {
		c.view.RenderMessage(m)
	}
	c.opts.Logger.Debug("chat restored", "messages", len(messages), "theme", c.themes.Current())
	return nil
}

// SendMessage starts a turn. It reports false, changing nothing, when the
// trimmed text is empty, a turn is already pending, or the controller is closed.
func (c *Controller) SendMessage(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" || c.pending != nil || c.closed {
		return false
	}

	m := ragechat.NewMessage(text, ragechat.SenderUser, c.opts.Now())
	c.store.Append(m)
	c.view.RenderMessage(m)
	c.view.ClearInput()

	c.typing.Start()

	done := make(chan struct{})
	delay := c.replyDelay()
	c.turnDone = done
	c.pending = c.sched.AfterFunc(delay, func() { c.complete(text, done) })

	c.opts.Logger.Debug("turn started", "delay", delay)
	return true
}

func (c *Controller) replyDelay() time.Duration {
	span := c.opts.MaxDelay - c.opts.MinDelay
	if span <= 0 {
		return c.opts.MinDelay
	}
	return c.opts.MinDelay + time.Duration(c.rnd.Int64N(int64(span)))
}

func (c *Controller) complete(text string, done chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Cancelled by Close after the timer had already fired.
	if c.turnDone != done {
		return
	}
	defer func() {
		c.pending = nil
		c.turnDone = nil
		close(done)
	}()

	c.typing.Stop()

	reply := c.engine.Reply(text)
	m := ragechat.NewMessage(reply, ragechat.SenderAI, c.opts.Now())
	c.store.Append(m)
	c.view.RenderMessage(m)

	if err := c.store.Save(); err != nil {
		c.opts.Logger.Warn("failed to save chat history", "error", err)
	}
	c.opts.Logger.Debug("turn completed", "category", c.engine.Classify(text))
}

// ClearChat asks for confirmation, then empties the conversation and its
// persisted copy and shows the placeholder message, which is not stored.
// A pending turn is not cancelled; its reply lands in the new conversation.
func (c *Controller) ClearChat() bool {
	if !c.confirm.Confirm(ClearQuestion) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Clear(); err != nil {
		c.opts.Logger.Warn("failed to clear chat history", "error", err)
	}
	c.view.ResetTranscript()
	c.view.RenderMessage(Placeholder(c.opts.Now()))
	return true
}

// Placeholder returns the message shown after a clear.
func Placeholder(now time.Time) ragechat.Message {
	return ragechat.Message{
		ID:        now.UnixMilli(),
		Content:   PlaceholderText,
		Sender:    ragechat.SenderAI,
		Timestamp: PlaceholderTime,
	}
}

// ToggleTheme flips and stores the theme and applies it to the view.
func (c *Controller) ToggleTheme() ragechat.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.themes.Toggle()
	if err != nil {
		c.opts.Logger.Warn("failed to save theme", "error", err)
	}
	c.view.ApplyTheme(t)
	return t
}

// Theme returns the active theme.
func (c *Controller) Theme() ragechat.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.themes.Current()
}

// FillPrompt puts a quick prompt in the input without sending it.
func (c *Controller) FillPrompt(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.FillInput(text)
}

// Voice answers the microphone button. The reply is stored with the next turn.
func (c *Controller) Voice() {
	c.addReply(VoiceReply)
}

// Attach answers the attachment button. The reply is stored with the next turn.
func (c *Controller) Attach() {
	c.addReply(AttachReply)
}

func (c *Controller) addReply(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := ragechat.NewMessage(content, ragechat.SenderAI, c.opts.Now())
	c.store.Append(m)
	c.view.RenderMessage(m)
}

// Messages returns the conversation in order.
func (c *Controller) Messages() []ragechat.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Messages()
}

// Pending reports whether a turn is in flight.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// Typing returns the typing indicator state.
func (c *Controller) Typing() typing.State {
	return c.typing.State()
}

// Wait blocks until no turn is pending or ctx is done.
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	done := c.turnDone
	c.mu.Unlock()

	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close abandons a pending turn and stops the typing indicator. The user
// message of an abandoned turn is not persisted. Later sends are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
		close(c.turnDone)
		c.turnDone = nil
	}
	c.typing.Stop()
}
