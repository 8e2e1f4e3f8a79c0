// Package typing fakes the "assistant is thinking" indicator.
package typing

import (
	"sync"
	"time"

	"github.com/longkey1/ragechat/internal/ragechat"
	"github.com/longkey1/ragechat/internal/ragechat/schedule"
)

// Highlight colors the indicator flips between on every tick.
const (
	ColorYellow  = "#ffff00"
	ColorMagenta = "#ff00ff"
)

// DefaultInterval is the indicator refresh interval.
const DefaultInterval = 300 * time.Millisecond

// State is the simulator state.
type State int

const (
	Idle State = iota
	Typing
)

func (s State) String() string {
	if s == Typing {
		return "typing"
	}
	return "idle"
}

// Display is the indicator surface driven by the simulator.
type Display interface {
	ShowTyping()
	SetTypingStatus(text, color string)
	HideTyping()
}

// Simulator drives the typing indicator between Start and Stop.
type Simulator struct {
	mu       sync.Mutex
	state    State
	ticker   schedule.Token
	sched    schedule.Scheduler
	rnd      ragechat.Rand
	display  Display
	phrases  []string
	interval time.Duration
}

// NewSimulator creates an idle simulator. phrases must not be empty.
// A non-positive interval selects DefaultInterval.
func NewSimulator(sched schedule.Scheduler, rnd ragechat.Rand, display Display, phrases []string, interval time.Duration) *Simulator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Simulator{
		sched:    sched,
		rnd:      rnd,
		display:  display,
		phrases:  phrases,
		interval: interval,
	}
}

// State returns the current state.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start enters Typing and starts the repeating status update.
// It reports false if the simulator was already typing.
func (s *Simulator) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Typing {
		return false
	}
	s.state = Typing
	s.display.ShowTyping()
	s.ticker = s.sched.Every(s.interval, s.tick)
	return true
}

// Stop cancels the repeating update and hides the indicator.
// It reports false if the simulator was already idle.
func (s *Simulator) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Idle {
		return false
	}
	s.ticker.Cancel()
	s.ticker = nil
	s.state = Idle
	s.display.HideTyping()
	return true
}

func (s *Simulator) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A tick already dequeued when Stop ran must not touch the display.
	if s.state != Typing {
		return
	}
	phrase := s.phrases[s.rnd.IntN(len(s.phrases))]
	color := ColorMagenta
	if s.rnd.Float64() > 0.5 {
		color = ColorYellow
	}
	s.display.SetTypingStatus(phrase, color)
}
