// Package schedule provides cancellable one-shot and repeating tasks.
//
// Clock runs tasks on real timers. Manual runs them only when its time is
// advanced, which lets tests drive the typing animation and reply delay
// deterministically.
package schedule

import (
	"sync"
	"time"
)

// Token cancels a scheduled task.
type Token interface {
	// Cancel stops the task. It reports whether the task was still live;
	// cancelling twice, or after a one-shot task ran, returns false.
	// Cancel never waits for a running callback to return.
	Cancel() bool
}

// Scheduler schedules tasks on a timeline.
type Scheduler interface {
	// AfterFunc runs f once after d.
	AfterFunc(d time.Duration, f func()) Token

	// Every runs f every d until cancelled. d must be positive.
	Every(d time.Duration, f func()) Token
}

// Clock is a Scheduler backed by the time package.
type Clock struct{}

// AfterFunc implements Scheduler.
func (Clock) AfterFunc(d time.Duration, f func()) Token {
	return timerToken{time.AfterFunc(d, f)}
}

// Every implements Scheduler.
func (Clock) Every(d time.Duration, f func()) Token {
	t := &tickerToken{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go t.run(f)
	return t
}

type timerToken struct {
	timer *time.Timer
}

func (t timerToken) Cancel() bool {
	return t.timer.Stop()
}

type tickerToken struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerToken) run(f func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			// A tick and a cancel can be ready together; cancel wins.
			select {
			case <-t.done:
				return
			default:
			}
			f()
		}
	}
}

func (t *tickerToken) Cancel() bool {
	cancelled := false
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
		cancelled = true
	})
	return cancelled
}
