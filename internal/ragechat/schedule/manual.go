package schedule

import (
	"sync"
	"time"
)

// Manual is a Scheduler whose time only moves when Advance is called.
// Callbacks run synchronously on the caller of Advance, in due-time order;
// tasks due at the same instant run in the order they were scheduled.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	m      *Manual
	at     time.Duration
	every  time.Duration
	seq    int
	f      func()
	active bool
}

// NewManual returns a Manual clock at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, f func()) Token {
	return m.add(d, 0, f)
}

// Every implements Scheduler.
func (m *Manual) Every(d time.Duration, f func()) Token {
	if d <= 0 {
		panic("schedule: non-positive interval for Every")
	}
	return m.add(d, d, f)
}

func (m *Manual) add(d, every time.Duration, f func()) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTask{m: m, at: m.now + d, every: every, seq: m.seq, f: f, active: true}
	m.tasks = append(m.tasks, t)
	return t
}

// Now returns the elapsed manual time.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of live tasks, repeating ones included.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Advance moves time forward by d, running every task that falls due.
// Callbacks may schedule or cancel tasks; new tasks due within the window run
// during the same call.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.at
		if next.every > 0 {
			next.at += next.every
		} else {
			m.remove(next)
		}
		f := next.f
		m.mu.Unlock()

		f()
	}
}

func (m *Manual) nextDue(target time.Duration) *manualTask {
	var next *manualTask
	for _, t := range m.tasks {
		if t.at > target {
			continue
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *Manual) remove(t *manualTask) {
	t.active = false
	for i, other := range m.tasks {
		if other == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

func (t *manualTask) Cancel() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()

	if !t.active {
		return false
	}
	t.m.remove(t)
	return true
}
