package ragechat

import "sync"

// LockedRand serializes access to a Rand shared between goroutines.
// *math/rand/v2.Rand is not safe for concurrent use, and the typing ticker
// draws from the same source as the reply path.
type LockedRand struct {
	mu sync.Mutex
	r  Rand
}

// NewLockedRand wraps r.
func NewLockedRand(r Rand) *LockedRand {
	return &LockedRand{r: r}
}

func (l *LockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *LockedRand) Int64N(n int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Int64N(n)
}

func (l *LockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}
