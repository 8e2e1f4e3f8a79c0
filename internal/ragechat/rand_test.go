package ragechat

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockedRand_SameSequence(t *testing.T) {
	plain := rand.New(rand.NewPCG(7, 7))
	locked := NewLockedRand(rand.New(rand.NewPCG(7, 7)))

	for range 10 {
		assert.Equal(t, plain.IntN(100), locked.IntN(100))
		assert.Equal(t, plain.Int64N(1000), locked.Int64N(1000))
		assert.Equal(t, plain.Float64(), locked.Float64())
	}
}

func TestLockedRand_Concurrent(t *testing.T) {
	locked := NewLockedRand(rand.New(rand.NewPCG(1, 2)))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				n := locked.IntN(5)
				assert.True(t, n >= 0 && n < 5)
			}
		}()
	}
	wg.Wait()
}
