package jitter

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Random produces uniformly distributed durations for jitter transforms.
// Implementations must be safe for concurrent use.
type Random interface {
	// DurationN returns a uniformly distributed duration in [min, max].
	// When max <= min it returns min.
	DurationN(min, max time.Duration) time.Duration
}

// lockedRandom guards a math/rand source with a mutex so a single
// generator can serve concurrent retry loops.
type lockedRandom struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewRandom creates a Random backed by math/rand, seeded from the clock.
func NewRandom() Random {
	return &lockedRandom{
		src: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *lockedRandom) DurationN(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	// A span of MaxInt64 cannot be widened to the inclusive n+1 form
	// without overflowing; saturated backoff delays land here.
	n := int64(max - min)
	if n == math.MaxInt64 {
		return min + time.Duration(r.src.Int63())
	}
	return min + time.Duration(r.src.Int63n(n+1))
}

// defaultRandom is shared by jitters constructed without an explicit source.
var defaultRandom = NewRandom()
