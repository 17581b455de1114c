package ufiber

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// At most one fiber's goroutine is ever running application code at a
// time, even though every fiber is backed by its own goroutine: this is
// the single-runner invariant the whole package relies on to avoid
// locking shared runtime state.
func TestSingleRunnerInvariant(t *testing.T) {
	initTest(t)

	var running int32
	var sawOverlap bool

	const n = 8
	fibers := make([]Fiber, n)
	for i := 0; i < n; i++ {
		f, err := Create(func(any) any {
			// The probe brackets each stretch of code between suspension
			// points; a fiber parked in Yield is not running.
			if atomic.AddInt32(&running, 1) > 1 {
				sawOverlap = true
			}
			atomic.AddInt32(&running, -1)
			Yield()
			if atomic.AddInt32(&running, 1) > 1 {
				sawOverlap = true
			}
			atomic.AddInt32(&running, -1)
			return nil
		}, nil, 0)
		require.NoError(t, err)
		fibers[i] = f
	}

	for _, f := range fibers {
		_, err := Join(f)
		require.NoError(t, err)
	}

	require.False(t, sawOverlap, "two fiber goroutines ran application code concurrently")
}
