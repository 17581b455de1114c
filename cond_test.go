package ufiber

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A waiter on a Cond re-acquires the paired mutex before Wait returns,
// never observing the lock unheld between wake and return.
func TestCondWaitReacquiresMutex(t *testing.T) {
	initTest(t)

	m := NewMutex()
	c := NewCond()
	ready := false
	var sawLocked bool

	waiter, err := Create(func(any) any {
		require.NoError(t, m.Lock())
		for !ready {
			require.NoError(t, c.Wait(m))
		}
		sawLocked = !m.TryLock() // TryLock must fail: Wait already re-locked m
		require.NoError(t, m.Unlock())
		return nil
	}, nil, 0)
	require.NoError(t, err)

	Yield() // let waiter reach Wait and block

	require.NoError(t, m.Lock())
	ready = true
	c.Signal()
	require.NoError(t, m.Unlock())

	_, err = Join(waiter)
	require.NoError(t, err)
	require.True(t, sawLocked)
}

func TestCondBroadcastWakesEveryWaiter(t *testing.T) {
	initTest(t)

	m := NewMutex()
	c := NewCond()
	ready := false
	woken := 0

	const n = 3
	fibers := make([]Fiber, n)
	for i := 0; i < n; i++ {
		f, err := Create(func(any) any {
			require.NoError(t, m.Lock())
			for !ready {
				require.NoError(t, c.Wait(m))
			}
			woken++
			require.NoError(t, m.Unlock())
			return nil
		}, nil, 0)
		require.NoError(t, err)
		fibers[i] = f
		Yield()
	}

	require.NoError(t, m.Lock())
	ready = true
	c.Broadcast()
	require.NoError(t, m.Unlock())

	for _, f := range fibers {
		_, err := Join(f)
		require.NoError(t, err)
	}
	require.Equal(t, n, woken)
}
