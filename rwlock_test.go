package ufiber

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRWLockMultipleReadersConcurrent(t *testing.T) {
	initTest(t)

	rw := NewRWLock()
	require.NoError(t, rw.RLock())
	require.True(t, rw.TryRLock(), "a second reader must not be blocked by the first")
	require.False(t, rw.TryLock(), "a writer must not acquire while readers hold the lock")

	require.NoError(t, rw.RUnlock())
	require.NoError(t, rw.RUnlock())
	require.True(t, rw.TryLock())
}

func TestRWLockTryLockFailsWhileWriterHeld(t *testing.T) {
	initTest(t)

	rw := NewRWLock()
	require.NoError(t, rw.Lock())
	require.False(t, rw.TryLock())
	require.False(t, rw.TryRLock())
	require.NoError(t, rw.Unlock())
	require.True(t, rw.TryRLock())
}

func TestRWLockUnlockWithoutHolderFails(t *testing.T) {
	initTest(t)

	rw := NewRWLock()
	require.ErrorIs(t, rw.Unlock(), ErrInvalid)
	require.ErrorIs(t, rw.RUnlock(), ErrInvalid)
}

// When a writer unlocks with another writer already queued, the hand-off
// must be atomic: the lock reads as write-held for the whole window between
// the wake and the queued writer actually running, so nothing else —
// including the unlocking fiber itself, calling back in before yielding —
// can acquire it out from under the queued writer.
func TestRWLockWriterToWriterHandoffIsAtomic(t *testing.T) {
	initTest(t)

	rw := NewRWLock()
	require.NoError(t, rw.Lock())

	var order []string

	w1, err := Create(func(any) any {
		require.NoError(t, rw.Lock())
		order = append(order, "w1")
		require.NoError(t, rw.Unlock())
		return nil
	}, nil, 0)
	require.NoError(t, err)

	w2, err := Create(func(any) any {
		require.NoError(t, rw.Lock())
		order = append(order, "w2")
		require.NoError(t, rw.Unlock())
		return nil
	}, nil, 0)
	require.NoError(t, err)

	Yield() // let w1 reach Lock() and queue
	Yield() // let w2 reach Lock() and queue

	require.NoError(t, rw.Unlock())
	// w1 has only been marked READY by the Unlock above, not actually
	// resumed yet: the lock must still read as write-held, or this TryLock
	// would succeed and hand a second fiber the write lock concurrently
	// with w1.
	require.False(t, rw.TryLock(), "write lock must stay held through the hand-off, before the woken writer has actually run")

	_, err = Join(w1)
	require.NoError(t, err)
	_, err = Join(w2)
	require.NoError(t, err)

	require.Equal(t, []string{"w1", "w2"}, order)
}

func TestRWLockDestroyWakesBothQueues(t *testing.T) {
	initTest(t)

	rw := NewRWLock()
	require.NoError(t, rw.Lock())

	var readErr, writeErr error
	reader, err := Create(func(any) any {
		readErr = rw.RLock()
		return nil
	}, nil, 0)
	require.NoError(t, err)
	writer, err := Create(func(any) any {
		writeErr = rw.Lock()
		return nil
	}, nil, 0)
	require.NoError(t, err)

	Yield()
	Yield()
	rw.Destroy()

	_, err = Join(reader)
	require.NoError(t, err)
	_, err = Join(writer)
	require.NoError(t, err)

	require.ErrorIs(t, readErr, ErrInvalid)
	require.ErrorIs(t, writeErr, ErrInvalid)
}
