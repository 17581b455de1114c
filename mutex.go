package ufiber

import "container/list"

// Mutex is a non-reentrant mutual-exclusion lock scoped to fibers, not
// goroutines: Lock/Unlock must be called from the fiber that owns the
// lock. Grounded on original_source/ufiber.c's ufiber_mutex_t, generalized
// from its fixed-size waiter array into a FIFO wait queue matching the
// rest of this package.
type Mutex struct {
	locked  bool
	owner   *fcb
	waiters list.List
}

// NewMutex returns an unlocked Mutex.
func NewMutex() *Mutex {
	return &Mutex{}
}

// Lock acquires m, blocking the calling fiber if it is already held.
// Locking a mutex already held by the calling fiber deadlocks it: with no
// other fiber able to unlock m, the ready queue eventually empties and the
// scheduler's deadlock detector wakes the caller with ErrDeadlock. No
// special-case self-deadlock check is needed; schedule() already does it.
func (m *Mutex) Lock() error {
	if !m.locked {
		m.locked = true
		m.owner = rt.current
		return nil
	}

	var slot wakeResult
	blockOn(&m.waiters, &slot)
	if slot.err != nil {
		return slot.err
	}
	m.owner = rt.current
	return nil
}

// TryLock attempts to acquire m without blocking, reporting whether it
// succeeded.
func (m *Mutex) TryLock() bool {
	if m.locked {
		return false
	}
	m.locked = true
	m.owner = rt.current
	return true
}

// Unlock releases m. Unlocking a mutex not held by the calling fiber is a
// usage error, reported as ErrInvalid rather than silently handing the
// lock to an arbitrary fiber.
func (m *Mutex) Unlock() error {
	if !m.locked || m.owner != rt.current {
		return ErrInvalid
	}

	if m.waiters.Len() == 0 {
		m.locked = false
		m.owner = nil
		return nil
	}

	// Ownership transfers directly to the fiber at the head of the wait
	// queue, mirroring the original source: the lock is never observably
	// unlocked between one owner and the next.
	next := m.waiters.Front().Value.(*fcb)
	wakeOne(&m.waiters, wakeResult{})
	m.owner = next
	return nil
}

// Destroy wakes every fiber currently blocked in Lock with ErrInvalid. m
// must not be used afterward; doing so is undefined behavior, matching
// original_source/ufiber.c's ufiber_mutex_destroy.
func (m *Mutex) Destroy() {
	wakeAll(&m.waiters, wakeResult{err: ErrInvalid})
}
