package ufiber

import "container/list"

// Cond is a condition variable scoped to fibers, used together with a
// Mutex exactly like its pthread counterpart. Grounded on
// original_source/ufiber.c's ufiber_cond_t, with one deliberate
// correction: the original's cond_wait calls mutex_unlock both before
// blocking and again after waking, which double-releases a lock the
// caller never re-acquired. Wait here releases m once, blocks, and
// re-acquires m before returning, matching the contract every caller of a
// condition variable actually needs.
type Cond struct {
	waiters list.List
}

// NewCond returns a new, empty Cond.
func NewCond() *Cond {
	return &Cond{}
}

// Wait atomically releases m and blocks the calling fiber until Signal or
// Broadcast wakes it, then re-acquires m before returning. m must be held
// by the caller on entry. m is held again on return unless releasing m
// fails (the caller did not hold it) or re-acquiring it fails; Wait then
// returns the wake error if there was one, and otherwise that failure.
func (c *Cond) Wait(m *Mutex) error {
	if err := m.Unlock(); err != nil {
		return err
	}

	var slot wakeResult
	blockOn(&c.waiters, &slot)

	if lockErr := m.Lock(); lockErr != nil {
		if slot.err != nil {
			return slot.err
		}
		return lockErr
	}
	return slot.err
}

// Signal wakes one fiber waiting on c, if any.
func (c *Cond) Signal() {
	wakeOne(&c.waiters, wakeResult{})
}

// Broadcast wakes every fiber waiting on c.
func (c *Cond) Broadcast() {
	wakeAll(&c.waiters, wakeResult{})
}

// Destroy is a no-op, present only for API parity with the other three
// primitives: unlike them, a condition variable carries no state a waiter
// could be left holding after c goes out of use.
func (c *Cond) Destroy() {}
