package ufiber

import "container/list"

// BarrierSerial is returned by Wait to exactly one of the fibers released
// by a barrier's final arrival, mirroring pthread_barrier_wait's
// PTHREAD_BARRIER_SERIAL_THREAD. Callers that need exactly one fiber to
// run a once-per-round action (e.g. swapping double-buffers) check for
// this value.
const BarrierSerial = -1

// Barrier releases a fixed-size group of fibers together once all of them
// have called Wait. A Barrier is single-use: once it releases, a further
// Wait returns ErrInvalid rather than silently starting a new round —
// reuse is the caller's responsibility via a new NewBarrier, matching
// spec.md §4.7 and SPEC_FULL.md §9.5. Grounded on original_source/
// ufiber.c's ufiber_barrier_t.
type Barrier struct {
	n        int
	waiting  int
	released bool
	waiters  list.List
}

// NewBarrier returns a Barrier that releases its waiters once n fibers
// have called Wait. n must be at least 1.
func NewBarrier(n int) *Barrier {
	if n < 1 {
		n = 1
	}
	return &Barrier{n: n}
}

// Wait blocks until n fibers (n given to NewBarrier) have all called Wait,
// then releases them all together. Exactly one caller per round receives
// BarrierSerial; every other caller receives 0. Once released, b is spent:
// any further call to Wait returns ErrInvalid without blocking.
func (b *Barrier) Wait() (int, error) {
	if b.released {
		return 0, ErrInvalid
	}

	b.waiting++
	if b.waiting < b.n {
		var slot wakeResult
		blockOn(&b.waiters, &slot)
		if slot.err != nil {
			return 0, slot.err
		}
		rv, _ := slot.value.(int)
		return rv, nil
	}

	b.released = true
	wakeAll(&b.waiters, wakeResult{value: 0})
	return BarrierSerial, nil
}

// Destroy wakes every fiber currently blocked in Wait with ErrInvalid and
// spends b, just like a natural release: any further Wait also returns
// ErrInvalid.
func (b *Barrier) Destroy() {
	b.released = true
	wakeAll(&b.waiters, wakeResult{err: ErrInvalid})
}
