package ufiber

import "container/list"

// fiberState is the lifecycle state of a fiber control block.
type fiberState int32

const (
	stateReady fiberState = iota
	stateBlocked
	stateDead
)

func (s fiberState) String() string {
	switch s {
	case stateReady:
		return "READY"
	case stateBlocked:
		return "BLOCKED"
	case stateDead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}

// wakeResult is the typed variant delivered through a wake_slot, replacing
// the original's overloaded void* return channel (spec.md/SPEC_FULL.md
// §3, §9 Design Notes): a waiter either wakes with an ok value or an error.
type wakeResult struct {
	value any
	err   error
}

// fcb is the fiber control block: one per fiber, exactly as spec.md §3
// describes (state, entry/arg, a saved-context handle, return value,
// join-waiter queue, a back-reference to whichever wait queue currently
// holds it, a wake slot, a reference count, creation flags, and membership
// in exactly one list at a time).
type fcb struct {
	state fiberState

	entry func(any) any
	arg   any

	// resume is the Go realization of "saved stack pointer": the context
	// switch boundary described in SPEC_FULL.md §4.1. Capacity 1 so a
	// swap's signal never blocks even if the receiver hasn't parked yet.
	resume chan struct{}

	retval any // set by exit, read by joiners

	joinWaiters list.List // wait queue of fibers blocked in Join on this fcb

	// blockedOn is a non-owning back-reference to the wait queue this fcb
	// currently sits on while BLOCKED; nil otherwise. Used to remove the
	// fcb from the right list on wake without having to search every
	// queue in the runtime.
	blockedOn *list.List
	elem      *list.Element // this fcb's node within blockedOn/readyQueue/freeList

	wakeSlot *wakeResult // where to deliver this fcb's wake value, set at block time

	refCount int
	flags    Flag
	sticky   bool // true only for the root fiber; Unref becomes a no-op
}

// resetFCB zeroes every field that must not leak between two lifetimes of a
// recycled fcb (spec.md §9 Open Question 2, resolved in SPEC_FULL.md §9.3:
// reset all of them on reuse).
func resetFCB(f *fcb) {
	f.state = stateReady
	f.entry = nil
	f.arg = nil
	f.retval = nil
	f.joinWaiters.Init()
	f.blockedOn = nil
	f.elem = nil
	f.wakeSlot = nil
	f.refCount = 0
	f.flags = 0
	f.sticky = false
	// resume is deliberately NOT reallocated when non-nil: a fresh chan is
	// only needed the first time an fcb is minted, since the channel
	// itself carries no state between uses once both ends have rendezvoused.
	if f.resume == nil {
		f.resume = make(chan struct{}, 1)
	}
}

// Flag is a bitmask of fiber creation flags.
type Flag uint

const (
	// Detached means Create retains no joinable handle reference; the
	// fiber's fcb is freed as soon as it exits, and Join must not be
	// called on it.
	Detached Flag = 1 << iota
)

// Fiber is an opaque handle to a fiber control block, returned by Self and
// Create and accepted by Join, YieldTo, Ref, and Unref.
type Fiber struct {
	f *fcb
}

// IsZero reports whether the handle refers to no fiber.
func (h Fiber) IsZero() bool { return h.f == nil }
