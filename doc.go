// Package ufiber is a user-space cooperative fiber runtime for a single
// goroutine. It multiplexes many lightweight execution contexts ("fibers")
// over one logical thread of control, with explicit yield points and no
// preemption, and provides the primitives a programmer would otherwise get
// from kernel threads: creation, join, self-identification, voluntary yield,
// directed yield, and exit, plus a family of synchronization objects
// (mutex, barrier, reader-writer lock, condition variable) built on a
// common wait-queue substrate.
//
// # Execution model
//
// Every fiber, including the one that calls Init, is backed by exactly one
// goroutine. At any instant exactly one of those goroutines is actually
// running application code; every other fiber's goroutine is parked on its
// own resume channel (see context.go). A context switch is a rendezvous:
// signal the incoming fiber's resume channel, then block on the outgoing
// fiber's resume channel. This reproduces single-threaded cooperative
// scheduling — no two fibers ever run concurrently, and all state
// transitions between one fiber's suspension points are serialized with
// respect to every other fiber — without requiring a raw stack-pointer
// swap, which Go does not expose.
//
// # Deadlock detection
//
// Whenever the ready queue becomes empty while blocked fibers exist, the
// scheduler forcibly wakes the most recently blocked fiber with
// ErrDeadlock. There is no timeout support and no preemption: a blocked
// fiber only resumes when another fiber explicitly wakes it, or the whole
// program has nothing left to run.
//
// # Concurrency
//
// The runtime is not safe to call from multiple goroutines running
// application code concurrently, nor from signal handlers. All exported
// functions are expected to be called from the currently-running fiber.
package ufiber
