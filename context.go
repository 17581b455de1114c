package ufiber

// This file is the context-switch boundary described in spec.md §4.1 and
// SPEC_FULL.md §4.1: build_initial_context and swap. Go exposes no portable
// way to swap a raw stack pointer, so every fiber is backed by one
// goroutine, and "saved context" is a capacity-1 channel that a swap
// signals to hand control to a specific fiber.
//
// At most one fiber's goroutine is ever unblocked from its resume channel
// at a time: swap always signals the incoming side before parking on the
// outgoing side, so the handoff is a strict baton pass, never a fan-out.

// trampoline is the first thing a freshly created fiber's goroutine runs.
// It parks until the scheduler performs the fiber's first context switch,
// then calls the entry function and exits with its result — the Go
// realization of build_initial_context's stack frame plus the asm
// trampoline that calls entry then exit.
func trampoline(f *fcb) {
	<-f.resume
	rv := f.entry(f.arg)
	Exit(rv)
}

// swap hands control to in and parks out until something swaps back to it.
// Equivalent to the source's __ufiber_switch(&out->esp, &in->esp).
func swap(out, in *fcb) {
	in.resume <- struct{}{}
	<-out.resume
}
