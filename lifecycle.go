package ufiber

import "runtime"

// Fiber is an opaque handle to a fiber, analogous to the original source's
// ufiber_t. The zero Fiber is not valid; use the value returned by Create
// or Self.
//
// (declared in fcb.go alongside the fcb it wraps)

// Create allocates a fiber from the pool (or fresh, if the pool is empty)
// and enqueues it on the ready queue. entry receives arg and its return
// value becomes the fiber's exit value, observable via Join or via the
// runtime's process-exit path if it is the last fiber to exit.
//
// Create itself never runs entry: a brand-new goroutine is started that
// parks in trampoline until the scheduler switches to the new fiber for
// the first time.
//
// A Detached fiber starts with one reference, spent by its own Exit, so
// its fcb is released back to the pool the moment it finishes running and
// must never be passed to Join. A joinable fiber starts with two
// references — one for Exit, one reserved for whichever single call to
// Join eventually collects it — so the fcb survives until both sides are
// done with it, in either order. Grounded directly on
// original_source/ufiber.c's ufiber_create, whose tcb->ref is seeded to 1
// or 2 by the same rule.
func Create(entry func(arg any) any, arg any, flags Flag) (Fiber, error) {
	f := rt.pool.allocFCB()
	f.entry = entry
	f.arg = arg
	f.flags = flags
	if flags&Detached != 0 {
		f.refCount = 1
	} else {
		f.refCount = 2
	}

	rt.liveCount++
	go trampoline(f)
	ready(f)

	logger.Debug().Msg("ufiber: fiber created")
	return Fiber{f: f}, nil
}

// Self returns a handle to the currently running fiber.
func Self() Fiber {
	return Fiber{f: rt.current}
}

// Join waits for target to exit and returns its exit value. If target has
// already exited by the time Join is called, its stored exit value is
// returned immediately with no blocking — a fiber's exit value lives on
// in its fcb until collected. Joining self fails fast with ErrDeadlock,
// exactly like the original source's explicit fiber == current check,
// rather than waiting for the scheduler to notice the whole program has
// stalled.
//
// A fiber is meant to be joined by at most one caller, matching
// pthread_join and the reference-count contract Create establishes: a
// second concurrent Join on the same target is not supported.
func Join(target Fiber) (any, error) {
	if target.IsZero() {
		return nil, ErrNoSuch
	}
	f := target.f
	if f == rt.current {
		return nil, ErrDeadlock
	}
	if f.flags&Detached != 0 {
		return nil, ErrInvalid
	}

	var rv any
	var waitErr error
	if f.state == stateDead {
		rv = f.retval
	} else {
		var slot wakeResult
		blockOn(&f.joinWaiters, &slot)
		rv, waitErr = slot.value, slot.err
	}

	unref(f)
	if waitErr != nil {
		return nil, waitErr
	}
	return rv, nil
}

// Exit terminates the calling fiber with exit value rv, waking every
// joiner with rv and releasing the fiber's FCB back to the pool once its
// reference count allows it. If this is the last live fiber in the
// process, the runtime's configured exit function is invoked with the low
// bits of rv interpreted as an integer status, matching the original
// source's behaviour for the root fiber's natural return.
//
// Exit never returns: once control has passed to whichever fiber was
// scheduled next, it ends the calling goroutine with runtime.Goexit, so no
// code after the call runs, whether Exit was reached from trampoline or
// called directly by an entry function. Deferred calls of that goroutine
// still run, as runtime.Goexit runs them.
func Exit(rv any) {
	cur := rt.current
	cur.state = stateDead
	cur.retval = rv

	wakeAll(&cur.joinWaiters, wakeResult{value: rv})

	rt.liveCount--
	if rt.liveCount == 0 {
		logger.Info().Msg("ufiber: last fiber exited, terminating process")
		rt.exitFunc(toExitCode(rv))
		panic("ufiber: exitFunc returned")
	}

	// Unconditional: this spends the reference Create reserved for Exit.
	// A joinable fiber's second reference, reserved for Join, keeps its
	// fcb alive here even with no joiner blocked yet — Join may still
	// arrive after the fact and read retval straight off a dead fcb.
	unref(cur)

	finish()
	runtime.Goexit()
}

// toExitCode reduces a fiber's exit value to a process status code the
// way the original C entry point does by returning an int/intptr_t: an
// int, int32 or int64 value exits with its low 8 bits; nil or a value of
// any other type, including the other integer types, exits 0.
func toExitCode(rv any) int {
	switch v := rv.(type) {
	case int:
		return v & 0xff
	case int32:
		return int(v) & 0xff
	case int64:
		return int(v) & 0xff
	default:
		return 0
	}
}

// Ref increments f's reference count, deferring release of its FCB past
// the point its last joiner collects it. Mirrors original_source/ufiber.c
// ref-counting, generalized from the C's manual inc/dec pairs into an
// explicit API.
func Ref(f Fiber) {
	if !f.IsZero() {
		ref(f.f)
	}
}

// Unref decrements f's reference count, releasing its FCB back to the
// pool once the count reaches zero and the fiber has already exited.
func Unref(f Fiber) {
	if !f.IsZero() {
		unref(f.f)
	}
}

func ref(f *fcb) {
	f.refCount++
}

func unref(f *fcb) {
	if f.sticky {
		return
	}
	f.refCount--
	if f.refCount > 0 {
		return
	}
	if f.state != stateDead {
		return
	}
	f.blockedOn = nil
	f.elem = nil
	rt.pool.releaseFCB(f)
}
