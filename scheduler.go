package ufiber

// ready marks f READY and appends it to the tail of the global ready
// queue. f must not currently be linked on any other list.
func ready(f *fcb) {
	f.state = stateReady
	f.elem = rt.ready.PushBack(f)
}

// Yield appends the calling fiber to the tail of the ready queue and
// transfers control to the scheduler. Strict FIFO: the yielder runs again
// only after every fiber already in the ready queue has had its turn.
func Yield() {
	ready(rt.current)
	schedule()
}

// YieldTo transfers control directly to target, bypassing the rest of the
// ready queue, but still enqueues the caller at the tail first so the
// remaining ready-queue order is undisturbed. Returns ErrNoSuch if target
// has exited, or ErrBusy if it is not currently READY (e.g. already
// current, or blocked).
func YieldTo(target Fiber) error {
	if target.IsZero() {
		return ErrNoSuch
	}
	f := target.f
	if f.state == stateDead {
		return ErrNoSuch
	}
	if f == rt.current || f.state != stateReady {
		return ErrBusy
	}

	rt.ready.Remove(f.elem)
	f.elem = nil
	ready(rt.current)
	swapTo(f)
	return nil
}

// schedule picks the head of the ready queue and resumes it. If the ready
// queue is empty, the whole program has nothing left to run: the most
// recently blocked fiber is forced awake with ErrDeadlock so its blocking
// call can return that error instead of hanging forever.
func schedule() {
	if rt.ready.Len() == 0 {
		if rt.lastBlocked == nil {
			panic("ufiber: deadlock with no blocked fiber to resume")
		}
		logger.Warn().Msg("ufiber: ready queue empty, forcing deadlocked fiber awake")
		wake(rt.lastBlocked, wakeResult{err: ErrDeadlock})
	}

	e := rt.ready.Front()
	next := e.Value.(*fcb)
	rt.ready.Remove(e)
	next.elem = nil
	swapTo(next)
}

// swapTo makes target the running fiber and performs the context switch.
func swapTo(target *fcb) {
	out := rt.current
	rt.current = target
	swap(out, target)
}

// finish transfers control to the next ready fiber the same way schedule
// does, but never waits to be resumed again: used only by Exit, whose
// goroutine terminates right after this call returns. Using the two-way
// swap here instead would park the exiting fiber's goroutine forever on
// its own resume channel, which races the next occupant of its (recycled)
// fcb for that channel's wakeup signal.
func finish() {
	if rt.ready.Len() == 0 {
		if rt.lastBlocked == nil {
			panic("ufiber: deadlock with no blocked fiber to resume")
		}
		logger.Warn().Msg("ufiber: ready queue empty, forcing deadlocked fiber awake")
		wake(rt.lastBlocked, wakeResult{err: ErrDeadlock})
	}

	e := rt.ready.Front()
	next := e.Value.(*fcb)
	rt.ready.Remove(e)
	next.elem = nil
	rt.current = next
	next.resume <- struct{}{}
}
