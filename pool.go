package ufiber

import "container/list"

// fcbPool allocates and recycles fiber control blocks, mirroring
// original_source/ufiber.c's alloc_tcb/free_tcb: a small bounded free list
// amortizes allocation, and — critically — defers freeing an exiting
// fiber's own backing resources until some other fiber's exit evicts them,
// since a fiber cannot release what it's still running on (see DESIGN.md
// for the rationale in Go terms).
type fcbPool struct {
	free list.List // bounded FIFO of recycled *fcb, most-recent at Front
	size int
	max  int // FREE_LIST_MAX; must be >= 1
}

func newFCBPool(max int) *fcbPool {
	if max < 1 {
		max = 1
	}
	p := &fcbPool{max: max}
	p.free.Init()
	return p
}

// allocFCB prefers a free-list entry (reusing both the fcb and its resume
// channel), falling back to a fresh allocation.
func (p *fcbPool) allocFCB() *fcb {
	if e := p.free.Front(); e != nil {
		p.free.Remove(e)
		p.size--
		f := e.Value.(*fcb)
		resetFCB(f)
		return f
	}
	f := &fcb{}
	resetFCB(f)
	return f
}

// releaseFCB pushes x to the head of the free list. If that overflows the
// bound, the tail (least-recently-inserted) entry is evicted and discarded
// for real — this is the slot that guarantees the fiber that just called
// Exit keeps a live goroutine/resume channel through its final context
// switch, per spec.md §4.4's rationale.
func (p *fcbPool) releaseFCB(x *fcb) {
	x.elem = nil
	p.free.PushFront(x)
	p.size++
	if p.size > p.max {
		victim := p.free.Back()
		p.free.Remove(victim)
		p.size--
		// victim's fcb (and its resume channel/goroutine) become
		// unreachable here and are left to the garbage collector —
		// the Go analogue of original_source/ufiber.c's free(stack);
		// free(victim) pair, since Go stacks and chans aren't
		// manually freed.
	}
}
