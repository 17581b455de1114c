package ufiber

import "container/list"

// blockOn suspends the current fiber on wait queue q, delivering its wake
// value into slot when woken. Mirrors original_source/ufiber.c's block().
func blockOn(q *list.List, slot *wakeResult) {
	cur := rt.current
	cur.wakeSlot = slot
	cur.state = stateBlocked
	cur.blockedOn = q
	cur.elem = q.PushBack(cur)
	rt.lastBlocked = cur
	schedule()
}

// wake unblocks f, delivering v through its wake slot, removing it from
// whichever wait queue it was on, and placing it on the ready queue.
func wake(f *fcb, v wakeResult) {
	if f.wakeSlot != nil {
		*f.wakeSlot = v
		f.wakeSlot = nil
	}
	if f.blockedOn != nil && f.elem != nil {
		f.blockedOn.Remove(f.elem)
	}
	f.blockedOn = nil
	ready(f)
}

// wakeOne wakes the head of q, if any, delivering v. FIFO: the longest-
// waiting fiber on q goes first.
func wakeOne(q *list.List, v wakeResult) {
	if e := q.Front(); e != nil {
		wake(e.Value.(*fcb), v)
	}
}

// wakeAll wakes every fiber on q with v, head to tail, saving each
// successor before unlinking its predecessor — the same safe-iteration
// discipline the teacher (socket515-gaio's handleEvents) uses when it may
// remove the node it is currently visiting.
func wakeAll(q *list.List, v wakeResult) {
	for e := q.Front(); e != nil; {
		next := e.Next()
		wake(e.Value.(*fcb), v)
		e = next
	}
}
