package ufiber

import "container/list"

// RWLock is a writer-priority reader/writer lock scoped to fibers.
// Grounded on original_source/ufiber.c's ufiber_rwlock_t: once a writer is
// waiting, newly arriving readers queue behind it rather than continuing
// to pile onto an already-running set of readers, bounding writer
// starvation.
type RWLock struct {
	readers      int  // number of fibers currently holding the lock for reading
	writerActive bool // one fiber currently holds the lock for writing

	writersWaiting int // count, so a late reader knows to queue behind them
	readWaiters    list.List
	writeWaiters   list.List
}

// NewRWLock returns an unlocked RWLock.
func NewRWLock() *RWLock {
	return &RWLock{}
}

// RLock acquires r for reading. Blocks if a writer holds the lock, or if
// any writer is already waiting (writer priority), even though the lock
// itself is currently free for reading.
func (r *RWLock) RLock() error {
	if !r.writerActive && r.writersWaiting == 0 {
		r.readers++
		return nil
	}
	var slot wakeResult
	blockOn(&r.readWaiters, &slot)
	return slot.err
}

// TryRLock attempts to acquire r for reading without blocking, reporting
// whether it succeeded. Fails if a writer holds r or one is waiting,
// exactly like a blocking RLock would, rather than bypassing writer
// priority.
func (r *RWLock) TryRLock() bool {
	if r.writerActive || r.writersWaiting > 0 {
		return false
	}
	r.readers++
	return true
}

// TryLock attempts to acquire r for writing without blocking.
func (r *RWLock) TryLock() bool {
	if r.writerActive || r.readers > 0 {
		return false
	}
	r.writerActive = true
	return true
}

// RUnlock releases one reader's hold on r, handing off to a waiting writer
// once the last reader leaves.
func (r *RWLock) RUnlock() error {
	if r.readers == 0 {
		return ErrInvalid
	}
	r.readers--
	if r.readers == 0 {
		r.wakeNext()
	}
	return nil
}

// Lock acquires r for writing, blocking behind any current readers or
// writer and any writer that arrived first.
func (r *RWLock) Lock() error {
	if !r.writerActive && r.readers == 0 {
		r.writerActive = true
		return nil
	}
	r.writersWaiting++
	var slot wakeResult
	blockOn(&r.writeWaiters, &slot)
	r.writersWaiting--
	if slot.err != nil {
		return slot.err
	}
	r.writerActive = true
	return nil
}

// Unlock releases a writer's hold on r.
func (r *RWLock) Unlock() error {
	if !r.writerActive {
		return ErrInvalid
	}
	r.wakeNext()
	return nil
}

// wakeNext implements writer priority: a waiting writer goes first if one
// exists, otherwise every waiting reader is released together. A waiting
// writer inherits r's write-held state directly — writerActive is set true
// (it may already be true, when called from Unlock) before the writer is
// woken, not after, so r is never observably write-free between one writer
// handing off and the next actually running. Mirrors mutex.go's Unlock,
// which keeps its lock held straight through its own FIFO hand-off.
func (r *RWLock) wakeNext() {
	if r.writeWaiters.Len() > 0 {
		r.writerActive = true
		wakeOne(&r.writeWaiters, wakeResult{})
		return
	}
	r.writerActive = false
	if r.readWaiters.Len() > 0 {
		n := r.readWaiters.Len()
		wakeAll(&r.readWaiters, wakeResult{})
		r.readers += n
	}
}

// Destroy wakes every fiber blocked in RLock or Lock, on both queues, with
// ErrInvalid. r must not be used afterward.
func (r *RWLock) Destroy() {
	wakeAll(&r.readWaiters, wakeResult{err: ErrInvalid})
	wakeAll(&r.writeWaiters, wakeResult{err: ErrInvalid})
}
