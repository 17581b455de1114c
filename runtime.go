package ufiber

import (
	"container/list"
	"os"

	"github.com/rs/zerolog"
)

const defaultFreeListCap = 1 // must be >= 1; see pool.go

// runtimeState is the process-wide singleton described in spec.md §3 and
// §9's Design Notes ("collect them into a single runtime record with
// explicit initialization"): current, root, last_blocked, live_count, the
// ready queue, and the FCB pool. It is never accessed from more than one
// goroutine's application code at a time, by the single-runner invariant,
// so it carries no internal locking.
type runtimeState struct {
	current     *fcb
	root        *fcb
	lastBlocked *fcb
	liveCount   int

	ready list.List
	pool  *fcbPool

	exitFunc func(code int)
}

var rt *runtimeState

// Option configures the runtime at Init. Shape grounded on the retrieval
// pack's eventloop.LoopOption/resolveLoopOptions functional-options style.
type Option func(*options)

type options struct {
	freeListCap int
	logger      *zerolog.Logger
	exitFunc    func(int)
}

// WithFreeListCap overrides FREE_LIST_MAX, the bound on the FCB free list.
// Must be >= 1; values below 1 are clamped up to 1, since the exit path
// depends on at least one deferred slot (spec.md §4.4, §9).
func WithFreeListCap(n int) Option {
	return func(o *options) { o.freeListCap = n }
}

// WithExitFunc overrides how the runtime terminates the process when the
// last fiber exits (spec.md §4.3: "terminate the process with the low bits
// of rv as status"). Defaults to os.Exit. Tests substitute a function that
// records the code and calls runtime.Goexit instead of truly exiting, so
// the process-termination rule is observable without killing the test
// binary.
func WithExitFunc(f func(code int)) Option {
	return func(o *options) { o.exitFunc = f }
}

// WithLogger installs l as the runtime's structured logger, equivalent to
// calling SetLogger before Init.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = &l }
}

// Init creates the root fiber (adopting the calling goroutine as its
// native context) and the runtime singleton. It must be called exactly
// once per process, from the goroutine that will act as the root fiber;
// call Shutdown before calling Init again (tests only — a real program
// calls Init once and runs until its last fiber exits).
func Init(opts ...Option) error {
	if rt != nil {
		panic("ufiber: Init called twice without an intervening Shutdown")
	}

	cfg := options{freeListCap: defaultFreeListCap, exitFunc: os.Exit}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.logger != nil {
		SetLogger(*cfg.logger)
	}

	root := &fcb{}
	resetFCB(root)
	root.state = stateReady
	root.sticky = true // replaces the original's inflated ref-count trick
	root.refCount = 1

	rt = &runtimeState{
		root:      root,
		current:   root,
		liveCount: 1,
		pool:      newFCBPool(cfg.freeListCap),
		exitFunc:  cfg.exitFunc,
	}
	rt.ready.Init()

	logger.Info().Msg("ufiber: runtime initialized")
	return nil
}

// Shutdown tears down the runtime singleton. Intended for test isolation
// between independent scenarios within a single test binary; a production
// program never needs it, since the last fiber's Exit terminates the
// process.
func Shutdown() {
	rt = nil
}
