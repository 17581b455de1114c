package ufiber

import "errors"

// Error sentinels returned by blocking and non-blocking operations. These
// carry the same POSIX-flavored meanings as the original C implementation's
// bare errno values (EDEADLK, EBUSY, ESRCH, EINVAL, ENOMEM), realized as Go
// error values so callers can use errors.Is instead of comparing integers.
var (
	// ErrDeadlock is returned by a blocking call when the scheduler finds
	// no runnable fiber (whole-program deadlock), or by Join when a fiber
	// attempts to join itself.
	ErrDeadlock = errors.New("ufiber: deadlock detected")

	// ErrBusy is returned by YieldTo when the target fiber is not READY
	// or is the calling fiber itself. The Try* methods of Mutex and RWLock
	// report a held primitive by returning false, not this error.
	ErrBusy = errors.New("ufiber: resource busy")

	// ErrNoSuch is returned by YieldTo when the target fiber is DEAD.
	ErrNoSuch = errors.New("ufiber: no such fiber")

	// ErrInvalid is delivered to every waiter blocked on a primitive when
	// that primitive is destroyed. Using a primitive after Destroy is
	// undefined behavior.
	ErrInvalid = errors.New("ufiber: use of destroyed primitive")

	// ErrOOM is returned by Create when allocating a new fiber control
	// block or its backing resources fails.
	ErrOOM = errors.New("ufiber: fiber allocation failed")
)
