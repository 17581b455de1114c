package ufiber

import "github.com/rs/zerolog"

// logger is the package-level structured logger, defaulting to a no-op so
// that importing this package costs nothing until the caller opts in.
// Pattern grounded on the retrieval pack's eventloop.SetStructuredLogger /
// getGlobalLogger (github.com/joeycumines/go-eventloop), generalized to a
// single-threaded runtime where no mutex is needed around the global: the
// logger is only ever read or written from the fiber currently running.
var logger zerolog.Logger = zerolog.Nop()

// SetLogger installs l as the runtime's structured logger. Call before
// Init, or at any point while no fiber is mid-transition, to observe
// runtime initialization, fiber creation, the last fiber's exit, and
// deadlock detection. The primitives' Destroy methods log nothing.
func SetLogger(l zerolog.Logger) {
	logger = l
}
