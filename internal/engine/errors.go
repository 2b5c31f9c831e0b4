package engine

import "errors"

// Domain errors for the engine package.
//
// These errors can be checked using errors.Is():
//
//	if errors.Is(err, engine.ErrRestoreFailed) {
//	    // persisted settings unreadable, refuse to start
//	}
var (
	// ErrRestoreFailed is returned when persisted settings cannot be
	// loaded during startup.
	ErrRestoreFailed = errors.New("engine: restoring settings failed")
)
