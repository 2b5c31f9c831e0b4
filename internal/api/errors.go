package api

import "errors"

// Domain errors for the api package.
var (
	// ErrNotStarted is returned by health checks before Start is called.
	ErrNotStarted = errors.New("api: server not started")
)
