package watcher

import "time"

const (
	// pollInterval bounds how long the watcher waits for a ZMQ signal
	// before polling the mempool anyway.
	pollInterval = 15 * time.Second

	// errorBackoff is the pause after a failed iteration.
	errorBackoff = 5 * time.Second
)
