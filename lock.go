package apppass

import "time"

// StartAutoLock invokes onLock once timeout elapses and returns the
// timer so the caller can stop it. Advisory only: the timer dies with
// the process.
func StartAutoLock(timeout time.Duration, onLock func()) *time.Timer {
	return time.AfterFunc(timeout, onLock)
}
