package booking

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned for a cancellation token with no active booking.
// An expired (already cancelled) token and a token that never existed are
// deliberately indistinguishable.
var ErrNotFound = errors.New("booking not found or already cancelled")

// SendError wraps a notification dispatch failure. The underlying cause is
// logged, never shown to the caller.
type SendError struct {
	Stage string
	Err   error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("%s: failed to dispatch notifications: %v", e.Stage, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}
