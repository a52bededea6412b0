package webfolder

import (
	"context"
	"errors"
	"fmt"
)

// ErrCancelled reports that a traversal or picker wait was cancelled through
// its context. User dismissal of the picker is not an error; PickFolder
// returns (nil, nil) for that.
var ErrCancelled = errors.New("webfolder: cancelled")

// PlatformError wraps a failure reported by the host platform through an
// error callback. Payload carries the platform's opaque error value (a DOM
// exception in the browser, an os error in the osfs adapter).
type PlatformError struct {
	Payload any
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("webfolder: platform rejected: %v", e.Payload)
}

// cancelWrap maps context expiry onto ErrCancelled so callers can test one
// sentinel regardless of which await was interrupted.
func cancelWrap(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	return err
}
