package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds a single game played in a unit test.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled when the test ends, capped at
// DefaultTimeout or just before the test deadline, whichever comes first.
func Context(t *testing.T) context.Context {
	t.Helper()
	timeout := DefaultTimeout
	if deadline, ok := t.Deadline(); ok {
		if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}
	ctx, cancel := context.WithTimeout(t.Context(), timeout)
	t.Cleanup(cancel)
	return ctx
}
