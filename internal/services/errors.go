package services

import (
	"context"
	"errors"
)

// ErrStoreTimeout is returned when a store call exceeds its bounded timeout.
// It marks a transient failure: safe for the caller to retry, never retried here.
var ErrStoreTimeout = errors.New("store operation timed out")

// storeErr normalizes store failures, surfacing timeouts as ErrStoreTimeout.
func storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrStoreTimeout
	}
	return err
}
