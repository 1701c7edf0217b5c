package usecase

import (
	"fmt"

	"marketplace/internal/errors"
)

// ErrMalformedOrderEvent is returned for events that can never be processed.
var ErrMalformedOrderEvent = errors.New("malformed order event")

// RetryableError marks a failure worth a redelivery from the event bus,
// typically a database outage.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError wraps err as retryable. A nil err stays nil.
func NewRetryableError(err error) error {
	if err == nil {
		return nil
	}

	return &RetryableError{Err: err}
}

// IsRetryable reports whether any error in the chain is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}
