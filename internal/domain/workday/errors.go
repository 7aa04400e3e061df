package workday

import "errors"

var (
	// ErrInvalidInput marks malformed computation input: bad "HH:MM"
	// strings, negative salary, non-positive base daily hours. Fatal to the
	// single computation, never retried.
	ErrInvalidInput = errors.New("invalid computation input")

	ErrWorkdayNotFound      = errors.New("workday record not found")
	ErrWorkdayExists        = errors.New("workday already computed for that employee and date")
	ErrWorkdayAlreadyClosed = errors.New("workday record is already closed")
)
