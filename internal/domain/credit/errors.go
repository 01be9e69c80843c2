package credit

import "errors"

var (
	// ErrInvalidAmount is returned when amount is <= 0
	ErrInvalidAmount = errors.New("invalid amount: must be greater than 0")

	// ErrNotFound is returned when the credit request doesn't exist
	ErrNotFound = errors.New("credit request not found")

	// ErrAlreadyProcessed is returned when the request was already approved or rejected
	ErrAlreadyProcessed = errors.New("credit request already processed")

	ErrInternal = errors.New("internal error")
)
