package sale

import "errors"

var (
	// ErrInvalidAmount is returned when amount is <= 0
	ErrInvalidAmount = errors.New("invalid amount: must be greater than 0")

	// ErrInsufficientCredit is returned when account credit is below the
	// requested charge amount at check time
	ErrInsufficientCredit = errors.New("insufficient credit")

	ErrInternal = errors.New("internal error")
)
