package phone

import "errors"

var (
	ErrNotFound    = errors.New("phone number not found")
	ErrNumberTaken = errors.New("phone number already exists")
	ErrInternal    = errors.New("internal error")
)
