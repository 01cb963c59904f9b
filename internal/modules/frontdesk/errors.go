package frontdesk

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrEarlyCheckin            = errors.New("check-in time not reached")
	ErrIncompleteData          = errors.New("booking data incomplete")
)
