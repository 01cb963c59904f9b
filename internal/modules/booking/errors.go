package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrNotAvailable            = errors.New("rooms not available")
	ErrOverbooking             = errors.New("overbooking constraint violation")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrIncompleteData          = errors.New("booking data incomplete")
	ErrPromotionNotApplicable  = errors.New("promotion not applicable")
)
