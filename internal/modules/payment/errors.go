package payment

import "errors"

var (
	ErrInvalidSignature        = errors.New("invalid signature")
	ErrAmountMismatch          = errors.New("amount mismatch")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrNotConfigured           = errors.New("vnpay credentials are not configured")
)
