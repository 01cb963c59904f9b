package promotion

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrDuplicateCode = errors.New("promotion code already exists")
	ErrNotEffective  = errors.New("promotion is not currently effective")
)
