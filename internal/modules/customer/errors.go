package customer

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrDuplicateNationalID = errors.New("national id already registered")
)
