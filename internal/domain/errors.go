package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence error")
	ErrForbidden   = errors.New("forbidden")
)

// ErrMalformedAmount is a validation error for amounts that are not numbers.
var ErrMalformedAmount = fmt.Errorf("malformed amount: %w", ErrValidation)
