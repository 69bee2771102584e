package apperr

import "errors"

// ErrValidation is returned when the input fails domain validation.
var ErrValidation = errors.New("validation failed")

// ErrNotFound indicates that a referenced entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict indicates a duplicate assignment or an already-finalized delivery.
var ErrConflict = errors.New("conflict")
