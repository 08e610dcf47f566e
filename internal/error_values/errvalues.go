package errorvalues

import (
	"errors"
	"fmt"
)

// Kinds. Every domain error wraps exactly one of them.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("authentication failed")
	ErrNotFound   = errors.New("not found")
)

var (
	ErrEmptyName        = fmt.Errorf("%w: name must not be empty", ErrValidation)
	ErrNameTooLong      = fmt.Errorf("%w: name is too long", ErrValidation)
	ErrInvalidPIN       = fmt.Errorf("%w: pin must be exactly 4 digits", ErrValidation)
	ErrUserExists       = fmt.Errorf("%w: such user already exists", ErrConflict)
	ErrUserNotFound     = fmt.Errorf("%w: user doesn't exist", ErrNotFound)
	ErrWrongCredentials = fmt.Errorf("%w: invalid name or pin", ErrAuth)
	ErrInvalidSession   = fmt.Errorf("%w: not authenticated", ErrAuth)
)

const (
	KindValidation = "validation"
	KindConflict   = "conflict"
	KindAuth       = "auth"
	KindInternal   = "internal"
)

// Kind reports the external kind of err. NotFound is reported as auth so
// callers can't tell a vanished user from a bad session.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrAuth), errors.Is(err, ErrNotFound):
		return KindAuth
	default:
		return KindInternal
	}
}
