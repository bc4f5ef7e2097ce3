package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrUnknownMode     = errors.New("unknown generation mode")

	ErrInvalidNumber        = errors.New("must be a whole number")
	ErrInvalidFlag          = errors.New("must be true or false")
	ErrInvalidLength        = errors.New("passphrase length must be between 8 and 64 characters")
	ErrInvalidKeyType       = errors.New("unsupported key type")
	ErrInvalidKeySize       = errors.New("unsupported key size")
	ErrInvalidKeyLength     = errors.New("key length must be one of 2048, 3072 or 4096")
	ErrInvalidCurve         = errors.New("unsupported curve")
	ErrEmptyName            = errors.New("name is required")
	ErrEmptyEmail           = errors.New("email is required")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidExpireTime    = errors.New("expire time must be 0 or a number followed by d, w, m or y")
	ErrInvalidExcludedChars = errors.New("excluded characters leave nothing to generate from")

	ErrInvalidComment   = errors.New("comment can only contain letters, numbers, hyphens, underscores and periods")
	ErrCommentHasSpaces = errors.New("comment must not contain spaces")
	ErrCommentTooLong   = errors.New("comment must be at most 64 characters")
)

// ValidationError reports a client side validation failure of a single
// form field. It always wraps one of the sentinel errors above.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

func (e *ValidationError) Unwrap() error { return e.Err }

func fieldError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
