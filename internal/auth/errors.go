package auth

import "errors"

// Flow errors. Every flow returns one of these for an expected failure,
// anything else is a storage fault and the request should abort with a
// generic response.
var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrInvalidOrExpiredToken = errors.New("link is invalid or has expired")
	ErrUserNotFound          = errors.New("email is not registered")
)

// ValidationError marks malformed or missing user input.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string {
	return e.Reason.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

func validation(reason error) error {
	return &ValidationError{Reason: reason}
}

// IsValidationError reports whether err came from input validation.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
