package cookie

import "errors"

var (
	ErrInvalidArgument = errors.New("cookie.invalid_argument")
	ErrCookieNotFound  = errors.New("cookie.not_found")
	ErrInvalidConfig   = errors.New("cookie.invalid_config")
)

// ArgumentError reports a parameter that failed validation.
// It matches ErrInvalidArgument with errors.Is.
type ArgumentError struct {
	Param    string
	Expected string
}

func (e *ArgumentError) Error() string {
	return e.Param + " is not of type " + e.Expected
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalidArgument(param, expected string) error {
	return &ArgumentError{Param: param, Expected: expected}
}
