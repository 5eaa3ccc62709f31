package ledgercell

import (
	"errors"
	"fmt"
)

// An Error captures a Code and an underlying Go error. Every error returned
// by this package can be cast to an *Error using the standard library's
// errors.As; callers branch on the code rather than matching message text.
type Error struct {
	code Code
	err  error
}

// NewError annotates any Go error with a failure code.
func NewError(c Code, underlying error) *Error {
	return &Error{code: c, err: underlying}
}

func (e *Error) Error() string {
	text := e.err.Error()
	if text == "" {
		return e.code.String()
	}
	return e.code.String() + ": " + text
}

// Unwrap allows errors.Is and errors.As access to the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the error's failure code.
func (e *Error) Code() Code {
	return e.code
}

// AsError uses errors.As to unwrap any error and look for an *Error.
func AsError(err error) (*Error, bool) {
	var lerr *Error
	ok := errors.As(err, &lerr)
	return lerr, ok
}

// errorf calls fmt.Errorf with the supplied template and arguments, then
// wraps the resulting error with the code.
func errorf(c Code, template string, args ...any) *Error {
	return NewError(c, fmt.Errorf(template, args...))
}
