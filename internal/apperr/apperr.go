// Package apperr defines the typed application errors whose codes are
// surfaced to clients in the response envelope.
package apperr

import "errors"

type Code string

const (
	CodeIncorrectTeamID Code = "INCORRECT_TEAM_ID"
	CodeNotMember       Code = "NOT_MEMBER"
	CodeAlreadyMember   Code = "ALREADY_MEMBER"
	CodeIncorrectCode   Code = "INCORRECT_CODE"
	CodeIncorrectID     Code = "INCORRECT_ID"
	CodeInternal        Code = "INTERNAL_ERROR"
)

type Error struct {
	Code Code
	Err  error
}

func New(code Code) *Error {
	return &Error{Code: code}
}

func Wrap(code Code, err error) *Error {
	return &Error{Code: code, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf extracts the application error code from an error chain. The
// second return is false for plain infrastructure errors, which callers
// report as CodeInternal.
func CodeOf(err error) (Code, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return CodeInternal, false
}

// Is lets handlers match a specific code with errors.Is semantics.
func Is(err error, code Code) bool {
	got, ok := CodeOf(err)
	return ok && got == code
}
