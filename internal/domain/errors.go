package domain

import "errors"

var (
	ErrScheduleInPast   = errors.New("scheduled time cannot be in the past")
	ErrFlightNotFound   = errors.New("flight not found")
	ErrAircraftNotFound = errors.New("aircraft not found")
	ErrRegistry         = errors.New("registry error")
	ErrInvalidAircraft  = errors.New("invalid aircraft")
)

// Error tags a failure with its kind. The message is the underlying error's
// message, unchanged.
type Error struct {
	Kind error
	Err  error
}

func NewError(kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
