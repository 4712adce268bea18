package apperror

import "fmt"

// AppError is the sentinel type every feature errors/ package builds its
// values from. Message is what the admin UI shows, so feature packages keep
// it in Spanish; Code is the stable machine-readable identifier.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error // wrapped original, optional
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap makes errors.Is and errors.As see through Wrap.
func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// Wrap attaches code, message and status to an existing error. Returns nil
// for a nil err so call sites can wrap unconditionally.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
