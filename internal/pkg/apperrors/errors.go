package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Remote store / blob store failures
	ErrRemoteCall = errors.New("remote call failed")

	// Action errors
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrNotSupported         = errors.New("not yet supported")
	ErrSubmissionInProgress = errors.New("submission already in progress")
)

// Account errors
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// Lookup errors
var (
	ErrCollegeNotFound = errors.New("college not found")
	ErrProgramNotFound = errors.New("program not found")
)

// NewRemoteCallError wraps a failed store or upload call. op names the call
// ("upload", "insert", ...) and ends up in the error code.
func NewRemoteCallError(op string, err error) *CustomError {
	return &CustomError{
		Err:     errors.Join(ErrRemoteCall, err),
		Message: op + " failed",
		Code:    op,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
