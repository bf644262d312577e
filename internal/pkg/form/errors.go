package form

import (
	"strings"

	"github.com/yigit/transferdesk/internal/pkg/apperrors"
)

// FieldError is one inline message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the per-field messages that blocked a submission.
type ValidationError struct {
	Fields map[string]string
	order  []string
}

func (e *ValidationError) add(field, message string) {
	if _, ok := e.Fields[field]; !ok {
		e.order = append(e.order, field)
	}
	e.Fields[field] = message
}

// Errors returns the messages in schema order.
func (e *ValidationError) Errors() []FieldError {
	out := make([]FieldError, 0, len(e.order))
	for _, f := range e.order {
		out = append(out, FieldError{Field: f, Message: e.Fields[f]})
	}
	return out
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.order))
	for _, f := range e.order {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match apperrors.ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return apperrors.ErrValidationFailed
}

// NewFieldError builds a single-field ValidationError for checks that run
// outside a schema, such as lookups against the store.
func NewFieldError(field, message string) *ValidationError {
	e := &ValidationError{Fields: map[string]string{}}
	e.add(field, message)
	return e
}
