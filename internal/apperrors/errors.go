package apperrors

import "fmt"

// ValidationError reports a malformed or out-of-range input field. It is
// always raised before any store access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on field '%s': %s", e.Field, e.Message)
}

// NewValidation creates a ValidationError for a single field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports a duplicate unique value, e.g. a username that is
// already registered.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflict creates a ConflictError.
func NewConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an id-addressed lookup miss.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFound creates a NotFoundError.
func NewNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// AuthError reports a missing, invalid or expired credential. The message is
// deliberately uniform so callers cannot tell which part failed.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// NewAuth creates an AuthError.
func NewAuth(message string) *AuthError {
	return &AuthError{Message: message}
}

// UpstreamError reports a failure of the external analysis service.
// BadGateway distinguishes "the service answered with an error" from
// "the service was unreachable or timed out".
type UpstreamError struct {
	Message    string
	BadGateway bool
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// InternalError wraps any unexpected persistence or runtime failure. The
// wrapped cause is logged server-side only; callers see a generic message.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// NewInternal wraps an unexpected failure.
func NewInternal(err error) *InternalError {
	return &InternalError{Err: err}
}
