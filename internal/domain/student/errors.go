package student

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the failure categories a roster operation can end in.
// Callers branch on the code; the message is for display only.
type ErrorCode string

const (
	ErrCodeTransport   ErrorCode = "TRANSPORT_ERROR"
	ErrCodeHTTP        ErrorCode = "HTTP_ERROR"
	ErrCodeNotFound    ErrorCode = "NOT_FOUND"
	ErrCodeEmptyResult ErrorCode = "EMPTY_RESULT"
	ErrCodeValidation  ErrorCode = "VALIDATION_ERROR"
	ErrCodeClosed      ErrorCode = "CONTROLLER_CLOSED"
	ErrCodeInternal    ErrorCode = "INTERNAL_ERROR"
)

// DomainError is a typed error enriched with contextual data. It never
// depends on infrastructure packages; adapters translate into it.
type DomainError struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Cause      error
	Context    map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Summary returns the human-readable text shown to users. Transport failures
// include their cause because the message alone says nothing useful.
func (e *DomainError) Summary() string {
	if e == nil {
		return ""
	}
	if e.Code == ErrCodeTransport && e.Cause != nil && e.Cause.Error() != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is allows errors.Is comparisons against other DomainError values.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) {
		return false
	}
	return e.Code == domainErr.Code && e.Message == domainErr.Message
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Cause:      e.Cause,
		Context:    merged,
	}
}

// CodeOf returns the ErrorCode of the first DomainError in err's chain, or
// an empty code when there is none.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) && domainErr != nil {
		return domainErr.Code
	}
	return ""
}

// NewTransportError reports an exchange that failed before any status was obtained.
func NewTransportError(cause error) *DomainError {
	return &DomainError{Code: ErrCodeTransport, Message: "transport error", Cause: cause}
}

// NewHTTPError reports a non-2xx response. A 404 is reported as ErrCodeNotFound.
func NewHTTPError(statusCode int, reason string) *DomainError {
	if statusCode == 404 {
		return &DomainError{Code: ErrCodeNotFound, Message: "not found", StatusCode: statusCode}
	}
	return &DomainError{
		Code:       ErrCodeHTTP,
		Message:    fmt.Sprintf("%d - %s", statusCode, reason),
		StatusCode: statusCode,
	}
}

// NewEmptyResultError reports a 2xx response without the expected body.
func NewEmptyResultError(message string) *DomainError {
	if message == "" {
		message = "empty response"
	}
	return &DomainError{Code: ErrCodeEmptyResult, Message: message}
}

// NewValidationError reports an invalid field on a request.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: message,
		Context: map[string]interface{}{"field": field},
	}
}

// NewInternalError wraps unexpected failures that fit no other category.
func NewInternalError(message string, cause error) *DomainError {
	return &DomainError{Code: ErrCodeInternal, Message: message, Cause: cause}
}
