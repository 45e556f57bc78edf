package main

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// actionError turns a failed snapshot into a commandError with a suggestion
// chosen from the error code.
func actionError(operation, context, baseURL string, err *student.DomainError) error {
	return newCommandError(operation, context, errors.New(err.Summary()), suggestionFor(err, baseURL))
}

func suggestionFor(err *student.DomainError, baseURL string) string {
	switch err.Code {
	case student.ErrCodeTransport:
		return fmt.Sprintf("Check that the student service is reachable at %s (start a local one with 'roster serve').", baseURL)
	case student.ErrCodeNotFound:
		return "Run 'roster list' to see existing student ids."
	case student.ErrCodeHTTP:
		return "The service rejected the request; check its logs and the request fields."
	case student.ErrCodeEmptyResult:
		return "The service answered without a body; check that it returns the stored student."
	case student.ErrCodeValidation:
		return "Fix the reported field and try again."
	case student.ErrCodeClosed:
		return "The command was interrupted; run it again."
	default:
		return "Re-run with --verbose for details."
	}
}
