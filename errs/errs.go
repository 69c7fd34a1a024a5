// Package errs holds the error taxonomy shared by controllers and services.
// Every error here is recoverable within the request that triggered it; the
// seed CLI is the only caller that turns one into a process exit.
package errs

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports one or more rejected input fields. Fields maps the
// field name to a human-readable reason.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// Add records another rejected field on the same error so independent checks
// can be reported together.
func (e *ValidationError) Add(field, reason string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = reason
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// PaymentError reports a rejected or unsupported payment attempt.
type PaymentError struct {
	Method string
	Reason string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment failed (%s): %s", e.Method, e.Reason)
}

// AuthRequiredError signals that the operation needs an authenticated user.
type AuthRequiredError struct{}

func (e *AuthRequiredError) Error() string {
	return "authentication required"
}

// ConsentRequiredError blocks a form submission until consent is given.
type ConsentRequiredError struct{}

func (e *ConsentRequiredError) Error() string {
	return "consent is required to proceed"
}

// DataSourceError wraps a failed read or write against a backing store.
type DataSourceError struct {
	Op  string
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source error during %s: %v", e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}
