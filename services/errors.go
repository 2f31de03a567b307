package services

import "fmt"

// ValidationError names the field or rule an input violated. It is a
// caller-facing outcome, never a process-level failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError reports a domain-rule collision, such as a second income
// record for the same appointment.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }
