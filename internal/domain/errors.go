package domain

import "fmt"

var ErrNotFound = errString("not found")

type errString string

func (e errString) Error() string { return string(e) }

// MalformedInputError reports an uploaded document that is not valid JSON or
// lacks a field needed for evaluation. Field is a dotted path into the document.
type MalformedInputError struct {
	Field  string
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	msg := "malformed input"
	if e.Field != "" {
		msg += fmt.Sprintf(": %s", e.Field)
	}
	if e.Reason != "" {
		msg += fmt.Sprintf(": %s", e.Reason)
	}
	return msg
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// Missing is shorthand for a required field that is absent.
func Missing(field string) *MalformedInputError {
	return &MalformedInputError{Field: field, Reason: "is required"}
}
