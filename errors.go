package main

import "fmt"

// UsageError is an invalid or inconsistent set of options. It is fatal and
// reported together with the usage help before any file is touched.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// FormatError means a field's text did not match the configured date pattern.
// Per-line occurrences are warnings, not fatal.
type FormatError struct {
	Value   string
	Pattern string
	Err     error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("value %q does not match date format %q: %v", e.Value, e.Pattern, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// StructuralError means a record has fewer fields than a rule's column index
// requires.
type StructuralError struct {
	Column int
	Fields int
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("record has %d fields, column %d requested", e.Fields, e.Column)
}
