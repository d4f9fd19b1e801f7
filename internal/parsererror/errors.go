// Package parsererror defines the typed errors surfaced by creditlens components.
package parsererror

import (
	"fmt"
	"strings"
)

// ParseError represents an internal failure while extracting one part of an analysis.
// The analysis parser never returns it to callers; it is logged and degraded.
type ParseError struct {
	Parser string
	Stage  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed during %s: %v", e.Parser, e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents invalid user input, such as a funding form field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// ValidationErrors collects every failed field of a form.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether the given field failed validation.
func (e ValidationErrors) Has(field string) bool {
	for _, v := range e {
		if v.Field == field {
			return true
		}
	}
	return false
}

// APIError represents a non-2xx response from the remote API.
type APIError struct {
	Method   string
	Endpoint string
	Status   int
	Message  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Endpoint, e.Status, e.Message)
}

// IsUnauthorized reports whether the server rejected the credentials or token.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == 401 || e.Status == 403
}

// InvalidFormatError represents input that does not follow any supported
// analysis format. Only returned when the caller asks for strict handling.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
