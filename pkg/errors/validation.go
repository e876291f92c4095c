package errors

import (
	"fmt"
	"strings"
)

// ValidationError reports what is wrong with one request field.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// NewValidationError creates a new validation error.
func NewValidationError(code int, field string, messages ...string) *ValidationError {
	return &ValidationError{
		Code:     code,
		Field:    field,
		Messages: messages,
	}
}

// Error returns the error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Messages, ", "))
}

// ValidationErrorCollector gathers field errors so a request can report all of
// them at once. Rendered under the "errors" key of the response.
type ValidationErrorCollector struct {
	errors []*ValidationError
}

// NewValidationErrorCollector creates a new validation error collector.
func NewValidationErrorCollector() *ValidationErrorCollector {
	return &ValidationErrorCollector{
		errors: make([]*ValidationError, 0),
	}
}

// Add appends err and returns c for chaining.
func (c *ValidationErrorCollector) Add(err *ValidationError) *ValidationErrorCollector {
	c.errors = append(c.errors, err)
	return c
}

// HasError returns true if the collector has any error.
func (c *ValidationErrorCollector) HasError() bool {
	return len(c.errors) > 0
}

// Errors returns the list of errors.
func (c *ValidationErrorCollector) Errors() []*ValidationError {
	return c.errors
}

// Error returns the error message.
func (c *ValidationErrorCollector) Error() string {
	var errorMessages []string
	for _, err := range c.errors {
		errorMessages = append(errorMessages, err.Error())
	}
	return strings.Join(errorMessages, ", ")
}
