package studio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPrompt is returned when a submission violates the prompt rules:
// the prompt is empty and the mode does not allow an image-only request.
var ErrEmptyPrompt = &Error{
	Msg: "Please enter a prompt.",
	Cat: ErrorValidation,
}

// ErrorCategory classifies failures by how they are surfaced to the user.
type ErrorCategory string

const (
	// ErrorValidation indicates invalid user input caught before any
	// network call is made.
	ErrorValidation ErrorCategory = "validation"

	// ErrorBlocked indicates the backend returned zero results or explicit
	// block feedback (content policy).
	ErrorBlocked ErrorCategory = "blocked"

	// ErrorTransport indicates a network failure or a non-OK response
	// status from the backend.
	ErrorTransport ErrorCategory = "transport"

	// ErrorInternal indicates any other failure.
	ErrorInternal ErrorCategory = "internal"
)

// CategorizedError is an error that carries its presentation category.
type CategorizedError interface {
	error
	Category() ErrorCategory
	StatusCode() int // HTTP status code if applicable, 0 otherwise
}

// Error is a categorized error constructed once at the provider boundary.
type Error struct {
	Msg   string
	Cat   ErrorCategory
	Code  int   // HTTP status code, 0 if not applicable
	Cause error // underlying error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Msg == "" && e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Category returns the error category.
func (e *Error) Category() ErrorCategory {
	return e.Cat
}

// StatusCode returns the HTTP status code, or 0 if not applicable.
func (e *Error) StatusCode() int {
	return e.Code
}

// NewValidationError creates an error for invalid user input.
func NewValidationError(msg string) *Error {
	return &Error{Msg: msg, Cat: ErrorValidation}
}

// NewBlockedError creates an error for a blocked or empty generation result.
func NewBlockedError(msg string) *Error {
	return &Error{Msg: msg, Cat: ErrorBlocked}
}

// NewTransportError creates an error for a network failure or non-OK status.
func NewTransportError(msg string, statusCode int, cause error) *Error {
	return &Error{Msg: msg, Cat: ErrorTransport, Code: statusCode, Cause: cause}
}

// NewInternalError creates an error for any other failure.
func NewInternalError(msg string, cause error) *Error {
	return &Error{Msg: msg, Cat: ErrorInternal, Cause: cause}
}

// SafetyRating is one safety assessment attached to blocked-prompt feedback.
type SafetyRating struct {
	Category    string
	Probability string
}

// Negligible reports whether the rating's probability is negligible.
// Negligible ratings are omitted from user-facing messages.
func (r SafetyRating) Negligible() bool {
	return strings.EqualFold(r.Probability, "negligible")
}

// BlockedError is returned when the backend blocks a prompt outright. Its
// message includes the block reason and one line per safety rating whose
// probability is not negligible.
type BlockedError struct {
	Reason  string
	Ratings []SafetyRating
}

// Error returns the user-facing blocked-prompt message.
func (e *BlockedError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Request was blocked. Reason: %s", e.Reason)
	for _, r := range e.Ratings {
		if r.Negligible() {
			continue
		}
		fmt.Fprintf(&b, "\nCategory: %s, Probability: %s", r.Category, r.Probability)
	}
	return b.String()
}

// Category returns ErrorBlocked.
func (e *BlockedError) Category() ErrorCategory {
	return ErrorBlocked
}

// StatusCode returns 0; block feedback arrives on a successful response.
func (e *BlockedError) StatusCode() int {
	return 0
}

// CategoryOf returns the category of a categorized error, or ErrorInternal
// when the error carries no category.
func CategoryOf(err error) ErrorCategory {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.Category()
	}
	return ErrorInternal
}

// IsValidation returns true if the error is categorized as a validation
// failure.
func IsValidation(err error) bool {
	return CategoryOf(err) == ErrorValidation
}

// IsBlocked returns true if the error is categorized as blocked content.
func IsBlocked(err error) bool {
	return CategoryOf(err) == ErrorBlocked
}

// IsTransport returns true if the error is categorized as a transport
// failure.
func IsTransport(err error) bool {
	return CategoryOf(err) == ErrorTransport
}

// StatusCodeOf returns the HTTP status code from a categorized error, or 0.
func StatusCodeOf(err error) int {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.StatusCode()
	}
	return 0
}
