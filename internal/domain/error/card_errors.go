// Package error defines domain-specific errors for the Study Cards application.
package error

import "errors"

// Study card domain errors.
var (
	// ErrCardNotFound is returned when a study card is not found.
	ErrCardNotFound = errors.New("study card not found")

	// ErrMissingCardTitle is returned when a card is created without a title.
	ErrMissingCardTitle = errors.New("title is required")

	// ErrNegativeEstimatedCost is returned when the estimated cost is negative.
	ErrNegativeEstimatedCost = errors.New("estimated cost must not be negative")

	// ErrCardTitleTooLong is returned when the title exceeds the maximum length.
	ErrCardTitleTooLong = errors.New("title exceeds maximum length")
)

// CardErrorCode defines error codes for study card errors.
// Format: CRD-XXYYYY where XX is category and YYYY is specific error.
type CardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingCardTitle      CardErrorCode = "CRD-010001"
	ErrCodeNegativeEstimatedCost CardErrorCode = "CRD-010002"
	ErrCodeCardTitleTooLong      CardErrorCode = "CRD-010003"

	// Lookup errors (02XXXX)
	ErrCodeCardNotFound CardErrorCode = "CRD-020001"

	// Internal errors (99XXXX)
	ErrCodeCardInternalError CardErrorCode = "CRD-990001"
)

// CardError represents a study card error with code and message.
type CardError struct {
	Code    CardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewCardError creates a new CardError with the given code and message.
func NewCardError(code CardErrorCode, message string, err error) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
