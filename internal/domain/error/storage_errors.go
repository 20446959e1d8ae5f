// Package error defines domain-specific errors for the Study Cards application.
package error

import "errors"

// Object storage domain errors.
var (
	// ErrAttachmentNotFound is returned when an attachment is not found on a card.
	ErrAttachmentNotFound = errors.New("attachment not found")

	// ErrAttachmentTooLarge is returned when an uploaded file exceeds the size limit.
	ErrAttachmentTooLarge = errors.New("attachment exceeds maximum size")

	// ErrUnsupportedFileType is returned when the uploaded file type is not allowed.
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// StorageErrorCode defines error codes for object storage errors.
// Format: STG-XXYYYY where XX is category and YYYY is specific error.
type StorageErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAttachmentTooLarge  StorageErrorCode = "STG-010001"
	ErrCodeUnsupportedFileType StorageErrorCode = "STG-010002"

	// Lookup errors (02XXXX)
	ErrCodeAttachmentNotFound StorageErrorCode = "STG-020001"

	// Internal errors (99XXXX)
	ErrCodeStorageInternalError StorageErrorCode = "STG-990001"
)

// StorageError represents an object storage error with code and message.
type StorageError struct {
	Code    StorageErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError with the given code and message.
func NewStorageError(code StorageErrorCode, message string, err error) *StorageError {
	return &StorageError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
