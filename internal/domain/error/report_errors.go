// Package error defines domain-specific errors for the Study Cards application.
package error

// ReportErrorCode defines error codes for reporting errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Authentication errors (01XXXX)
	ErrCodeInvalidReportKey ReportErrorCode = "RPT-010001"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)
