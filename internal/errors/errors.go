package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// UserMessage returns the human-readable message for display. Non-AppError
// values fall back to a generic string so raw errors never reach a page.
func UserMessage(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Message
	}
	return "Unknown error"
}

// Predefined error codes. One code per failure class in the client's error
// taxonomy, plus bootstrap codes.
const (
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeAuthFailed       = "AUTH_FAILED"
	CodeUploadFailed     = "UPLOAD_FAILED"
	CodeHistoryFetch     = "HISTORY_FETCH_FAILED"
	CodeAnalyticsFetch   = "ANALYTICS_FETCH_FAILED"
	CodeReportFailed     = "REPORT_FAILED"
	CodeNotAuthenticated = "NOT_AUTHENTICATED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func AuthFailed(message string) *AppError {
	return New(CodeAuthFailed, message)
}

func UploadFailed(message string) *AppError {
	return New(CodeUploadFailed, message)
}

func HistoryFetchFailed(cause error) *AppError {
	return &AppError{
		Code:    CodeHistoryFetch,
		Message: "Failed to load history",
		Cause:   cause,
	}
}

func AnalyticsFetchFailed(message string) *AppError {
	return New(CodeAnalyticsFetch, message)
}

func ReportFailed(message string) *AppError {
	return New(CodeReportFailed, message)
}

func NotAuthenticated() *AppError {
	return New(CodeNotAuthenticated, "Please login first")
}
