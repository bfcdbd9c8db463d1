package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode identifies the kind of a business error.
type ErrorCode string

const (
	// Validation errors
	ErrCodeRequiredField      ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidCountryCode ErrorCode = "INVALID_COUNTRY_CODE"
	ErrCodeInvalidDate        ErrorCode = "INVALID_DATE"
	ErrCodeDateOutOfRange     ErrorCode = "DATE_OUT_OF_RANGE"

	// Country consistency errors
	ErrCodeNameConflict    ErrorCode = "NAME_CONFLICT"
	ErrCodeCountryMismatch ErrorCode = "COUNTRY_MISMATCH"

	// Record errors
	ErrCodeDuplicate ErrorCode = "DUPLICATE_RECORD"
	ErrCodeNotFound  ErrorCode = "NOT_FOUND"

	// Import errors
	ErrCodeMalformedRow      ErrorCode = "MALFORMED_ROW"
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	ErrCodeFileProcessing    ErrorCode = "FILE_PROCESSING"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"
)

// AppError carries a tagged error kind alongside the user-facing message.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError extracts an AppError from err, or nil.
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

// CodeOf returns the ErrorCode of err, or ErrCodeDBError for untagged errors.
func CodeOf(err error) ErrorCode {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code
	}
	return ErrCodeDBError
}

// MessageOf returns the user-facing message of err.
func MessageOf(err error) string {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return err.Error()
}

// IsDuplicate reports whether err is a uniqueness violation. Classification
// is by error code, never by message content.
func IsDuplicate(err error) bool {
	return CodeOf(err) == ErrCodeDuplicate
}

// IsNotFound reports whether err is a missing-record error.
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeNotFound
}

// HTTPStatus maps an error to the HTTP status code it should surface as.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case ErrCodeRequiredField, ErrCodeInvalidCountryCode, ErrCodeInvalidDate,
		ErrCodeDateOutOfRange, ErrCodeNameConflict, ErrCodeCountryMismatch,
		ErrCodeMalformedRow, ErrCodeUnsupportedFormat:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeDuplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
