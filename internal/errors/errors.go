package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
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

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeValidationError = "VALIDATION_ERROR"
	CodeConflict        = "CONFLICT"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeUnsupportedType = "UNSUPPORTED_TYPE"
	CodeProcessingError = "PROCESSING_ERROR"
	CodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
	CodeInternalError   = "INTERNAL_ERROR"
)

var statusByCode = map[string]int{
	CodeValidationError: http.StatusBadRequest,
	CodeUnsupportedType: http.StatusBadRequest,
	CodeUnauthorized:    http.StatusUnauthorized,
	CodeConflict:        http.StatusConflict,
	CodePayloadTooLarge: http.StatusRequestEntityTooLarge,
	CodeProcessingError: http.StatusInternalServerError,
	CodeInternalError:   http.StatusInternalServerError,
	CodeConfigInvalid:   http.StatusInternalServerError,
}

// HTTPStatus maps an error to the status code it is reported with.
// Errors that are not AppErrors are internal errors.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if status, ok := statusByCode[GetCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the text shown to API clients. For AppErrors this is the
// outermost Message; anything else is reported generically.
func PublicMessage(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func ValidationError(message string) *AppError {
	return New(CodeValidationError, message)
}

func ConflictError(message string) *AppError {
	return New(CodeConflict, message)
}

func AuthenticationError(message string) *AppError {
	return New(CodeUnauthorized, message)
}

func UnsupportedTypeError(message string) *AppError {
	return New(CodeUnsupportedType, message)
}

// ProcessingError reports a downstream parser failure. The parser text is part of
// the client-facing message.
func ProcessingError(cause error) *AppError {
	return &AppError{
		Code:    CodeProcessingError,
		Message: fmt.Sprintf("Error processing file: %v", cause),
		Cause:   cause,
	}
}

func PayloadTooLarge(limit int64) *AppError {
	return New(CodePayloadTooLarge, fmt.Sprintf("File too large. Maximum upload size is %d bytes", limit))
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
