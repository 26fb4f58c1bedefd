package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Error categories returned in the "code" field of error responses.
const (
	CodeValidation = "VALIDATION"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
	CodeIntegrity  = "INTEGRITY"
	CodeDependency = "DEPENDENCY"
	CodeUpload     = "UPLOAD"
)

// AppError carries a stable category next to the human-readable message so
// controllers can map failures to HTTP statuses without string matching.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

func ConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

func IntegrityError(message string) *AppError {
	return &AppError{Code: CodeIntegrity, Message: message}
}

func DependencyError(message string, err error) *AppError {
	return &AppError{Code: CodeDependency, Message: message, Err: err}
}

func UploadError(message string, err error) *AppError {
	return &AppError{Code: CodeUpload, Message: message, Err: err}
}

// HTTPStatus maps an error to the response status. Unrecognized errors are
// treated as internal.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeIntegrity, CodeDependency, CodeUpload:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode extracts the category code, defaulting to INTERNAL for plain
// errors.
func ErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "INTERNAL"
}
