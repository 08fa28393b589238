package apperror

import (
	"errors"
	"fmt"
)

// Code identifies a class of expected failure. Everything except
// CodeInternal is handled at the operation boundary and reported to
// the caller with a stable message.
type Code int

const (
	CodeUnauthenticated Code = iota + 1
	CodeInvalidCredential
	CodeForbidden
	CodeNotFound
	CodeConflict
	CodeValidation
	CodeInternal
)

// AppError is an application error with a taxonomy code and an
// optional wrapped cause.
type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
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

func Unauthenticated(message string) *AppError {
	return &AppError{Code: CodeUnauthenticated, Message: message}
}

func InvalidCredential() *AppError {
	return &AppError{Code: CodeInvalidCredential, Message: "invalid credentials"}
}

func Forbidden(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Conflict(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func Internal(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "internal server error", Err: err}
}

// CodeOf extracts the taxonomy code from err, defaulting to
// CodeInternal for anything that is not an AppError.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
