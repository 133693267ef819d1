// Package apperror defines the application error taxonomy and its HTTP mapping.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes application errors.
type ErrorType int

const (
	UnknownError ErrorType = iota
	// EmailTaken means signup hit an already-registered email.
	EmailTaken
	// InvalidCredentials covers both a wrong email and a wrong password,
	// deliberately indistinguishable to the caller.
	InvalidCredentials
	// NoSuchAccount means a password reset targeted an unknown email.
	NoSuchAccount
	// PasswordMismatch means a new password and its confirmation differ.
	PasswordMismatch
	// NotFound means a record lookup by id found nothing.
	NotFound
	// Unauthorized means the requester is not the owner of the record.
	Unauthorized
	// GeneratorUnavailable means the reflection generator failed; it is
	// always recovered internally and never surfaced to the end user.
	GeneratorUnavailable
	// ValidationError represents an input validation failure.
	ValidationError
	// InternalError represents an unexpected server-side failure.
	InternalError
)

// AppError carries a user-facing message plus an optional underlying error.
type AppError struct {
	Type    ErrorType
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

// StatusCode maps the error type to an HTTP status code.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case EmailTaken:
		return http.StatusConflict
	case InvalidCredentials:
		return http.StatusUnauthorized
	case NoSuchAccount:
		return http.StatusNotFound
	case PasswordMismatch, ValidationError:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusForbidden
	case GeneratorUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func New(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

func NewEmailTaken(message string) *AppError {
	return New(EmailTaken, message, nil)
}

func NewInvalidCredentials(message string) *AppError {
	return New(InvalidCredentials, message, nil)
}

func NewNoSuchAccount(message string) *AppError {
	return New(NoSuchAccount, message, nil)
}

func NewPasswordMismatch(message string) *AppError {
	return New(PasswordMismatch, message, nil)
}

func NewNotFound(message string) *AppError {
	return New(NotFound, message, nil)
}

func NewUnauthorized(message string) *AppError {
	return New(Unauthorized, message, nil)
}

func NewGeneratorUnavailable(message string, underlying error) *AppError {
	return New(GeneratorUnavailable, message, underlying)
}

func NewValidationError(message string) *AppError {
	return New(ValidationError, message, nil)
}

func NewInternalError(message string, underlying error) *AppError {
	return New(InternalError, message, underlying)
}

// FromError converts err to *AppError when possible.
func FromError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}

func IsNotFound(err error) bool     { return IsType(err, NotFound) }
func IsUnauthorized(err error) bool { return IsType(err, Unauthorized) }
func IsEmailTaken(err error) bool   { return IsType(err, EmailTaken) }
