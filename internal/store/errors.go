package store

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a storage error with an HTTP status code.
type Error struct {
	Code    int    // HTTP status code
	Message string // User-facing message
	Err     error  // Underlying error (optional)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPCode returns the HTTP status code associated with this error.
func (e *Error) HTTPCode() int { return e.Code }

// Is lets errors.Is match any Error sharing the same code, so callers can
// test against the sentinels below.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithMessage returns a new error with a custom message.
func (e *Error) WithMessage(msg string) *Error {
	return &Error{
		Code:    e.Code,
		Message: msg,
		Err:     e.Err,
	}
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// Sentinel errors.
var (
	ErrNotFound = &Error{
		Code:    http.StatusNotFound,
		Message: "record not found",
	}

	ErrConflict = &Error{
		Code:    http.StatusConflict,
		Message: "record already exists",
	}

	ErrInvalidInput = &Error{
		Code:    http.StatusBadRequest,
		Message: "invalid input",
	}

	ErrStorage = &Error{
		Code:    http.StatusInternalServerError,
		Message: "storage failure",
	}
)

// notFound builds the entity-specific not-found error surfaced to callers.
func notFound(entity string) *Error {
	return ErrNotFound.WithMessage(entity + " not found")
}

// classifyWrite maps driver errors on INSERT/UPDATE to the taxonomy.
// modernc.org/sqlite exposes constraint failures only through the error
// text, same as the sqlite stores elsewhere in this codebase family.
func classifyWrite(err error, msg string) error {
	if err == nil {
		return nil
	}
	s := err.Error()
	if strings.Contains(s, "UNIQUE constraint failed") {
		return ErrConflict.WithMessage(msg + ": already exists").WithCause(err)
	}
	if strings.Contains(s, "FOREIGN KEY constraint failed") {
		return ErrInvalidInput.WithMessage(msg + ": referenced record does not exist").WithCause(err)
	}
	return ErrStorage.WithMessage(msg).WithCause(err)
}

// classifyDelete maps driver errors on DELETE. A foreign-key failure here
// means dependent rows still reference the record.
func classifyDelete(err error, msg string) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return ErrConflict.WithMessage(msg + ": dependent records exist").WithCause(err)
	}
	return ErrStorage.WithMessage(msg).WithCause(err)
}

// classifyGet maps driver errors on SELECT.
func classifyGet(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(entity)
	}
	return ErrStorage.WithMessage("failed to load " + entity).WithCause(err)
}
