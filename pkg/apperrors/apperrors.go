// ================== pkg/apperrors/apperrors.go =================
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into one of the stable categories the API exposes.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindPermissionDenied
	KindConflict
	KindUpload
	KindPersistence
)

// Error is the error type every layer below the handlers returns. Code is a
// machine-stable identifier (e.g. "INVALID_CATEGORY"); Message is the
// human-readable detail shown to the caller. Internal causes stay wrapped and
// are never serialized.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with no underlying cause.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Wrap attaches a cause so internal detail survives for logs without leaking
// to the response body.
func Wrap(kind Kind, code, message string, err error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

// Validation reports malformed, missing, or out-of-range input.
func Validation(code, message string) *Error {
	return New(KindValidation, code, message)
}

// NotFound reports an absent referenced entity.
func NotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

// PermissionDenied reports an operation forbidden on the target.
func PermissionDenied(code, message string) *Error {
	return New(KindPermissionDenied, code, message)
}

// Conflict reports a duplicate unique key outside a path that resolves it.
func Conflict(code, message string) *Error {
	return New(KindConflict, code, message)
}

// Upload reports a remote image-store failure.
func Upload(message string, err error) *Error {
	return Wrap(KindUpload, "UPLOAD_FAILED", message, err)
}

// Persistence reports a transactional storage failure.
func Persistence(message string, err error) *Error {
	return Wrap(KindPersistence, "PERSISTENCE_FAILED", message, err)
}

// KindOf extracts the Kind from any error. Unrecognized errors are internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// CodeOf extracts the machine-stable code, empty for unrecognized errors.
func CodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// MessageOf extracts the user-facing message. Unrecognized errors collapse to
// a generic message so internals never leak.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// HTTPStatus maps a Kind to the status code the API contract promises.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindUpload, KindPersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
