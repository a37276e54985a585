// Package apperr carries a Kind through error chains so handlers can pick a
// status code without knowing which layer failed.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the HTTP layer.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	// KindValidation is input that parsed but violates a domain rule
	// (unknown interior id, zero tenure).
	KindValidation
	KindBadRequest
	// KindUnavailable is an optional backend (archive, history store) that is
	// not configured or not answering.
	KindUnavailable
	KindInternal
)

var kindNames = map[Kind]string{
	KindUnknown:     "unknown",
	KindNotFound:    "not_found",
	KindValidation:  "validation",
	KindBadRequest:  "bad_request",
	KindUnavailable: "unavailable",
	KindInternal:    "internal",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a classified error. Message is safe to show to callers; Err is not.
type Error struct {
	Kind    Kind
	Message string
	Op      string
	Err     error
	Details any
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the kind to a status code. Unclassified errors are 500.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies err. The wrapped error stays reachable through errors.Is/As.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp records the failing operation, e.g. "finance.ComputeEMI".
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

func (e *Error) WithDetails(details any) *Error {
	e.Details = details
	return e
}

func NotFound(message string) *Error    { return New(KindNotFound, message) }
func Validation(message string) *Error  { return New(KindValidation, message) }
func BadRequest(message string) *Error  { return New(KindBadRequest, message) }
func Unavailable(message string) *Error { return New(KindUnavailable, message) }
func Internal(message string) *Error    { return New(KindInternal, message) }

// GetKind returns the kind of the first *Error in the chain, or KindUnknown.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries an *Error of the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
