// Package apperr classifies failures so callers can tell a business
// rejection apart from an infrastructure fault.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
)

// Kind partitions errors by how the caller should react.
type Kind int

const (
	// KindFault covers connectivity and query failures; surfaces as 500.
	KindFault Kind = iota
	// KindRejected covers business-rule and constraint violations.
	KindRejected
	// KindNotFound covers lookups that matched nothing.
	KindNotFound
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Rejected builds a business-rejection error.
func Rejected(format string, args ...interface{}) error {
	return &Error{Kind: KindRejected, Msg: fmt.Sprintf(format, args...)}
}

// NotFound builds a not-found error.
func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err; unwrapped or foreign errors are faults.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindFault
}

func IsRejected(err error) bool { return KindOf(err) == KindRejected }
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// FromDB translates integrity violations reported by the Postgres driver
// into rejections; everything else keeps fault semantics.
func FromDB(err error, msg string) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return &Error{Kind: KindRejected, Msg: msg, Err: err}
		case "23503": // foreign_key_violation
			return &Error{Kind: KindRejected, Msg: msg, Err: err}
		case "23514": // check_violation
			return &Error{Kind: KindRejected, Msg: msg, Err: err}
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// HTTPStatus maps an error kind onto the status code handlers respond with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindRejected:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
