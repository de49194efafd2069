package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed client operation. Transport covers network
// and decode failures; the other kinds mirror the server's envelope.
type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindNotFound
	KindConflict
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	default:
		return "transport"
	}
}

// Error is the single failure signal every remote operation resolves to.
// Both transport exceptions and success:false envelopes normalize into it.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// kindOf extracts the kind from an error, defaulting to Transport.
func kindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindTransport
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	return kindOf(err) == KindNotFound
}

// IsConflict reports whether err is a conflict failure.
func IsConflict(err error) bool {
	return kindOf(err) == KindConflict
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return kindOf(err) == KindValidation
}

// kindForStatus maps an HTTP status of a failed envelope onto an ErrorKind.
func kindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusBadRequest:
		return KindValidation
	default:
		return KindTransport
	}
}
