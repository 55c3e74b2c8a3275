package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so callers can branch on it instead of matching
// error strings or exception types.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindBadRequest
	KindStorage
	KindConflict
	KindRemote
)

// ServiceError carries a Kind and, for remote failures, the downstream HTTP
// status so it can be propagated verbatim.
type ServiceError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NotFound(message string) error {
	return &ServiceError{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

func Unauthorized(message string) error {
	return &ServiceError{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) error {
	return &ServiceError{Kind: KindForbidden, Status: http.StatusForbidden, Message: message}
}

func BadRequest(message string) error {
	return &ServiceError{Kind: KindBadRequest, Status: http.StatusBadRequest, Message: message}
}

func Storage(message string, err error) error {
	return &ServiceError{Kind: KindStorage, Status: http.StatusInternalServerError, Message: message, Err: err}
}

func Conflict(message string) error {
	return &ServiceError{Kind: KindConflict, Status: http.StatusConflict, Message: message}
}

// Remote wraps a non-2xx response from a collaborator service, keeping its
// status code so the caller sees the downstream failure unchanged.
func Remote(status int, message string) error {
	return &ServiceError{Kind: KindRemote, Status: status, Message: message}
}

func KindOf(err error) Kind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// HTTPStatus maps an error to the status the API should answer with.
// Remote 5xx from a collaborator is reported as a bad gateway rather than
// blamed on this service.
func HTTPStatus(err error) int {
	var se *ServiceError
	if !errors.As(err, &se) {
		return http.StatusInternalServerError
	}
	if se.Kind == KindRemote && se.Status >= 500 {
		return http.StatusBadGateway
	}
	if se.Status != 0 {
		return se.Status
	}
	return http.StatusInternalServerError
}
