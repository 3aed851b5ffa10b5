package fitapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrTransport    = errors.New("fitness api unreachable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("server error")

	// ErrMissingToken is returned for personal endpoints called without a session,
	// before anything is sent over the wire.
	ErrMissingToken = fmt.Errorf("%w: no session token", ErrUnauthorized)
)

// APIError is a non 2xx response from the fitness API.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("fitapi: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, msg)
}

// Unwrap maps the status code onto one of the sentinel errors, so callers
// can use errors.Is(err, fitapi.ErrUnauthorized) and friends.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity:
		return ErrValidation
	case e.StatusCode == http.StatusConflict:
		return ErrConflict
	case e.StatusCode >= 500:
		return ErrServer
	default:
		return nil
	}
}

func (e *APIError) isAuthEndpoint() bool {
	return strings.HasPrefix(e.Path, "/auth/")
}

// UserMessage turns any error coming out of the engine into text fit for an end user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	hasAPIErr := errors.As(err, &apiErr)

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "The server took too long to respond. Please try again."
	case errors.Is(err, context.Canceled):
		return "The request was cancelled."
	case errors.Is(err, ErrTransport):
		return "Could not connect to the server. Check your internet connection."
	case errors.Is(err, ErrUnauthorized):
		if hasAPIErr && apiErr.isAuthEndpoint() {
			return "Wrong email or password."
		}
		return "Session expired. Please sign in again."
	case errors.Is(err, ErrConflict):
		return "A user with this email already exists."
	case errors.Is(err, ErrServer):
		return "Server error. Please try again later."
	case errors.Is(err, ErrNotFound):
		if hasAPIErr && apiErr.Message != "" {
			return apiErr.Message
		}
		return "The requested course or workout was not found."
	case errors.Is(err, ErrValidation):
		if hasAPIErr && apiErr.Message != "" {
			return apiErr.Message
		}
		if hasAPIErr && apiErr.StatusCode == http.StatusUnprocessableEntity {
			return "Invalid data. Check the entered values."
		}
		return "Bad request. Check the entered data."
	case hasAPIErr && apiErr.Message != "":
		return apiErr.Message
	default:
		return err.Error()
	}
}
