package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitsync/internal/fitapi"
	"github.com/2beens/fitsync/internal/session"
	"github.com/2beens/fitsync/pkg"

	log "github.com/sirupsen/logrus"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotAuthenticated), errors.Is(err, fitapi.ErrUnauthorized):
		return http.StatusUnauthorized
	case session.IsValidationError(err), errors.Is(err, fitapi.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, fitapi.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, fitapi.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, fitapi.ErrTransport), errors.Is(err, fitapi.ErrServer):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func userMessage(err error) string {
	switch {
	case session.IsValidationError(err):
		for e := err; e != nil; e = errors.Unwrap(e) {
			if errors.Unwrap(e) == nil {
				return e.Error()
			}
		}
	case errors.Is(err, session.ErrNotAuthenticated) && !errors.Is(err, fitapi.ErrUnauthorized):
		return "Sign in to continue."
	}
	return fitapi.UserMessage(err)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Errorf("%s %s: %s", r.Method, r.URL.Path, err)
	} else {
		log.Debugf("%s %s: %s", r.Method, r.URL.Path, err)
	}
	pkg.WriteJSONError(w, userMessage(err), status)
}
