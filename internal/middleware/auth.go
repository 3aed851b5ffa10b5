package middleware

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

import (
	"net/http"

	"github.com/2beens/fitsync/internal/telemetry/tracing"
	"github.com/2beens/fitsync/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type sessionChecker interface {
	IsAuthenticated() bool
}

// RequireSession rejects requests to personal routes while nobody is signed in.
// Preflight requests always pass.
func RequireSession(checker sessionChecker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.requireSession")
			defer span.End()

			if r.Method == http.MethodOptions {
				span.SetStatus(codes.Ok, "options-ok")
				next.ServeHTTP(w, r)
				return
			}

			if !checker.IsAuthenticated() {
				log.Tracef("[no session] [auth middleware] unauthorized => %s", r.URL.Path)
				pkg.WriteJSONError(w, "Sign in to continue.", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "not-signed-in")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
