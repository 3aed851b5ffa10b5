package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/fitsync/internal/telemetry/metrics"
	"github.com/2beens/fitsync/pkg"

	log "github.com/sirupsen/logrus"
)

const panicMessage = "Something went wrong. Please try again."

// PanicRecovery turns a handler panic into a JSON 500, so a broken view
// request never takes the BFF down.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				route := routeTemplate(r)
				log.WithFields(log.Fields{
					"request_id": w.Header().Get(RequestIDHeader),
					"method":     r.Method,
					"route":      route,
					"panic":      recovered,
				}).Errorf("bff: handler panic\n%s", debug.Stack())

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.WithLabelValues(route).Inc()
				}
				pkg.WriteJSONError(w, panicMessage, http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
