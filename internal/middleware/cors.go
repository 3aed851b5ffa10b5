package middleware

import (
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

var localHosts = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
	"[::1]":     true,
}

func originAllowed(origin string, extraOrigins map[string]bool) bool {
	if extraOrigins[origin] {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	host := u.Host
	if i := strings.LastIndex(host, ":"); i > strings.LastIndex(host, "]") {
		host = host[:i]
	}
	return localHosts[host]
}

// Cors lets UIs served from the local machine (any port) and the given extra
// origins call the server. Requests without an Origin, e.g. from the CLI, pass untouched.
func Cors(extraOrigins ...string) func(next http.Handler) http.Handler {
	extra := make(map[string]bool, len(extraOrigins))
	for _, o := range extraOrigins {
		extra[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				if r.Method == http.MethodOptions {
					w.Header().Add("Allow", "GET, POST, PATCH, DELETE, OPTIONS")
					w.WriteHeader(http.StatusOK)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if !originAllowed(origin, extra) {
				log.Warnf("CORS: origin not allowed for path [%s] and origin [%s]", r.URL.Path, origin)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PATCH, DELETE")
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OriginAllowed applies the Cors origin rules, for handlers that check the origin themselves.
func OriginAllowed(origin string, extraOrigins ...string) bool {
	extra := make(map[string]bool, len(extraOrigins))
	for _, o := range extraOrigins {
		extra[o] = true
	}
	return originAllowed(origin, extra)
}
