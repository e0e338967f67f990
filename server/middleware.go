package server

import (
	"net/http"
	"strings"

	"github.com/sidesh-hub/medinfo-india/config"
	"github.com/sidesh-hub/medinfo-india/handlers"
	"github.com/sidesh-hub/medinfo-india/logging"
)

// RealIPMiddleware extracts the real client IP from proxy headers.
func RealIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// Take the first IP from the comma-separated list
			if idx := strings.Index(xff, ","); idx != -1 {
				xff = xff[:idx]
			}
			r.RemoteAddr = strings.TrimSpace(xff)
		}
		next.ServeHTTP(w, r)
	})
}

// RequestSizeMiddleware caps request bodies to prevent memory exhaustion.
// Declared lengths over the limit are rejected up front; bodies without a
// Content-Length are capped at read time.
func RequestSizeMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > cfg.MaxRequestBody {
				logging.Warn("Request body too large",
					"content_length", r.ContentLength,
					"max_allowed", cfg.MaxRequestBody,
					"remote_addr", r.RemoteAddr)
				handlers.RespondWithError(w, http.StatusRequestEntityTooLarge,
					"Request body too large")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxRequestBody)
			next.ServeHTTP(w, r)
		})
	}
}
