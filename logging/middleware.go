package logging

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// statusWriter captures the status code and bytes written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// writerPool reuses statusWriter instances across requests.
var writerPool = sync.Pool{
	New: func() any {
		return &statusWriter{status: http.StatusOK}
	},
}

// Middleware logs each HTTP request with structured attributes. Health and
// metrics probes are skipped to keep the log readable.
func Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" || r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()

			sw := writerPool.Get().(*statusWriter)
			sw.ResponseWriter = w
			sw.status = http.StatusOK
			sw.bytes = 0

			next.ServeHTTP(sw, r)

			requestID, ok := r.Context().Value(middleware.RequestIDKey).(string)
			if !ok || requestID == "" {
				requestID = "unknown"
			}

			logger.InfoContext(r.Context(), "HTTP request",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
				"status_code", sw.status,
				"bytes_written", sw.bytes,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			writerPool.Put(sw)
		})
	}
}
