/*
middleware.go - Request logging middleware

PURPOSE:
  Structured per-request logging on top of chi's middleware stack. Each
  request is logged on completion with method, path, status and duration;
  slow requests get an extra warning line.

STATUS CAPTURE:
  http.ResponseWriter does not expose the written status code, so the
  middleware wraps it. Handlers that never call WriteHeader default
  to 200.

SEE ALSO:
  - server.go: Where the middleware is mounted
*/
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

const slowRequestThreshold = 500 * time.Millisecond

// RequestLogger logs one structured line per completed request.
func RequestLogger(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(start)
			entry := logger.WithFields(logrus.Fields{
				"request_id":  middleware.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			})

			switch {
			case lrw.statusCode >= 500:
				entry.Error("request failed")
			case lrw.statusCode >= 400:
				entry.Warn("request rejected")
			default:
				entry.Info("request completed")
			}

			if elapsed > slowRequestThreshold {
				entry.Warnf("slow request: %s", elapsed)
			}
		})
	}
}

// loggingResponseWriter wraps http.ResponseWriter to capture the status code.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}
