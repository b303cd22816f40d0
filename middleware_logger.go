package berkas

import (
	"net/http"
	"time"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

// WriteHeader captures the status code
func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

// Write captures writes
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.statusCode = http.StatusOK
		rw.written = true
	}
	return rw.ResponseWriter.Write(b)
}

// LoggerMiddleware membuat middleware yang log HTTP requests dan responses.
// Generate unique request ID per request, capture status code lewat wrapped
// response writer, dan log method, path, status, serta duration.
//
// Parameters:
//   - logger: *Logger untuk menulis log entries
//
// Returns:
//   - MiddlewareFunc: middleware function yang log request/response
//
// Example:
//
//	router.Use(LoggerMiddleware(logger))
func LoggerMiddleware(logger *Logger) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Generate request ID and set it in context
			requestID, _ := GenerateSecureToken(16)
			r = SetRequestID(r, requestID)

			// Wrap response writer
			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next(rw, r)

			duration := time.Since(start)

			logger.Info("request completed",
				"request_id", requestID,
				"method", r.Method,
				"path", r.RequestURI,
				"status", rw.statusCode,
				"duration_ms", duration.Milliseconds(),
			)
		}
	}
}
