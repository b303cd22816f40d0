package berkas

import (
	"fmt"
	"net/http"
)

// Recovery membuat middleware yang recover dari panics.
// Panic di handler atau downstream middleware di-log dengan request details
// dan di-map ke AppError 500 ("Server Error") supaya aplikasi tidak crash.
//
// Parameters:
//   - logger: *Logger untuk menulis panic error logs
//
// Returns:
//   - MiddlewareFunc: middleware function yang recover dari panics
//
// Example:
//
//	router.Use(Recovery(logger))
func Recovery(logger *Logger) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						"error", fmt.Sprintf("%v", err),
						"path", r.RequestURI,
						"method", r.Method,
					)

					JsonAppError(w, ErrServer)
				}
			}()

			next(w, r)
		}
	}
}
