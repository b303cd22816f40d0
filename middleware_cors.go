package berkas

import (
	"net/http"
	"strconv"
	"strings"
)

// CORS membuat middleware yang handle Cross-Origin Resource Sharing.
// Set CORS headers untuk allowed origins dan menangani preflight requests
// (OPTIONS dengan header Origin). Origin dicocokkan exact atau wildcard (*).
//
// Parameters:
//   - config: CORSConfig berisi allowed origins, methods, headers, credentials setting
//
// Returns:
//   - MiddlewareFunc: middleware function yang handle CORS
//
// Example:
//
//	router.Use(CORS(config.CORS))
func CORS(config CORSConfig) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if isOriginAllowed(origin, config.AllowedOrigins) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")

				if config.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}

				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))

				if config.MaxAge > 0 {
					w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				}
			}

			// Hanya intercept OPTIONS yang membawa header Origin (indikasi preflight)
			if r.Method == http.MethodOptions && origin != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next(w, r)
		}
	}
}

// isOriginAllowed mengecek apakah origin ada dalam whitelist allowed origins.
// Mendukung exact match atau wildcard (*).
func isOriginAllowed(origin string, allowedOrigins []string) bool {
	if origin == "" {
		return false
	}

	for _, allowed := range allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	return false
}
