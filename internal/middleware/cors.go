package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
)

// CORS lets the browser client, served from another origin, call the API.
// "*" in allowedOrigins admits any origin; an empty list adds no CORS headers.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	origins := make([]string, 0, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins = append(origins, strings.TrimRight(o, "/"))
	}

	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", RequestIDHeader}),
		handlers.ExposedHeaders([]string{RequestIDHeader}),
		handlers.MaxAge(600),
		// Preflight requests are answered here and never reach the routes.
		handlers.OptionStatusCode(http.StatusNoContent),
	)
}
