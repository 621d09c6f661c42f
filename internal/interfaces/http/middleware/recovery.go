package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
)

// Recovery converts panics into 500 responses instead of dropping the
// connection.
func Recovery(log logging.Logger) func(http.Handler) http.Handler {
	log = log.Named("recovery")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered",
						logging.Any("panic", rec),
						logging.String("path", r.URL.Path),
						logging.String("stack", string(debug.Stack())),
					)
					http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
