package middlewares

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/shelfmart/storefront-api/internal/api/apperr"
)

// Recovery turns handler panics into 500s instead of dropped
// connections, logging the stack with the request ID.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				rid := GetRequestID(r)
				if rid == "" {
					rid = "unknown"
				}
				log.Printf("[PANIC] rid=%s %s %s: %v\n%s",
					rid, r.Method, r.URL.Path, err, debug.Stack())
				apperr.WriteStatus(w, r, http.StatusInternalServerError,
					"Internal Server Error", "")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
