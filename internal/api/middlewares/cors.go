package middlewares

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/shelfmart/storefront-api/internal/api/apperr"
)

// defaultOrigins covers local storefront development; production origins
// come in via CORS_ORIGINS (comma separated).
var defaultOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

func Cors(next http.Handler) http.Handler {
	allowed := defaultOrigins
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		allowed = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				allowed = append(allowed, o)
			}
		}
	}
	isAllowed := func(origin string) bool {
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && !isAllowed(origin) {
			log.Printf("[CORS] blocked origin %s on %s %s", origin, r.Method, r.URL.Path)
			apperr.WriteStatus(w, r, http.StatusForbidden, "Origin Not Allowed", "")
			return
		}
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Expose-Headers",
			"X-Request-ID, X-RateLimit-Limit, X-RateLimit-Remaining, Retry-After, X-Response-Time")

		if r.Method == http.MethodOptions {
			w.Header().Add("Vary", "Access-Control-Request-Method")
			w.Header().Add("Vary", "Access-Control-Request-Headers")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
