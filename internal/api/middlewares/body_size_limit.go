package middlewares

import (
	"net/http"
	"os"
	"strconv"
)

// BodySizeLimit caps request bodies. The whole API speaks small JSON,
// so the default is 1 MiB; MAX_BODY_SIZE overrides when someone needs
// bigger book descriptions.
func BodySizeLimit(next http.Handler) http.Handler {
	limit := int64(1 << 20)
	if v := os.Getenv("MAX_BODY_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil && r.ContentLength != 0 {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
