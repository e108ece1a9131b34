package handlers

import (
	"net/http"

	"github.com/shelfmart/storefront-api/internal/api/httpx"
	"github.com/shelfmart/storefront-api/internal/models"
)

// Root doubles as a health check.
func Root(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, map[string]string{"service": "storefront-api"})
}

// Categories returns the filter bar's category list, wildcard first.
func Categories(w http.ResponseWriter, r *http.Request) {
	out := []string{"All"}
	for _, c := range models.Categories {
		out = append(out, string(c))
	}
	httpx.OK(w, out)
}
