package books

import (
	"net/http"

	"github.com/shelfmart/storefront-api/internal/api/httpx"
	"github.com/shelfmart/storefront-api/internal/catalog"
	"github.com/shelfmart/storefront-api/internal/models"
)

// List serves GET /books/ with the storefront's three filters:
// ?search= (title/author substring), ?category= ("All" or exact),
// ?price= (all|low|mid|high).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	cat := q.Get("category")
	if cat != "" && cat != catalog.CategoryAll {
		parsed, err := models.ParseCategory(cat)
		if err != nil {
			httpx.ErrorCode(w, http.StatusBadRequest, "unknown_category", "Unknown category: "+cat)
			return
		}
		cat = string(parsed)
	}

	spec := catalog.FilterSpec{
		Search:   q.Get("search"),
		Category: cat,
		Bracket:  catalog.ParseBracket(q.Get("price")),
	}

	matches := h.Catalog.Search(spec)
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"count":  len(matches),
		"data":   matches,
	})
}
