package books

import (
	"net/http"

	"github.com/shelfmart/storefront-api/internal/api/httpx"
)

// Get serves GET /books/{id} and feeds the view counter behind the
// seller dashboard.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	b, err := h.Catalog.Get(id)
	if err != nil {
		httpx.ErrorCode(w, http.StatusNotFound, "not_found", "Book not found")
		return
	}
	if h.Views != nil {
		h.Views.Enqueue(b.ID)
	}
	httpx.OK(w, b)
}
