// Package seller is the inventory dashboard: sellers manage their own
// listings and read aggregate stats. Routes run behind RequireRole.
package seller

import (
	"encoding/json"
	"net/http"

	"github.com/shelfmart/storefront-api/internal/api/httpx"
	"github.com/shelfmart/storefront-api/internal/api/middlewares"
	"github.com/shelfmart/storefront-api/internal/catalog"
	"github.com/shelfmart/storefront-api/internal/metrics/viewqueue"
	"github.com/shelfmart/storefront-api/internal/models"
	"github.com/shelfmart/storefront-api/internal/validate"
)

type Handler struct {
	Catalog *catalog.Store
	Users   middlewares.UserLookup
	Views   *viewqueue.Queue
}

func New(cat *catalog.Store, users middlewares.UserLookup, views *viewqueue.Queue) *Handler {
	return &Handler{Catalog: cat, Users: users, Views: views}
}

// Inventory serves GET /seller/books: the caller's own listings only.
func (h *Handler) Inventory(w http.ResponseWriter, r *http.Request) {
	sellerID, _ := middlewares.UserIDFrom(r.Context())
	httpx.OK(w, h.Catalog.ListBySeller(sellerID))
}

// Create serves POST /seller/books.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in validate.BookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.ErrorCode(w, http.StatusBadRequest, "bad_request", "Invalid JSON")
		return
	}
	cat, err := validate.Book(&in)
	if err != nil {
		httpx.ErrorCode(w, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}

	sellerID, _ := middlewares.UserIDFrom(r.Context())
	sellerName := sellerID
	if u, err := h.Users.FindUserByID(sellerID); err == nil {
		sellerName = u.Name
	}

	book, err := h.Catalog.Add(models.Book{
		Title:       in.Title,
		Author:      in.Author,
		Category:    cat,
		Price:       in.Price,
		Stock:       in.Stock,
		SellerID:    sellerID,
		SellerName:  sellerName,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Rating:      in.Rating,
	})
	if err != nil {
		httpx.ErrorCode(w, http.StatusConflict, "conflict", "Could not add book")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"status": "success", "data": book})
}

// Update serves PUT /seller/books/{id}. Sellers may only touch their
// own listings.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.ownBook(w, r)
	if !ok {
		return
	}

	var in validate.BookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.ErrorCode(w, http.StatusBadRequest, "bad_request", "Invalid JSON")
		return
	}
	cat, err := validate.Book(&in)
	if err != nil {
		httpx.ErrorCode(w, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}

	existing.Title = in.Title
	existing.Author = in.Author
	existing.Category = cat
	existing.Price = in.Price
	existing.Stock = in.Stock
	existing.Description = in.Description
	existing.ImageURL = in.ImageURL
	existing.Rating = in.Rating

	if err := h.Catalog.Update(existing); err != nil {
		httpx.ErrorCode(w, http.StatusNotFound, "not_found", "Book not found")
		return
	}
	httpx.OK(w, existing)
}

// Delete serves DELETE /seller/books/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.ownBook(w, r); !ok {
		return
	}
	h.Catalog.Delete(r.PathValue("id"))
	httpx.OKNoData(w)
}

type statsResponse struct {
	TotalBooks     int     `json:"total_books"`
	TotalStock     int     `json:"total_stock"`
	InventoryValue float64 `json:"inventory_value"`
	AverageRating  float64 `json:"average_rating"`
	TotalViews     int64   `json:"total_views"`
}

// Stats serves GET /seller/stats: the dashboard's summary cards.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	sellerID, _ := middlewares.UserIDFrom(r.Context())
	inventory := h.Catalog.ListBySeller(sellerID)

	var resp statsResponse
	var ratingSum float64
	var rated int
	for _, b := range inventory {
		resp.TotalBooks++
		resp.TotalStock += b.Stock
		resp.InventoryValue += b.Price * float64(b.Stock)
		if b.Rating != nil {
			ratingSum += *b.Rating
			rated++
		}
		if h.Views != nil {
			resp.TotalViews += h.Views.Count(b.ID)
		}
	}
	if rated > 0 {
		resp.AverageRating = ratingSum / float64(rated)
	}
	httpx.OK(w, resp)
}

// ownBook loads the path book and enforces seller ownership. Writes the
// error response itself when the check fails.
func (h *Handler) ownBook(w http.ResponseWriter, r *http.Request) (models.Book, bool) {
	sellerID, _ := middlewares.UserIDFrom(r.Context())
	b, err := h.Catalog.Get(r.PathValue("id"))
	if err != nil {
		httpx.ErrorCode(w, http.StatusNotFound, "not_found", "Book not found")
		return models.Book{}, false
	}
	if b.SellerID != sellerID {
		httpx.ErrorCode(w, http.StatusForbidden, "forbidden", "Not your listing")
		return models.Book{}, false
	}
	return b, true
}
