// Package cart exposes the per-user shopping cart over HTTP. Every
// route runs behind RequireAuth, so a session is always present.
package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shelfmart/storefront-api/internal/api/httpx"
	"github.com/shelfmart/storefront-api/internal/api/middlewares"
	cartstore "github.com/shelfmart/storefront-api/internal/cart"
	"github.com/shelfmart/storefront-api/internal/catalog"
	"github.com/shelfmart/storefront-api/internal/orders"
)

type Handler struct {
	Catalog *catalog.Store
	Carts   *cartstore.Registry
	Orders  *orders.Store
}

func New(cat *catalog.Store, carts *cartstore.Registry, ord *orders.Store) *Handler {
	return &Handler{Catalog: cat, Carts: carts, Orders: ord}
}

type addRequest struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
}

type updateRequest struct {
	Quantity int `json:"quantity"`
}

// view is the cart as the storefront renders it: lines plus the derived
// total and badge count.
type view struct {
	Items []cartstore.Line `json:"items"`
	Total float64          `json:"total"`
	Count int              `json:"count"`
}

func snapshot(s *cartstore.Store) view {
	items, total, count := s.Snapshot()
	return view{Items: items, Total: total, Count: count}
}

func (h *Handler) cartFor(r *http.Request) *cartstore.Store {
	userID, _ := middlewares.UserIDFrom(r.Context())
	return h.Carts.For(userID)
}

// Get serves GET /cart.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, snapshot(h.cartFor(r)))
}

// AddItem serves POST /cart/items. Quantity defaults to 1; adding a book
// already in the cart merges into the existing line.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrorCode(w, http.StatusBadRequest, "bad_request", "Invalid JSON")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	book, err := h.Catalog.Get(req.BookID)
	if err != nil {
		httpx.ErrorCode(w, http.StatusNotFound, "not_found", "Book not found")
		return
	}

	s := h.cartFor(r)
	switch err := s.Add(book, req.Quantity); {
	case errors.Is(err, cartstore.ErrOutOfStock):
		httpx.ErrorCode(w, http.StatusConflict, "out_of_stock", book.Title+" is out of stock")
	case errors.Is(err, cartstore.ErrInvalidQuantity):
		httpx.ErrorCode(w, http.StatusBadRequest, "invalid_quantity", "Quantity must be positive")
	default:
		httpx.OK(w, snapshot(s))
	}
}

// UpdateItem serves PATCH /cart/items/{bookID}. Zero or negative
// quantities remove the line; updating an absent line is a no-op.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrorCode(w, http.StatusBadRequest, "bad_request", "Invalid JSON")
		return
	}
	s := h.cartFor(r)
	s.UpdateQuantity(r.PathValue("bookID"), req.Quantity)
	httpx.OK(w, snapshot(s))
}

// RemoveItem serves DELETE /cart/items/{bookID}. Idempotent.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	s := h.cartFor(r)
	s.Remove(r.PathValue("bookID"))
	httpx.OK(w, snapshot(s))
}

// Clear serves DELETE /cart.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	s := h.cartFor(r)
	s.Clear()
	httpx.OK(w, snapshot(s))
}

// Checkout serves POST /cart/checkout: snapshots the cart into an
// order, then empties it. There is no payment step.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, _ := middlewares.UserIDFrom(r.Context())
	s := h.Carts.For(userID)

	items, total, _ := s.Snapshot()
	order, err := h.Orders.Place(userID, items, total)
	if err != nil {
		httpx.ErrorCode(w, http.StatusConflict, "empty_cart", "Cart is empty")
		return
	}
	s.Clear()
	httpx.OK(w, order)
}

// ListOrders serves GET /orders.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := middlewares.UserIDFrom(r.Context())
	httpx.OK(w, h.Orders.ListByCustomer(userID))
}
