package router

import (
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/shelfmart/storefront-api/internal/api/handlers"
	"github.com/shelfmart/storefront-api/internal/api/handlers/books"
	carthandler "github.com/shelfmart/storefront-api/internal/api/handlers/cart"
	"github.com/shelfmart/storefront-api/internal/api/handlers/seller"
	mw "github.com/shelfmart/storefront-api/internal/api/middlewares"
	"github.com/shelfmart/storefront-api/internal/auth"
	"github.com/shelfmart/storefront-api/internal/cart"
	"github.com/shelfmart/storefront-api/internal/catalog"
	"github.com/shelfmart/storefront-api/internal/metrics/viewqueue"
	"github.com/shelfmart/storefront-api/internal/models"
	"github.com/shelfmart/storefront-api/internal/orders"
)

// Deps is everything the route table needs. RDB may be nil; only the
// login limiter uses it here.
type Deps struct {
	Catalog *catalog.Store
	Carts   *cart.Registry
	Orders  *orders.Store
	Users   *auth.MemoryStore
	Views   *viewqueue.Queue
	RDB     *redis.Client
}

func Router(d Deps) http.Handler {
	mux := http.NewServeMux()

	bookH := books.New(d.Catalog, d.Views)
	cartH := carthandler.New(d.Catalog, d.Carts, d.Orders)
	sellerH := seller.New(d.Catalog, d.Users, d.Views)
	authH := auth.New(d.Users)

	// Public storefront
	mux.HandleFunc("GET /{$}", handlers.Root)
	mux.HandleFunc("GET /categories", handlers.Categories)
	mux.HandleFunc("GET /books", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/books/", http.StatusMovedPermanently)
	})
	mux.HandleFunc("GET /books/{$}", bookH.List)
	mux.HandleFunc("GET /books/{id}", bookH.Get)

	// Sessions; credential endpoints sit behind the attempt limiter
	mux.Handle("POST /auth/register", mw.LoginRateLimit(d.RDB, http.HandlerFunc(authH.Register)))
	mux.Handle("POST /auth/login", mw.LoginRateLimit(d.RDB, http.HandlerFunc(authH.Login)))
	mux.Handle("POST /auth/logout", mw.RequireAuth(d.Users, http.HandlerFunc(authH.Logout)))
	mux.Handle("GET /auth/me", mw.RequireAuth(d.Users, http.HandlerFunc(authH.Me)))

	// Cart and orders (any signed-in role)
	authed := func(h http.HandlerFunc) http.Handler { return mw.RequireAuth(d.Users, h) }
	mux.Handle("GET /cart", authed(cartH.Get))
	mux.Handle("DELETE /cart", authed(cartH.Clear))
	mux.Handle("POST /cart/items", authed(cartH.AddItem))
	mux.Handle("PATCH /cart/items/{bookID}", authed(cartH.UpdateItem))
	mux.Handle("DELETE /cart/items/{bookID}", authed(cartH.RemoveItem))
	mux.Handle("POST /cart/checkout", authed(cartH.Checkout))
	mux.Handle("GET /orders", authed(cartH.ListOrders))

	// Seller dashboard
	asSeller := func(h http.HandlerFunc) http.Handler {
		return mw.RequireRole(d.Users, models.RoleSeller, h)
	}
	mux.Handle("GET /seller/books", asSeller(sellerH.Inventory))
	mux.Handle("POST /seller/books", asSeller(sellerH.Create))
	mux.Handle("PUT /seller/books/{id}", asSeller(sellerH.Update))
	mux.Handle("DELETE /seller/books/{id}", asSeller(sellerH.Delete))
	mux.Handle("GET /seller/stats", asSeller(sellerH.Stats))

	return mux
}
