package seller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfmart/storefront-api/internal/api/handlers/seller"
	"github.com/shelfmart/storefront-api/internal/api/middlewares"
	"github.com/shelfmart/storefront-api/internal/auth"
	"github.com/shelfmart/storefront-api/internal/catalog"
	"github.com/shelfmart/storefront-api/internal/metrics/viewqueue"
	"github.com/shelfmart/storefront-api/internal/models"
)

func newHandler(t *testing.T) (*seller.Handler, models.User) {
	t.Helper()
	users := auth.NewMemoryStore()
	u, err := users.CreateUser("Page Turner Books", "shop@pageturner.in", "hash", models.RoleSeller)
	require.NoError(t, err)
	return seller.New(catalog.NewStore(catalog.Seed()), users, nil), u
}

func asSeller(req *http.Request, sellerID string) *http.Request {
	ctx := middlewares.WithSession(req.Context(), middlewares.Session{UserID: sellerID, Role: models.RoleSeller})
	return req.WithContext(ctx)
}

const validListing = `{
	"title": "Deep Work",
	"author": "Cal Newport",
	"category": "Self-Help",
	"price": 450,
	"stock": 7,
	"description": "Rules for focused success in a distracted world.",
	"image_url": "https://images.shelfmart.in/covers/deep-work.jpg"
}`

func TestCreate_AddsListingUnderSeller(t *testing.T) {
	h, u := newHandler(t)

	req := httptest.NewRequest("POST", "/seller/books", strings.NewReader(validListing))
	rec := httptest.NewRecorder()
	h.Create(rec, asSeller(req, u.ID))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out struct {
		Data models.Book `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Data.ID)
	assert.Equal(t, u.ID, out.Data.SellerID)
	assert.Equal(t, "Page Turner Books", out.Data.SellerName)
}

func TestCreate_RejectsBadInput(t *testing.T) {
	h, u := newHandler(t)

	req := httptest.NewRequest("POST", "/seller/books",
		strings.NewReader(`{"title":"","author":"Someone","category":"Novels","price":100,"stock":1}`))
	rec := httptest.NewRecorder()
	h.Create(rec, asSeller(req, u.ID))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_input")
}

func TestInventory_OnlyOwnListings(t *testing.T) {
	h, u := newHandler(t)

	req := httptest.NewRequest("POST", "/seller/books", strings.NewReader(validListing))
	rec := httptest.NewRecorder()
	h.Create(rec, asSeller(req, u.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest("GET", "/seller/books", nil)
	rec = httptest.NewRecorder()
	h.Inventory(rec, asSeller(req, u.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Data []models.Book `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Deep Work", out.Data[0].Title)
}

func TestUpdate_RefusesOtherSellersListing(t *testing.T) {
	h, u := newHandler(t)

	// b-001 belongs to seed seller s-100, not to u
	req := httptest.NewRequest("PUT", "/seller/books/b-001", strings.NewReader(validListing))
	req.SetPathValue("id", "b-001")
	rec := httptest.NewRecorder()
	h.Update(rec, asSeller(req, u.ID))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not your listing")
}

func TestUpdate_RewritesOwnListing(t *testing.T) {
	h, u := newHandler(t)

	req := httptest.NewRequest("POST", "/seller/books", strings.NewReader(validListing))
	rec := httptest.NewRecorder()
	h.Create(rec, asSeller(req, u.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data models.Book `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	updated := strings.Replace(validListing, `"stock": 7`, `"stock": 2`, 1)
	req = httptest.NewRequest("PUT", "/seller/books/"+created.Data.ID, strings.NewReader(updated))
	req.SetPathValue("id", created.Data.ID)
	rec = httptest.NewRecorder()
	h.Update(rec, asSeller(req, u.ID))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out struct {
		Data models.Book `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 2, out.Data.Stock)
}

func TestDelete_RemovesOwnListing(t *testing.T) {
	h, u := newHandler(t)

	req := httptest.NewRequest("POST", "/seller/books", strings.NewReader(validListing))
	rec := httptest.NewRecorder()
	h.Create(rec, asSeller(req, u.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data models.Book `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req = httptest.NewRequest("DELETE", "/seller/books/"+created.Data.ID, nil)
	req.SetPathValue("id", created.Data.ID)
	rec = httptest.NewRecorder()
	h.Delete(rec, asSeller(req, u.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	_, err := h.Catalog.Get(created.Data.ID)
	assert.Error(t, err)
}

func TestStats_SummarizesInventoryAndViews(t *testing.T) {
	views := viewqueue.Start(16, 1)
	users := auth.NewMemoryStore()
	h := seller.New(catalog.NewStore(catalog.Seed()), users, views)

	// seed seller s-100: b-001 (350x10, 4.8), b-003 (420x14, 4.2), b-007 (399x12, 4.1)
	views.Enqueue("b-001")
	views.Enqueue("b-001")
	views.Enqueue("b-003")
	views.Shutdown()

	req := httptest.NewRequest("GET", "/seller/stats", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, asSeller(req, "s-100"))
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Data struct {
			TotalBooks     int     `json:"total_books"`
			TotalStock     int     `json:"total_stock"`
			InventoryValue float64 `json:"inventory_value"`
			AverageRating  float64 `json:"average_rating"`
			TotalViews     int64   `json:"total_views"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	assert.Equal(t, 3, out.Data.TotalBooks)
	assert.Equal(t, 36, out.Data.TotalStock)
	assert.InDelta(t, 350*10+420*14+399*12, out.Data.InventoryValue, 0.001)
	assert.InDelta(t, (4.8+4.2+4.1)/3, out.Data.AverageRating, 0.001)
	assert.Equal(t, int64(3), out.Data.TotalViews)
}
