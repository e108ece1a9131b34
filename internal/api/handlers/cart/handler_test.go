package cart_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/shelfmart/storefront-api/internal/api/handlers/cart"
	"github.com/shelfmart/storefront-api/internal/api/middlewares"
	cartstore "github.com/shelfmart/storefront-api/internal/cart"
	"github.com/shelfmart/storefront-api/internal/catalog"
	"github.com/shelfmart/storefront-api/internal/models"
	"github.com/shelfmart/storefront-api/internal/orders"
)

type cartView struct {
	Status string `json:"status"`
	Data   struct {
		Items []cartstore.Line `json:"items"`
		Total float64          `json:"total"`
		Count int              `json:"count"`
	} `json:"data"`
}

func newHandler() *handler.Handler {
	return handler.New(catalog.NewStore(catalog.Seed()), cartstore.NewRegistry(nil), orders.NewStore())
}

func asUser(req *http.Request, userID string) *http.Request {
	ctx := middlewares.WithSession(req.Context(), middlewares.Session{UserID: userID, Role: models.RoleCustomer})
	return req.WithContext(ctx)
}

func do(t *testing.T, fn http.HandlerFunc, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	fn(rec, asUser(req, userID))
	return rec
}

func view(t *testing.T, rec *httptest.ResponseRecorder) cartView {
	t.Helper()
	var out cartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGet_EmptyCart(t *testing.T) {
	h := newHandler()

	rec := do(t, h.Get, "GET", "/cart", "u-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	out := view(t, rec)
	assert.Empty(t, out.Data.Items)
	assert.Zero(t, out.Data.Total)
}

func TestAddItem_DefaultsQuantityToOne(t *testing.T) {
	h := newHandler()

	rec := do(t, h.AddItem, "POST", "/cart/items", "u-1", `{"book_id":"b-001"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	out := view(t, rec)
	require.Len(t, out.Data.Items, 1)
	assert.Equal(t, 1, out.Data.Items[0].Quantity)
	assert.Equal(t, 350.0, out.Data.Total)
}

func TestAddItem_MergesAndReportsBadge(t *testing.T) {
	h := newHandler()

	do(t, h.AddItem, "POST", "/cart/items", "u-1", `{"book_id":"b-001","quantity":2}`)
	rec := do(t, h.AddItem, "POST", "/cart/items", "u-1", `{"book_id":"b-001","quantity":3}`)

	out := view(t, rec)
	require.Len(t, out.Data.Items, 1)
	assert.Equal(t, 5, out.Data.Items[0].Quantity)
	assert.Equal(t, 5, out.Data.Count)
}

func TestAddItem_UnknownBook404(t *testing.T) {
	h := newHandler()

	rec := do(t, h.AddItem, "POST", "/cart/items", "u-1", `{"book_id":"nope"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddItem_OutOfStock409(t *testing.T) {
	h := newHandler()

	// b-005 seeds with zero stock
	rec := do(t, h.AddItem, "POST", "/cart/items", "u-1", `{"book_id":"b-005"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "out_of_stock")
	assert.Contains(t, rec.Body.String(), "The Pragmatic Programmer")
}

func TestAddItem_NegativeQuantity400(t *testing.T) {
	h := newHandler()

	rec := do(t, h.AddItem, "POST", "/cart/items", "u-1", `{"book_id":"b-001","quantity":-2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_quantity")
}

func TestAddItem_ClampsToStock(t *testing.T) {
	h := newHandler()

	// b-002 has 5 in stock
	rec := do(t, h.AddItem, "POST", "/cart/items", "u-1", `{"book_id":"b-002","quantity":99}`)
	require.Equal(t, http.StatusOK, rec.Code)

	out := view(t, rec)
	require.Len(t, out.Data.Items, 1)
	assert.Equal(t, 5, out.Data.Items[0].Quantity)
}

func TestUpdateItem_SetRemoveAndNoOp(t *testing.T) {
	h := newHandler()
	do(t, h.AddItem, "POST", "/cart/items", "u-1", `{"book_id":"b-001","quantity":2}`)

	req := httptest.NewRequest("PATCH", "/cart/items/b-001", strings.NewReader(`{"quantity":4}`))
	req.SetPathValue("bookID", "b-001")
	rec := httptest.NewRecorder()
	h.UpdateItem(rec, asUser(req, "u-1"))
	out := view(t, rec)
	require.Len(t, out.Data.Items, 1)
	assert.Equal(t, 4, out.Data.Items[0].Quantity)

	// zero quantity removes the line
	req = httptest.NewRequest("PATCH", "/cart/items/b-001", strings.NewReader(`{"quantity":0}`))
	req.SetPathValue("bookID", "b-001")
	rec = httptest.NewRecorder()
	h.UpdateItem(rec, asUser(req, "u-1"))
	assert.Empty(t, view(t, rec).Data.Items)

	// updating an absent line is a quiet no-op
	req = httptest.NewRequest("PATCH", "/cart/items/b-999", strings.NewReader(`{"quantity":3}`))
	req.SetPathValue("bookID", "b-999")
	rec = httptest.NewRecorder()
	h.UpdateItem(rec, asUser(req, "u-1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, view(t, rec).Data.Items)
}

func TestRemoveItem_Idempotent(t *testing.T) {
	h := newHandler()
	do(t, h.AddItem, "POST", "/cart/items", "u-1", `{"book_id":"b-001"}`)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("DELETE", "/cart/items/b-001", nil)
		req.SetPathValue("bookID", "b-001")
		rec := httptest.NewRecorder()
		h.RemoveItem(rec, asUser(req, "u-1"))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, view(t, rec).Data.Items)
	}
}

func TestCarts_AreIsolatedPerUser(t *testing.T) {
	h := newHandler()

	do(t, h.AddItem, "POST", "/cart/items", "u-1", `{"book_id":"b-001"}`)
	rec := do(t, h.Get, "GET", "/cart", "u-2", "")

	assert.Empty(t, view(t, rec).Data.Items)
}

func TestCheckout_PlacesOrderAndEmptiesCart(t *testing.T) {
	h := newHandler()
	do(t, h.AddItem, "POST", "/cart/items", "u-1", `{"book_id":"b-001","quantity":2}`)

	rec := do(t, h.Checkout, "POST", "/cart/checkout", "u-1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"completed"`)

	assert.Empty(t, view(t, do(t, h.Get, "GET", "/cart", "u-1", "")).Data.Items)

	ordersRec := do(t, h.ListOrders, "GET", "/orders", "u-1", "")
	var out struct {
		Data []orders.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(ordersRec.Body.Bytes(), &out))
	require.Len(t, out.Data, 1)
	assert.Equal(t, 700.0, out.Data[0].Total)
}

func TestCheckout_EmptyCart409(t *testing.T) {
	h := newHandler()

	rec := do(t, h.Checkout, "POST", "/cart/checkout", "u-1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "empty_cart")
}
