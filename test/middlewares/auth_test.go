package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mw "github.com/shelfmart/storefront-api/internal/api/middlewares"
	"github.com/shelfmart/storefront-api/internal/auth"
	"github.com/shelfmart/storefront-api/internal/models"
	jwtutil "github.com/shelfmart/storefront-api/internal/security/jwt"
)

func seedUser(t *testing.T, store *auth.MemoryStore, role models.Role) (models.User, string) {
	t.Helper()
	u, err := store.CreateUser("Asha", "asha@example.com", "irrelevant-hash", role)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	token, err := jwtutil.SignSession(u.ID, u.Role, u.TokenVersion, time.Hour)
	if err != nil {
		t.Fatalf("sign session: %v", err)
	}
	return u, token
}

func TestRequireAuth_RejectsMissingToken(t *testing.T) {
	store := auth.NewMemoryStore()
	wrapped := mw.RequireAuth(store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a token")
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest("GET", "/cart", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuth_AttachesSession(t *testing.T) {
	store := auth.NewMemoryStore()
	u, token := seedUser(t, store, models.RoleCustomer)

	wrapped := mw.RequireAuth(store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := mw.SessionFrom(r.Context())
		if !ok {
			t.Fatal("expected session on context")
		}
		if sess.UserID != u.ID || sess.Role != models.RoleCustomer {
			t.Errorf("session = %+v", sess)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireAuth_RejectsRevokedToken(t *testing.T) {
	store := auth.NewMemoryStore()
	u, token := seedUser(t, store, models.RoleCustomer)

	if err := store.BumpTokenVersion(u.ID); err != nil {
		t.Fatalf("bump token version: %v", err)
	}

	wrapped := mw.RequireAuth(store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("revoked token must not pass")
	}))

	req := httptest.NewRequest("GET", "/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestOptionalAuth_GuestPassesThrough(t *testing.T) {
	store := auth.NewMemoryStore()
	wrapped := mw.OptionalAuth(store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := mw.SessionFrom(r.Context()); ok {
			t.Error("guest request should carry no session")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest("GET", "/books/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireRole_BlocksCustomerFromSellerSurface(t *testing.T) {
	store := auth.NewMemoryStore()
	_, token := seedUser(t, store, models.RoleCustomer)

	wrapped := mw.RequireRole(store, models.RoleSeller, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("customer must not reach seller surface")
	}))

	req := httptest.NewRequest("GET", "/seller/books", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequireRole_AdmitsSeller(t *testing.T) {
	store := auth.NewMemoryStore()
	_, token := seedUser(t, store, models.RoleSeller)

	wrapped := mw.RequireRole(store, models.RoleSeller, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/seller/books", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
