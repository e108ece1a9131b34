package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shelfmart/storefront-api/internal/api/httpx"
	"github.com/shelfmart/storefront-api/internal/api/middlewares"
	"github.com/shelfmart/storefront-api/internal/models"
	jwtutil "github.com/shelfmart/storefront-api/internal/security/jwt"
	"github.com/shelfmart/storefront-api/internal/security/password"
)

type Handler struct {
	Store UserStore
}

func New(store UserStore) *Handler {
	return &Handler{Store: store}
}

// Register creates an account and signs the caller straight in, matching
// the storefront flow where registration lands you on the home page.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrorCode(w, http.StatusBadRequest, "bad_request", "Invalid JSON")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		httpx.ErrorCode(w, http.StatusBadRequest, "invalid_input", "A valid email is required")
		return
	}
	if req.Name == "" {
		// the storefront shows something, so fall back to the mailbox name
		req.Name = strings.SplitN(req.Email, "@", 2)[0]
	}
	if req.Role == "" {
		req.Role = models.RoleCustomer
	}
	if !models.ValidRole(req.Role) {
		httpx.ErrorCode(w, http.StatusBadRequest, "invalid_role", "Role must be customer or seller")
		return
	}

	trimmed, warn, err := password.Check(req.Password, req.Name, strings.SplitN(req.Email, "@", 2)[0])
	if err != nil {
		httpx.ErrorCode(w, http.StatusBadRequest, "weak_password", "Password must be at least 8 characters")
		return
	}

	hash, err := password.Hash(trimmed)
	if err != nil {
		httpx.ErrorCode(w, http.StatusInternalServerError, "hash_error", "Failed to hash password")
		return
	}

	u, err := h.Store.CreateUser(req.Name, req.Email, hash, req.Role)
	if err != nil {
		httpx.ErrorCode(w, http.StatusConflict, "email_taken", "Email is already registered")
		return
	}

	token, err := jwtutil.SignSession(u.ID, u.Role, u.TokenVersion, jwtutil.DefaultSessionTTL())
	if err != nil {
		httpx.ErrorCode(w, http.StatusInternalServerError, "jwt_error", "Failed to sign session token")
		return
	}

	resp := map[string]any{
		"token": token,
		"user":  MeResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt},
	}
	if warn != nil {
		resp["password_warning"] = warn
	}
	httpx.WriteJSON(w, http.StatusCreated, resp)
}

// Login checks credentials and, like the storefront's role toggle, also
// requires the claimed role to match the account.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrorCode(w, http.StatusBadRequest, "bad_request", "Invalid JSON")
		return
	}

	u, err := h.Store.FindUserByEmail(req.Email)
	if err != nil {
		httpx.ErrorCode(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		return
	}
	ok, err := password.Verify(strings.TrimSpace(req.Password), u.PasswordHash)
	if err != nil || !ok {
		httpx.ErrorCode(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		return
	}
	if req.Role != "" && req.Role != u.Role {
		httpx.ErrorCode(w, http.StatusUnauthorized, "role_mismatch", "Account is not registered for that role")
		return
	}

	token, err := jwtutil.SignSession(u.ID, u.Role, u.TokenVersion, jwtutil.DefaultSessionTTL())
	if err != nil {
		httpx.ErrorCode(w, http.StatusInternalServerError, "jwt_error", "Failed to sign session token")
		return
	}
	httpx.OK(w, map[string]any{
		"token": token,
		"user":  MeResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt},
	})
}

// Logout bumps the token version so every outstanding session token for
// the user stops verifying.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewares.UserIDFrom(r.Context())
	if !ok {
		httpx.ErrorCode(w, http.StatusUnauthorized, "unauthorized", "Not signed in")
		return
	}
	if err := h.Store.BumpTokenVersion(userID); err != nil {
		httpx.ErrorCode(w, http.StatusUnauthorized, "unauthorized", "Unknown user")
		return
	}
	httpx.OKNoData(w)
}

// Me returns the signed-in user's profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewares.UserIDFrom(r.Context())
	if !ok {
		httpx.ErrorCode(w, http.StatusUnauthorized, "unauthorized", "Not signed in")
		return
	}
	u, err := h.Store.FindUserByID(userID)
	if err != nil {
		httpx.ErrorCode(w, http.StatusUnauthorized, "unauthorized", "Unknown user")
		return
	}
	httpx.OK(w, MeResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt})
}
