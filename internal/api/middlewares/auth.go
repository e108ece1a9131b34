package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/shelfmart/storefront-api/internal/api/apperr"
	"github.com/shelfmart/storefront-api/internal/models"
	jwtutil "github.com/shelfmart/storefront-api/internal/security/jwt"
)

// UserLookup is the slice of the user registry the middlewares need to
// check token versions. Defined here to avoid importing the auth
// package (which imports this one).
type UserLookup interface {
	FindUserByID(id string) (models.User, error)
}

// RequireAuth verifies the Bearer session token, checks it against the
// user's current token version, and attaches the session to the context.
func RequireAuth(users UserLookup, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := sessionFromHeader(users, r)
		if err != nil {
			apperr.WriteStatus(w, r, http.StatusUnauthorized, "Unauthorized",
				"A valid session token is required.")
			return
		}
		ctx := WithSession(r.Context(), Session{UserID: claims.Subject, Role: claims.Role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attaches a session when a valid token is present and
// otherwise treats the caller as a guest.
func OptionalAuth(users UserLookup, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := sessionFromHeader(users, r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		ctx := WithSession(r.Context(), Session{UserID: claims.Subject, Role: claims.Role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates seller-only surfaces. The role comes from the
// verified token, and the registry is consulted again so a role change
// takes effect without waiting for token expiry.
func RequireRole(users UserLookup, role models.Role, next http.Handler) http.Handler {
	return RequireAuth(users, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFrom(r.Context())
		if !ok {
			apperr.WriteStatus(w, r, http.StatusUnauthorized, "Unauthorized", "")
			return
		}
		u, err := users.FindUserByID(sess.UserID)
		if err != nil || u.Role != role {
			apperr.WriteStatus(w, r, http.StatusForbidden, "Forbidden",
				"This surface requires the "+string(role)+" role.")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func sessionFromHeader(users UserLookup, r *http.Request) (*jwtutil.SessionClaims, error) {
	raw := r.Header.Get("Authorization")
	if raw == "" {
		return nil, errors.New("missing authorization header")
	}
	if !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return nil, errors.New("not a bearer token")
	}
	claims, err := jwtutil.ParseSession(strings.TrimSpace(raw[len("Bearer "):]))
	if err != nil {
		return nil, err
	}
	u, err := users.FindUserByID(claims.Subject)
	if err != nil {
		return nil, errors.New("unknown user")
	}
	if claims.TokenVersion != u.TokenVersion {
		return nil, errors.New("token revoked")
	}
	return claims, nil
}
