package middlewares

import (
	"context"

	"github.com/shelfmart/storefront-api/internal/models"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeySession
)

// Session is the identity attached to a request after token
// verification.
type Session struct {
	UserID string
	Role   models.Role
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKeySession, s)
}

func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKeySession).(Session)
	return s, ok && s.UserID != ""
}

// UserIDFrom is a shortcut for handlers that only need the subject.
func UserIDFrom(ctx context.Context) (string, bool) {
	s, ok := SessionFrom(ctx)
	return s.UserID, ok
}
