package auth

import (
	"time"

	"github.com/shelfmart/storefront-api/internal/models"
)

type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type LoginRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type MeResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// UserStore abstracts the registry so handlers don't care that the
// backing store is a map.
type UserStore interface {
	CreateUser(name, email, passwordHash string, role models.Role) (models.User, error)
	FindUserByEmail(email string) (models.User, error)
	FindUserByID(id string) (models.User, error)
	BumpTokenVersion(userID string) error
}
