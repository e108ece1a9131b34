package models

import "time"

// Role gates which views a user sees. It is a display concern: catalog
// and cart behaviour are identical for both roles.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
)

func ValidRole(r Role) bool {
	return r == RoleCustomer || r == RoleSeller
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	TokenVersion int       `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
