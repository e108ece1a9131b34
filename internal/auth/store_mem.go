package auth

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shelfmart/storefront-api/internal/models"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

// MemoryStore is the whole user database: a map behind a mutex. Identity
// here is a display concern, not a security boundary, so nothing ever
// leaves the process.
type MemoryStore struct {
	mu      sync.Mutex
	byID    map[string]models.User
	byEmail map[string]string // lowercased email -> id
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

func (s *MemoryStore) CreateUser(name, email, passwordHash string, role models.Role) (models.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byEmail[key]; taken {
		return models.User{}, ErrEmailTaken
	}
	u := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        key,
		Role:         role,
		PasswordHash: passwordHash,
		TokenVersion: 1,
		CreatedAt:    time.Now().UTC(),
	}
	s.byID[u.ID] = u
	s.byEmail[key] = u.ID
	return u, nil
}

func (s *MemoryStore) FindUserByEmail(email string) (models.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[key]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return s.byID[id], nil
}

func (s *MemoryStore) FindUserByID(id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

// BumpTokenVersion invalidates every session token issued so far.
func (s *MemoryStore) BumpTokenVersion(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.TokenVersion++
	s.byID[userID] = u
	return nil
}
