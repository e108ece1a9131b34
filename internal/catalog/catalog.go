package catalog

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/shelfmart/storefront-api/internal/models"
)

var ErrNotFound = errors.New("book not found")

// Store is the in-memory catalog. Reads vastly outnumber writes (sellers
// edit inventory occasionally, everyone browses), hence the RWMutex.
type Store struct {
	mu    sync.RWMutex
	books []models.Book
	byID  map[string]int // index into books
}

// NewStore builds a catalog from the given seed. The seed is copied; the
// caller's slice is never touched again.
func NewStore(seed []models.Book) *Store {
	s := &Store{
		books: make([]models.Book, len(seed)),
		byID:  make(map[string]int, len(seed)),
	}
	copy(s.books, seed)
	for i, b := range s.books {
		s.byID[b.ID] = i
	}
	return s
}

// List returns a snapshot of the whole catalog in insertion order.
func (s *Store) List() []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Search runs the storefront filter over a consistent snapshot.
func (s *Store) Search(spec FilterSpec) []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Filter(s.books, spec)
}

func (s *Store) Get(id string) (models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return models.Book{}, ErrNotFound
	}
	return s.books[i], nil
}

// ListBySeller returns the given seller's inventory in catalog order.
func (s *Store) ListBySeller(sellerID string) []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Book{}
	for _, b := range s.books {
		if b.SellerID == sellerID {
			out = append(out, b)
		}
	}
	return out
}

// Add mints an ID and appends the book to the catalog.
func (s *Store) Add(b models.Book) (models.Book, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[b.ID]; exists {
		return models.Book{}, errors.New("duplicate book id")
	}
	s.byID[b.ID] = len(s.books)
	s.books = append(s.books, b)
	return b, nil
}

// Update replaces the stored book with the same ID.
func (s *Store) Update(b models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[b.ID]
	if !ok {
		return ErrNotFound
	}
	s.books[i] = b
	return nil
}

// Delete removes a book; removing an absent ID is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return
	}
	s.books = append(s.books[:i], s.books[i+1:]...)
	delete(s.byID, id)
	for j := i; j < len(s.books); j++ {
		s.byID[s.books[j].ID] = j
	}
}
