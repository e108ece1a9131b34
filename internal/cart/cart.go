// Package cart owns shopping-cart state: one line per book, quantities
// clamped to the stock seen at insertion time, totals derived on read.
package cart

import (
	"sync"

	"github.com/shelfmart/storefront-api/internal/models"
)

// Line is one cart row, keyed by book ID. Display fields are a snapshot
// taken when the line was created, so a seller edit mid-session does not
// reprice a cart behind the shopper's back. StockCeiling caps Quantity
// for the lifetime of the line.
type Line struct {
	BookID       string  `json:"book_id"`
	Title        string  `json:"title"`
	Author       string  `json:"author"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
	StockCeiling int     `json:"stock_ceiling"`
	Quantity     int     `json:"quantity"`
}

// Store holds one user's cart. All access goes through a single mutex:
// merge-on-add and clamp-on-update are read-modify-write sequences that
// must not interleave once the HTTP layer shares the store across
// goroutines.
type Store struct {
	mu     sync.Mutex
	lines  []Line // insertion order, stable across updates
	slot   Slot   // nil disables persistence
	key    string
	warned bool
}

// New returns an empty store persisting snapshots under key in slot.
// A nil slot yields a purely in-memory cart.
func New(slot Slot, key string) *Store {
	return &Store{slot: slot, key: key}
}

// Load builds a store from whatever the slot holds under key. A missing
// or corrupt snapshot yields an empty cart; loading never fails.
func Load(slot Slot, key string) *Store {
	s := New(slot, key)
	s.restore()
	return s
}

// Add puts qty copies of book in the cart. A line already holding the
// book is incremented instead of duplicated, and the quantity is clamped
// to the line's stock ceiling; overshoot is dropped silently.
func (s *Store) Add(book models.Book, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if book.Stock <= 0 {
		return ErrOutOfStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].BookID == book.ID {
			s.lines[i].Quantity = clamp(s.lines[i].Quantity+qty, 1, s.lines[i].StockCeiling)
			s.persist()
			return nil
		}
	}

	s.lines = append(s.lines, Line{
		BookID:       book.ID,
		Title:        book.Title,
		Author:       book.Author,
		Price:        book.Price,
		ImageURL:     book.ImageURL,
		StockCeiling: book.Stock,
		Quantity:     clamp(qty, 1, book.Stock),
	})
	s.persist()
	return nil
}

// UpdateQuantity sets the quantity of an existing line, clamped to
// [1, ceiling]. A non-positive quantity removes the line. Updating an
// absent line is a no-op.
func (s *Store) UpdateQuantity(bookID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].BookID != bookID {
			continue
		}
		if qty <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = clamp(qty, 1, s.lines[i].StockCeiling)
		}
		s.persist()
		return
	}
}

// Remove deletes the line for bookID if present. Idempotent.
func (s *Store) Remove(bookID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].BookID == bookID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persist()
}

// Items returns the lines in insertion order. The slice is a copy.
func (s *Store) Items() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Snapshot returns the lines, total, and badge count from one locked
// read, so a caller rendering all three never sees a mutation land
// between them.
func (s *Store) Snapshot() ([]Line, float64, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	var total float64
	var count int
	for _, l := range s.lines {
		total += l.Price * float64(l.Quantity)
		count += l.Quantity
	}
	return out, total, count
}

// Total is the sum of price times quantity over every line.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var t float64
	for _, l := range s.lines {
		t += l.Price * float64(l.Quantity)
	}
	return t
}

// Count is the sum of quantities, used for the cart badge.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
