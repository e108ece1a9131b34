// Package orders records completed checkouts in memory.
package orders

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shelfmart/storefront-api/internal/cart"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Items      []cart.Line `json:"items"`
	Total      float64     `json:"total"`
	Status     Status      `json:"status"`
	PlacedAt   time.Time   `json:"placed_at"`
}

var ErrEmptyOrder = errors.New("order has no items")

// Store keeps orders in memory, newest last per customer.
type Store struct {
	mu         sync.Mutex
	byCustomer map[string][]Order
}

func NewStore() *Store {
	return &Store{byCustomer: make(map[string][]Order)}
}

// Place records a checkout. There is no payment step, so orders complete
// immediately.
func (s *Store) Place(customerID string, items []cart.Line, total float64) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrEmptyOrder
	}
	o := Order{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Items:      items,
		Total:      total,
		Status:     StatusCompleted,
		PlacedAt:   time.Now().UTC(),
	}
	s.mu.Lock()
	s.byCustomer[customerID] = append(s.byCustomer[customerID], o)
	s.mu.Unlock()
	return o, nil
}

// ListByCustomer returns the customer's orders in placement order.
func (s *Store) ListByCustomer(customerID string) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.byCustomer[customerID]
	out := make([]Order, len(src))
	copy(out, src)
	return out
}
