package cart

import "sync"

// Registry hands out one Store per user, creating it on first use. Each
// store restores from its own slot key, so a returning shopper gets the
// cart they left behind (when a slot backend is configured).
type Registry struct {
	mu     sync.Mutex
	slot   Slot
	stores map[string]*Store
}

func NewRegistry(slot Slot) *Registry {
	return &Registry{slot: slot, stores: make(map[string]*Store)}
}

// For returns the cart for userID, loading it from the slot on first use.
func (r *Registry) For(userID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[userID]; ok {
		return s
	}
	s := Load(r.slot, "cart:"+userID)
	r.stores[userID] = s
	return s
}
