package cart

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

// Slot is the key-value hole the cart persists into. Implementations are
// best-effort: the cart never fails a caller because the slot did.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// snapshot is the wire form of a cart. Versioned so a future shape change
// can treat old blobs as corrupt (and therefore empty) instead of
// half-decoding them.
type snapshot struct {
	Version int    `json:"v"`
	Lines   []Line `json:"lines"`
}

const snapshotVersion = 1

// slotTimeout bounds every slot round trip; the cart's hot path must not
// hang on a slow backend.
const slotTimeout = 150 * time.Millisecond

// persist writes the current lines to the slot. Callers hold s.mu.
// Errors are logged once per store and otherwise swallowed.
func (s *Store) persist() {
	if s.slot == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), slotTimeout)
	defer cancel()

	if len(s.lines) == 0 {
		if err := s.slot.Delete(ctx, s.key); err != nil {
			s.warnOnce("delete failed: %v", err)
		}
		return
	}
	blob, err := json.Marshal(snapshot{Version: snapshotVersion, Lines: s.lines})
	if err != nil {
		s.warnOnce("marshal failed: %v", err)
		return
	}
	if err := s.slot.Set(ctx, s.key, blob); err != nil {
		s.warnOnce("set failed: %v", err)
	}
}

// restore loads lines from the slot. Anything unexpected — slot error,
// bad JSON, wrong version, nonsense quantities — leaves the cart empty.
func (s *Store) restore() {
	if s.slot == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), slotTimeout)
	defer cancel()

	blob, err := s.slot.Get(ctx, s.key)
	if err != nil || len(blob) == 0 {
		return
	}
	var snap snapshot
	if err := json.Unmarshal(blob, &snap); err != nil || snap.Version != snapshotVersion {
		return
	}
	lines := make([]Line, 0, len(snap.Lines))
	seen := make(map[string]struct{}, len(snap.Lines))
	for _, l := range snap.Lines {
		if l.BookID == "" || l.StockCeiling <= 0 {
			continue
		}
		if _, dup := seen[l.BookID]; dup {
			continue
		}
		seen[l.BookID] = struct{}{}
		l.Quantity = clamp(l.Quantity, 1, l.StockCeiling)
		lines = append(lines, l)
	}
	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
}

func (s *Store) warnOnce(format string, args ...any) {
	if s.warned {
		return
	}
	s.warned = true
	log.Printf("[cart][slot] "+format+" (muted next)", args...)
}
