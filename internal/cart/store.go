package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pawmate/petcare-backend/internal/catalog"
	"github.com/pawmate/petcare-backend/internal/snapshot"
)

// StorageName is the fixed snapshot key for this store.
const StorageName = "cart-storage"

// Item is one cart line: a full product snapshot plus the desired quantity.
// At most one Item exists per product ID and quantity never drops below 1.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

type state struct {
	Items []Item `json:"items"`
}

// Store tracks desired purchase quantities per product and derives the
// aggregate count and total. Same persistence model as the appointment
// store: synchronous in-memory mutation, best-effort write-through.
type Store struct {
	mu     sync.RWMutex
	st     state
	subs   map[int]func()
	nextID int

	writer *snapshot.Writer
	log    *zap.Logger
}

func New(ctx context.Context, snaps snapshot.Store, saveTimeout time.Duration, log *zap.Logger) *Store {
	s := &Store{
		st:     state{Items: []Item{}},
		subs:   make(map[int]func()),
		writer: snapshot.NewWriter(snaps, StorageName, saveTimeout, log),
		log:    log,
	}
	s.rehydrate(ctx, snaps)
	return s
}

func (s *Store) rehydrate(ctx context.Context, snaps snapshot.Store) {
	data, err := snaps.Load(ctx, StorageName)
	if err != nil {
		if !errors.Is(err, snapshot.ErrNotFound) {
			s.log.Warn("snapshot load failed, starting empty",
				zap.String("name", StorageName),
				zap.Error(err))
		}
		return
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		s.log.Warn("corrupt snapshot, starting empty",
			zap.String("name", StorageName),
			zap.Error(err))
		return
	}
	if st.Items == nil {
		st.Items = []Item{}
	}
	s.st = st
}

// AddItem merges quantity into an existing line for the same product ID, or
// appends a new line. Quantities below 1 count as 1. Stock limits are the
// caller's concern.
func (s *Store) AddItem(product catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	found := false
	for i := range s.st.Items {
		if s.st.Items[i].Product.ID == product.ID {
			s.st.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		s.st.Items = append(s.st.Items, Item{Product: product, Quantity: quantity})
	}
	data := s.encode()
	s.mu.Unlock()

	s.mutated(data)
}

// RemoveItem deletes the matching line. Unknown product IDs are a silent
// no-op.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	kept := s.st.Items[:0]
	for _, it := range s.st.Items {
		if it.Product.ID != productID {
			kept = append(kept, it)
		}
	}
	s.st.Items = kept
	data := s.encode()
	s.mu.Unlock()

	s.mutated(data)
}

// UpdateQuantity sets the line's quantity to max(1, quantity). Zero and
// negative requests clamp to 1, they never remove the line; removal is only
// via RemoveItem. No-op when the product is not in the cart.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	for i := range s.st.Items {
		if s.st.Items[i].Product.ID == productID {
			s.st.Items[i].Quantity = quantity
			break
		}
	}
	data := s.encode()
	s.mu.Unlock()

	s.mutated(data)
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	s.st.Items = []Item{}
	data := s.encode()
	s.mu.Unlock()

	s.mutated(data)
}

func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.st.Items))
	copy(out, s.st.Items)
	return out
}

// ItemCount is the sum of all line quantities, not the number of distinct
// products.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, it := range s.st.Items {
		total += it.Quantity
	}
	return total
}

// Total is the sum of price times quantity over all lines. Shipping and tax
// are display-layer constants, not included here.
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, it := range s.st.Items {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}

// Subscribe registers fn to run after every mutation. Returns an
// unsubscribe func.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Flush waits for pending snapshot writes.
func (s *Store) Flush() {
	s.writer.Flush()
}

// encode must be called with mu held.
func (s *Store) encode() []byte {
	data, err := json.Marshal(s.st)
	if err != nil {
		s.log.Error("encode state failed", zap.Error(err))
		return nil
	}
	return data
}

func (s *Store) mutated(data []byte) {
	if data != nil {
		s.writer.Write(data)
	}

	s.mu.RLock()
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
}
