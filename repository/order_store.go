package repository

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jesh-analyst/campus-eats-hub/entity"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStore is the authoritative in-memory order collection. One
// RWMutex serializes all mutations: token assignment never races a
// concurrent checkout, and a status update always validates against
// the latest committed state.
type OrderStore struct {
	mu     sync.RWMutex
	orders []*entity.Order // insertion order, implicitly chronological
	byID   map[string]*entity.Order

	seq      int // order id counter, never resets
	tokenSeq int // pickup token counter, resets each day
	tokenDay string
}

func NewOrderStore() *OrderStore {
	return &OrderStore{byID: make(map[string]*entity.Order)}
}

// Create assigns the order's ID and TokenNumber and appends it to the
// collection. Everything else on o must already be set by the caller.
func (s *OrderStore) Create(o *entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	o.ID = fmt.Sprintf("ORD%03d", s.seq)
	o.TokenNumber = s.nextTokenLocked(o.CreatedAt)

	s.byID[o.ID] = o
	s.orders = append(s.orders, o)
}

// nextTokenLocked hands out the next pickup token. The counter resets
// on day rollover, skipping any token still held by an active order so
// two orders waiting at the counter never share a number.
func (s *OrderStore) nextTokenLocked(now time.Time) int {
	day := now.Format("2006-01-02")
	if day != s.tokenDay {
		s.tokenDay = day
		s.tokenSeq = 0
	}
	for {
		s.tokenSeq++
		if !s.tokenHeldByActiveLocked(s.tokenSeq) {
			return s.tokenSeq
		}
	}
}

func (s *OrderStore) tokenHeldByActiveLocked(token int) bool {
	for _, o := range s.orders {
		if o.TokenNumber == token && o.Status.Active() {
			return true
		}
	}
	return false
}

// Get returns a copy of the order.
func (s *OrderStore) Get(id string) (entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.byID[id]
	if !ok {
		return entity.Order{}, ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

// Update runs mutate against the latest committed state of the order,
// under the write lock. If mutate returns an error the order is left
// untouched; mutate receives a working copy and the result is committed
// only on success.
func (s *OrderStore) Update(id string, mutate func(o *entity.Order) error) (entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.byID[id]
	if !ok {
		return entity.Order{}, ErrOrderNotFound
	}
	work := cloneOrder(o)
	if err := mutate(&work); err != nil {
		return entity.Order{}, err
	}
	*o = work
	return cloneOrder(o), nil
}

// List returns a copy of the whole collection in insertion order.
func (s *OrderStore) List() []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, cloneOrder(o))
	}
	return out
}

// Seed loads pre-built orders (demo data) and advances both counters
// past the seeded maximums so new orders continue the sequences.
func (s *OrderStore) Seed(orders []entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range orders {
		o := cloneOrder(&orders[i])
		s.byID[o.ID] = &o
		s.orders = append(s.orders, &o)
		if o.TokenNumber > s.tokenSeq {
			s.tokenSeq = o.TokenNumber
			s.tokenDay = o.CreatedAt.Format("2006-01-02")
		}
		var n int
		if _, err := fmt.Sscanf(o.ID, "ORD%d", &n); err == nil && n > s.seq {
			s.seq = n
		}
	}
}

func cloneOrder(o *entity.Order) entity.Order {
	out := *o
	out.Items = make([]entity.OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	return out
}
