package repository

import (
	"sync"

	"github.com/jesh-analyst/campus-eats-hub/entity"
)

// CartStore keeps every user's cart in memory. Each exported method
// takes the store lock once, so a single call is atomic with respect to
// the cart's own state; carts are never shared between users.
type CartStore struct {
	mu    sync.Mutex
	carts map[uint]*entity.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[uint]*entity.Cart)}
}

// Get returns a copy of the user's cart. A user without a cart gets an
// empty one rather than an error, so the frontend can always render.
func (s *CartStore) Get(userID uint) entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		return entity.Cart{UserID: userID}
	}
	return cloneCart(c)
}

// Upsert merges a line into the cart: an existing line for the same
// menu item gains quantity, otherwise the line is appended.
func (s *CartStore) Upsert(userID uint, line entity.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.carts[userID]
	if c == nil {
		c = &entity.Cart{UserID: userID}
		s.carts[userID] = c
	}
	for i := range c.Items {
		if c.Items[i].MenuItemID == line.MenuItemID {
			c.Items[i].Quantity += line.Quantity
			return
		}
	}
	c.Items = append(c.Items, line)
}

// SetQuantity sets the line's quantity; qty <= 0 removes the line.
// Unknown item ids are a no-op.
func (s *CartStore) SetQuantity(userID, menuItemID uint, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.carts[userID]
	if c == nil {
		return
	}
	if qty <= 0 {
		removeLine(c, menuItemID)
		return
	}
	for i := range c.Items {
		if c.Items[i].MenuItemID == menuItemID {
			c.Items[i].Quantity = qty
			return
		}
	}
}

// Remove deletes the line for menuItemID if present.
func (s *CartStore) Remove(userID, menuItemID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.carts[userID]; c != nil {
		removeLine(c, menuItemID)
	}
}

// Clear empties the user's cart unconditionally.
func (s *CartStore) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.carts[userID]; c != nil {
		c.Items = nil
	}
}

// Drain returns the cart's lines and clears the cart in one step, so a
// checkout snapshot and the clearing side effect cannot interleave with
// another mutation.
func (s *CartStore) Drain(userID uint) []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.carts[userID]
	if c == nil || len(c.Items) == 0 {
		return nil
	}
	items := c.Items
	c.Items = nil
	return items
}

func removeLine(c *entity.Cart, menuItemID uint) {
	for i := range c.Items {
		if c.Items[i].MenuItemID == menuItemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func cloneCart(c *entity.Cart) entity.Cart {
	out := entity.Cart{UserID: c.UserID}
	if len(c.Items) > 0 {
		out.Items = make([]entity.CartItem, len(c.Items))
		copy(out.Items, c.Items)
	}
	return out
}
