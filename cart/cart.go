// Package cart holds per-session carts in memory. Carts are never
// persisted: a cart only matters until checkout captures its lines into an
// order.
package cart

import (
	"sync"

	"curries-burger-api/models"
)

// Cart is one session's line items, insertion order preserved. Requests for
// the same session run concurrently, so every operation takes the cart's
// own lock; callers read lines through Items, never a shared slice.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

// Items returns a snapshot of the cart's lines. The returned slice is the
// caller's own copy and is never nil.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Add appends a line, or bumps the quantity when the item is already in the
// cart with the same customization.
func (c *Cart) Add(item models.MenuItem, quantity int, customization string) {
	if quantity < 1 {
		quantity = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == item.ID && c.items[i].Customization == customization {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, models.CartItem{
		MenuItem:      item,
		Quantity:      quantity,
		Customization: customization,
	})
}

// UpdateQuantity applies a delta to the matching line. Quantity clamps at
// zero and a zero-quantity line is removed — a cart never stores one.
func (c *Cart) UpdateQuantity(itemID string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID != itemID {
			continue
		}
		q := c.items[i].Quantity + delta
		if q <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = q
		}
		return
	}
}

// Remove drops the matching line outright.
func (c *Cart) Remove(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var sum float64
	for _, item := range c.items {
		sum += item.LineTotal()
	}
	return sum
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Store keeps carts keyed by session id, guarded for concurrent handlers.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the session's cart, creating it on first use.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
	}
	return c
}

// Drop discards the session's cart, typically after checkout.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
