// Package cart holds the session-scoped shopping cart: an ordered
// in-memory view of one session's cart rows, kept in step with the
// backing store. Writes go to the store first and local state only
// changes after the store confirms, so a failed write never leaves the
// two views disagreeing.
package cart

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/chinmay09gowda/e-commerce.website/models"
)

// Line pairs a product snapshot with a quantity. Lines keep insertion
// order.
type Line struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Cart is the in-memory cart for a single session. All operations
// serialize on an internal mutex, so two rapid mutations from the same
// session cannot interleave their store writes.
type Cart struct {
	sessionID string
	store     Store

	mu    sync.Mutex
	lines []Line
}

func New(store Store, sessionID string) *Cart {
	return &Cart{store: store, sessionID: sessionID}
}

// SessionID returns the session this cart belongs to.
func (c *Cart) SessionID() string {
	return c.sessionID
}

// Load replaces the in-memory lines wholesale from the store.
func (c *Cart) Load(ctx context.Context) error {
	lines, err := c.store.Fetch(ctx, c.sessionID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = lines
	return nil
}

// Add puts quantity more of product into the cart. If a line for the
// product already exists the quantities accumulate; otherwise a new row
// is inserted and a new line appended. Stock is not checked here:
// callers validate against product.Stock before calling.
func (c *Cart) Add(ctx context.Context, product models.Product, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, line := range c.lines {
		if line.Product.ID == product.ID {
			return c.setQuantityLocked(ctx, product.ID, line.Quantity+quantity)
		}
	}

	if err := c.store.Insert(ctx, c.sessionID, product.ID, quantity); err != nil {
		return err
	}
	c.lines = append(c.lines, Line{Product: product, Quantity: quantity})
	return nil
}

// Remove drops the line for productID. Removing a product that is not
// in the cart is a silent no-op.
func (c *Cart) Remove(ctx context.Context, productID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(ctx, productID)
}

// SetQuantity sets the line for productID to exactly quantity. A target
// of zero or less removes the line instead, so a quantity below one is
// never observable. Setting a product that is not in the cart is a
// silent no-op.
func (c *Cart) SetQuantity(ctx context.Context, productID uuid.UUID, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setQuantityLocked(ctx, productID, quantity)
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Clear(ctx, c.sessionID); err != nil {
		return err
	}
	c.lines = nil
	return nil
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is the sum of price x quantity over all lines, recomputed on
// every call.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities over all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) setQuantityLocked(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return c.removeLocked(ctx, productID)
	}

	idx := -1
	for i, line := range c.lines {
		if line.Product.ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	if err := c.store.UpdateQuantity(ctx, c.sessionID, productID, quantity); err != nil {
		return err
	}
	c.lines[idx].Quantity = quantity
	return nil
}

func (c *Cart) removeLocked(ctx context.Context, productID uuid.UUID) error {
	if err := c.store.Delete(ctx, c.sessionID, productID); err != nil {
		return err
	}

	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
	return nil
}
