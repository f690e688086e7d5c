// Package cart implements the client-held shopping cart: a list of
// (product, quantity) lines persisted through a Store on every mutation,
// with synchronous change notification so every mounted view of the cart
// stays in sync without manual wiring.
package cart

import (
	"fmt"
	"sync"

	"hedonic/internal/model"

	"github.com/rs/zerolog"
)

// Line is one (product, quantity) pairing. The product snapshot is captured
// at add time and not re-fetched for total calculations.
type Line struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

// Cart maintains the line list and derived totals. All mutations persist the
// full line list before returning and then notify subscribers synchronously.
type Cart struct {
	mu      sync.Mutex
	store   Store
	lines   []Line
	subs    map[int]func([]Line)
	nextSub int
	logger  zerolog.Logger
}

// New creates a cart backed by the given store. Corrupt or unreadable
// persisted state degrades to an empty cart rather than failing.
func New(store Store, logger zerolog.Logger) *Cart {
	c := &Cart{
		store:  store,
		subs:   make(map[int]func([]Line)),
		logger: logger.With().Str("component", "cart").Logger(),
	}

	lines, err := store.Load()
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to load persisted cart, starting empty")
		lines = nil
	}
	c.lines = lines

	return c
}

// AddItem adds the product to the cart. If a line for the product already
// exists its quantity is incremented, never replaced.
func (c *Cart) AddItem(product model.Product, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	return c.mutate(func(lines []Line) []Line {
		for i := range lines {
			if lines[i].Product.ID == product.ID {
				lines[i].Quantity += quantity
				return lines
			}
		}
		return append(lines, Line{Product: product, Quantity: quantity})
	})
}

// RemoveItem deletes the line for the product. Removing an absent product is
// a no-op.
func (c *Cart) RemoveItem(productID string) error {
	return c.mutate(func(lines []Line) []Line {
		return deleteLine(lines, productID)
	})
}

// UpdateQuantity sets the line's quantity to exactly the given value. A
// quantity of zero or below removes the line.
func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	return c.mutate(func(lines []Line) []Line {
		if quantity <= 0 {
			return deleteLine(lines, productID)
		}
		for i := range lines {
			if lines[i].Product.ID == productID {
				lines[i].Quantity = quantity
			}
		}
		return lines
	})
}

// Clear empties the cart.
func (c *Cart) Clear() error {
	return c.mutate(func([]Line) []Line {
		return nil
	})
}

// Lines returns a copy of the current line list.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyLines(c.lines)
}

// TotalItems returns the sum of all line quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice returns the sum over lines of unit price times quantity, using
// the product snapshot captured at add time.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, line := range c.lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// Subscribe registers an observer called synchronously after every persisted
// mutation. The returned function unsubscribes it.
func (c *Cart) Subscribe(fn func([]Line)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// mutate applies the change, persists the result, and notifies subscribers.
// A failed persist leaves the in-memory cart unchanged.
func (c *Cart) mutate(apply func([]Line) []Line) error {
	c.mu.Lock()

	updated := apply(copyLines(c.lines))
	if err := c.store.Save(updated); err != nil {
		c.mu.Unlock()
		c.logger.Error().Err(err).Msg("failed to persist cart")
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	c.lines = updated

	subs := make([]func([]Line), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	snapshot := copyLines(updated)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(copyLines(snapshot))
	}

	return nil
}

func deleteLine(lines []Line, productID string) []Line {
	out := lines[:0]
	for _, line := range lines {
		if line.Product.ID != productID {
			out = append(out, line)
		}
	}
	return out
}

func copyLines(lines []Line) []Line {
	if lines == nil {
		return nil
	}
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}
