package cart

import (
	"sort"

	"github.com/plateful/takeaway/internal/domain/model"
)

// Line is a menu item plus a positive quantity. Lines exist only in
// memory; at checkout they collapse into order item snapshots.
type Line struct {
	Item     model.MenuItem
	Quantity int
}

// Cart accumulates selected items and derives totals. All operations are
// synchronous and side-effect-free beyond the owned set.
type Cart struct {
	lines map[int64]*Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{lines: make(map[int64]*Line)}
}

// Add inserts the item with quantity 1, or increments the existing line.
func (c *Cart) Add(item model.MenuItem) {
	if line, ok := c.lines[item.ID]; ok {
		line.Quantity++
		return
	}
	c.lines[item.ID] = &Line{Item: item, Quantity: 1}
}

// SetQuantity sets the line quantity for id. Zero removes the line;
// negative quantities clamp to zero, so they remove it too. Setting a
// quantity for an absent id is a no-op.
func (c *Cart) SetQuantity(id int64, q int) {
	if q <= 0 {
		c.Remove(id)
		return
	}
	if line, ok := c.lines[id]; ok {
		line.Quantity = q
	}
}

// Remove deletes the line for id if present.
func (c *Cart) Remove(id int64) {
	delete(c.lines, id)
}

// Clear empties the cart. Invoked after a successful checkout.
func (c *Cart) Clear() {
	c.lines = make(map[int64]*Line)
}

// Total returns the sum of price times quantity over all lines.
func (c *Cart) Total() float64 {
	var sum float64
	for _, line := range c.lines {
		sum += line.Item.Price * float64(line.Quantity)
	}
	return sum
}

// Count returns the total item quantity, used for display.
func (c *Cart) Count() int {
	var n int
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

// Empty reports whether the cart holds no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Lines returns the cart content ordered by item id, so responses and
// checkout snapshots are stable across calls.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.ID < out[j].Item.ID })
	return out
}
