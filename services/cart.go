// services/cart.go
package services

import (
	"sort"
	"strings"

	"laundrypos-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartAddon is one optional extra chosen for a cart line.
type CartAddon struct {
	Name  string
	Price decimal.Decimal
}

// CartLine is one ephemeral, not-yet-persisted selection of a service.
type CartLine struct {
	ID                 string
	ServiceID          uuid.UUID
	ServiceName        string
	ServiceDescription string
	Icon               string
	UnitPrice          decimal.Decimal
	Quantity           int
	Addons             []CartAddon
}

// LineTotal is (unit price + sum of addon prices) * quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	unit := l.UnitPrice
	for _, a := range l.Addons {
		unit = unit.Add(a.Price)
	}
	return unit.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// addonKey serializes the addon set order-insensitively, so two lines with
// the same addons in a different order still merge.
func (l CartLine) addonKey() string {
	parts := make([]string, 0, len(l.Addons))
	for _, a := range l.Addons {
		parts = append(parts, a.Name+":"+a.Price.StringFixed(2))
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// Cart holds one customer's in-progress selection. It is scoped to a single
// UI session and is not safe for concurrent use; observers are notified
// synchronously after every mutation.
type Cart struct {
	lines     []CartLine
	observers []func()
}

func NewCart() *Cart {
	return &Cart{}
}

// Subscribe registers an observer fired after each mutating operation.
func (c *Cart) Subscribe(fn func()) {
	c.observers = append(c.observers, fn)
}

func (c *Cart) notify() {
	for _, fn := range c.observers {
		fn()
	}
}

// AddItem puts a service in the cart. Lines are equal iff they reference
// the same service with the same addon set; equal lines merge by
// incrementing quantity, anything else appends a new line with quantity 1.
func (c *Cart) AddItem(service models.Service, addons []CartAddon) CartLine {
	candidate := CartLine{
		ServiceID: service.ID,
		Addons:    addons,
	}
	for i := range c.lines {
		if c.lines[i].ServiceID == service.ID && c.lines[i].addonKey() == candidate.addonKey() {
			c.lines[i].Quantity++
			line := c.lines[i]
			c.notify()
			return line
		}
	}

	line := CartLine{
		ID:                 uuid.NewString(),
		ServiceID:          service.ID,
		ServiceName:        service.NameEn,
		ServiceDescription: service.DescriptionEn,
		Icon:               service.Icon,
		UnitPrice:          service.Price,
		Quantity:           1,
		Addons:             append([]CartAddon(nil), addons...),
	}
	c.lines = append(c.lines, line)
	c.notify()
	return line
}

// IncreaseQuantity bumps a line by one.
func (c *Cart) IncreaseQuantity(lineID string) bool {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines[i].Quantity++
			c.notify()
			return true
		}
	}
	return false
}

// DecreaseQuantity lowers a line by one, clamped at 1. Removing a line goes
// through RemoveItem or SetQuantity(0), never through decrement.
func (c *Cart) DecreaseQuantity(lineID string) bool {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			if c.lines[i].Quantity > 1 {
				c.lines[i].Quantity--
			}
			c.notify()
			return true
		}
	}
	return false
}

// SetQuantity sets a line's quantity directly; zero or less removes the
// line.
func (c *Cart) SetQuantity(lineID string, quantity int) bool {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			if quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			} else {
				c.lines[i].Quantity = quantity
			}
			c.notify()
			return true
		}
	}
	return false
}

// RemoveItem drops a line unconditionally.
func (c *Cart) RemoveItem(lineID string) bool {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.notify()
			return true
		}
	}
	return false
}

// Clear empties the cart, called after successful checkout.
func (c *Cart) Clear() {
	c.lines = nil
	c.notify()
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	for i := range out {
		out[i].Addons = append([]CartAddon(nil), c.lines[i].Addons...)
	}
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Subtotal, Tax and Total are recomputed on every read.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range c.lines {
		subtotal = subtotal.Add(l.LineTotal())
	}
	return subtotal
}

func (c *Cart) Tax() decimal.Decimal {
	return CalculateTax(c.Subtotal())
}

func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Add(c.Tax())
}

// Snapshot returns a deep copy of the cart lines for checkout.
func (c *Cart) Snapshot() []CartLine {
	return c.Lines()
}
