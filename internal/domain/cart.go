package domain

import "github.com/google/uuid"

// CartLine is one item (and optional variant) with a quantity
type CartLine struct {
	CartID          string   `json:"cartId"`
	Item            MenuItem `json:"item"`
	Quantity        int      `json:"quantity"`
	SelectedVariant *Variant `json:"selectedVariant,omitempty"`
}

// UnitPrice resolves variant price over base price over zero.
func (l CartLine) UnitPrice() float64 {
	if l.SelectedVariant != nil {
		return l.SelectedVariant.Price
	}
	if l.Item.BasePrice != nil {
		return *l.Item.BasePrice
	}
	return 0
}

// LineTotal is UnitPrice times Quantity
func (l CartLine) LineTotal() float64 {
	return l.UnitPrice() * float64(l.Quantity)
}

// VariantName returns the selected variant name or "" for fixed-price lines
func (l CartLine) VariantName() string {
	if l.SelectedVariant == nil {
		return ""
	}
	return l.SelectedVariant.Name
}

func (l CartLine) Clone() CartLine {
	c := l
	c.Item = l.Item.Clone()
	if l.SelectedVariant != nil {
		v := *l.SelectedVariant
		c.SelectedVariant = &v
	}
	return c
}

func (l CartLine) sameIdentity(itemID string, variant *Variant) bool {
	if l.Item.ID != itemID {
		return false
	}
	if l.SelectedVariant == nil || variant == nil {
		return l.SelectedVariant == nil && variant == nil
	}
	return l.SelectedVariant.Name == variant.Name
}

// Total sums line totals. It is a pure function of lines.
func Total(lines []CartLine) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.LineTotal()
	}
	return total
}

// Cart is the ephemeral selection of one kiosk session. It is not safe for
// concurrent use; the order service owns all carts.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add merges into the line with the same item and variant name or appends a
// new line with quantity 1.
func (c *Cart) Add(item MenuItem, variant *Variant) CartLine {
	for i := range c.Lines {
		if c.Lines[i].sameIdentity(item.ID, variant) {
			c.Lines[i].Quantity = clampQuantity(c.Lines[i].Quantity, 1)
			return c.Lines[i].Clone()
		}
	}

	line := CartLine{
		CartID:   uuid.NewString(),
		Item:     item.Clone(),
		Quantity: 1,
	}
	if variant != nil {
		v := *variant
		line.SelectedVariant = &v
	}
	c.Lines = append(c.Lines, line)
	return line.Clone()
}

// MaxLineQuantity caps a single cart line
const MaxLineQuantity = 999

// UpdateQuantity applies delta clamped to [1, MaxLineQuantity]. It reports
// whether the line exists.
func (c *Cart) UpdateQuantity(cartID string, delta int) bool {
	for i := range c.Lines {
		if c.Lines[i].CartID == cartID {
			c.Lines[i].Quantity = clampQuantity(c.Lines[i].Quantity, delta)
			return true
		}
	}
	return false
}

// clampQuantity compares against the bounds before adding, so no delta can
// overflow.
func clampQuantity(q, delta int) int {
	switch {
	case delta >= MaxLineQuantity-q:
		return MaxLineQuantity
	case delta <= 1-q:
		return 1
	}
	return q + delta
}

// Remove deletes the line. It reports whether the line existed.
func (c *Cart) Remove(cartID string) bool {
	for i := range c.Lines {
		if c.Lines[i].CartID == cartID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Total() float64 {
	return Total(c.Lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) Clear() {
	c.Lines = nil
}

// Snapshot deep-copies the lines so later cart edits never reach the copy.
func (c *Cart) Snapshot() []CartLine {
	out := make([]CartLine, len(c.Lines))
	for i, l := range c.Lines {
		out[i] = l.Clone()
	}
	return out
}

func (c *Cart) Clone() *Cart {
	return &Cart{Lines: c.Snapshot()}
}
