package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	americano = MenuItem{ID: "hc-1", Name: "Americano", Category: CategoryHotCoffee, BasePrice: Price(49)}
	milkTea   = MenuItem{ID: "mt-1", Name: "Milk Tea", Category: CategoryMilkTea, Variants: []Variant{
		{Name: "Small", Price: 35},
		{Name: "Large", Price: 70},
	}}
	freebie = MenuItem{ID: "fr-1", Name: "Water", Category: CategorySnacks}
)

func variant(t *testing.T, item MenuItem, name string) *Variant {
	t.Helper()
	v, ok := item.Variant(name)
	require.True(t, ok)
	return &v
}

func TestCartAdd_MergesSameItemAndVariant(t *testing.T) {
	var c Cart

	first := c.Add(americano, nil)
	second := c.Add(americano, nil)
	assert.Equal(t, first.CartID, second.CartID)
	assert.Equal(t, 2, second.Quantity)

	small := c.Add(milkTea, variant(t, milkTea, "Small"))
	large := c.Add(milkTea, variant(t, milkTea, "Large"))
	assert.NotEqual(t, small.CartID, large.CartID)

	require.Len(t, c.Lines, 3)
	assert.InDelta(t, 2*49+35+70, c.Total(), 1e-9)
}

func TestCartAdd_CopiesItem(t *testing.T) {
	var c Cart
	item := americano.Clone()
	c.Add(item, nil)

	*item.BasePrice = 1
	assert.InDelta(t, 49, c.Total(), 1e-9)
}

func TestCartUpdateQuantity_ClampsAtOne(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"increment", 1, 3, 4},
		{"decrement below one", 4, -10, 1},
		{"min int", 5, math.MinInt, 1},
		{"max int saturates", 5, math.MaxInt, MaxLineQuantity},
		{"just under cap", 5, MaxLineQuantity - 6, MaxLineQuantity - 1},
		{"at cap stays", MaxLineQuantity, 1, MaxLineQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			line := c.Add(americano, nil)
			c.Lines[0].Quantity = tt.start

			assert.True(t, c.UpdateQuantity(line.CartID, tt.delta))
			assert.Equal(t, tt.want, c.Lines[0].Quantity)
		})
	}
}

func TestCartUpdateQuantity_UnknownLine(t *testing.T) {
	var c Cart
	c.Add(americano, nil)

	assert.False(t, c.UpdateQuantity("missing", 1))
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestCartAdd_StopsAtCap(t *testing.T) {
	var c Cart
	c.Add(americano, nil)
	c.Lines[0].Quantity = MaxLineQuantity

	line := c.Add(americano, nil)
	assert.Equal(t, MaxLineQuantity, line.Quantity)
}

func TestCartRemoveAndClear(t *testing.T) {
	var c Cart
	a := c.Add(americano, nil)
	c.Add(freebie, nil)

	assert.True(t, c.Remove(a.CartID))
	assert.False(t, c.Remove(a.CartID))
	require.Len(t, c.Lines, 1)
	assert.Zero(t, c.Total())

	c.Clear()
	assert.True(t, c.IsEmpty())
}

func TestCartSnapshotIsIndependent(t *testing.T) {
	var c Cart
	line := c.Add(milkTea, variant(t, milkTea, "Large"))

	snap := c.Snapshot()
	c.UpdateQuantity(line.CartID, 2)
	c.Lines[0].SelectedVariant.Price = 0

	assert.Equal(t, 1, snap[0].Quantity)
	assert.InDelta(t, 70, Total(snap), 1e-9)
}

func TestUnitPriceResolution(t *testing.T) {
	assert.Equal(t, 49.0, CartLine{Item: americano, Quantity: 1}.UnitPrice())
	assert.Equal(t, 70.0, CartLine{Item: milkTea, Quantity: 1, SelectedVariant: variant(t, milkTea, "Large")}.UnitPrice())
	assert.Equal(t, 0.0, CartLine{Item: freebie, Quantity: 3}.LineTotal())
}
