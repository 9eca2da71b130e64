package domain

import (
	"errors"
	"fmt"
)

type Category string

const (
	CategoryIcedCoffee Category = "Iced Coffee"
	CategoryHotCoffee  Category = "Hot Coffee"
	CategoryFrappe     Category = "Frappes"
	CategoryMilkTea    Category = "Milk Tea"
	CategoryFruitSoda  Category = "Fruit Soda"
	CategoryMeals      Category = "Rice & Meals"
	CategorySnacks     Category = "Snacks"
	CategoryDessert    Category = "Desserts"
)

// Categories lists the menu categories in display order
var Categories = []Category{
	CategoryIcedCoffee,
	CategoryHotCoffee,
	CategoryFrappe,
	CategoryMilkTea,
	CategoryFruitSoda,
	CategoryMeals,
	CategorySnacks,
	CategoryDessert,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Variant is a named price point of a menu item, e.g. a cup size
type Variant struct {
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
}

// MenuItem is a catalog entry. It is priced either by BasePrice or by
// Variants, never both.
type MenuItem struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Category    Category  `json:"category" yaml:"category"`
	BasePrice   *float64  `json:"basePrice,omitempty" yaml:"base_price,omitempty"`
	Variants    []Variant `json:"variants,omitempty" yaml:"variants,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Image       string    `json:"image,omitempty" yaml:"image,omitempty"`
}

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrVariantRequired  = errors.New("variant is required for this item")
	ErrUnknownVariant   = errors.New("unknown variant")
)

// Validate applies the catalog rules
func (m MenuItem) Validate() error {
	if m.ID == "" {
		return errors.New("menu item id is required")
	}
	if m.Name == "" {
		return fmt.Errorf("menu item %s: name is required", m.ID)
	}
	if !m.Category.Valid() {
		return fmt.Errorf("menu item %s: unknown category %q", m.ID, m.Category)
	}
	if m.BasePrice != nil && len(m.Variants) > 0 {
		return fmt.Errorf("menu item %s: base price and variants are mutually exclusive", m.ID)
	}
	if m.BasePrice != nil && *m.BasePrice < 0 {
		return fmt.Errorf("menu item %s: negative price", m.ID)
	}
	for _, v := range m.Variants {
		if v.Name == "" || v.Price < 0 {
			return fmt.Errorf("menu item %s: invalid variant %q", m.ID, v.Name)
		}
	}
	return nil
}

// HasVariants reports whether the item is priced by variant
func (m MenuItem) HasVariants() bool {
	return len(m.Variants) > 0
}

// Variant looks up a variant by name
func (m MenuItem) Variant(name string) (Variant, bool) {
	for _, v := range m.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// Clone returns a copy that shares no mutable structure with m.
func (m MenuItem) Clone() MenuItem {
	c := m
	if m.BasePrice != nil {
		p := *m.BasePrice
		c.BasePrice = &p
	}
	if m.Variants != nil {
		c.Variants = append([]Variant(nil), m.Variants...)
	}
	return c
}

// Price is a helper for building fixed-price items
func Price(v float64) *float64 {
	return &v
}
