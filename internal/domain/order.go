package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Order represents a placed kiosk order. Only Status (and UpdatedAt) change
// after creation.
type Order struct {
	ID           string     `json:"id"`
	Number       int        `json:"orderNumber"`
	Items        []CartLine `json:"items"`
	Total        float64    `json:"total"`
	Status       Status     `json:"status"`
	CustomerName string     `json:"customerName,omitempty"`
	CreatedAt    time.Time  `json:"timestamp"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NewOrder snapshots the cart lines into a pending order. The number is left
// unset; the ledger assigns it on append.
func NewOrder(lines []CartLine, customerName string, now time.Time) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]CartLine, len(lines))
	for i, l := range lines {
		items[i] = l.Clone()
	}

	return &Order{
		ID:           uuid.NewString(),
		Items:        items,
		Total:        Total(items),
		Status:       StatusPending,
		CustomerName: strings.TrimSpace(customerName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// TransitionTo moves the order to newStatus if the state machine allows it
func (o *Order) TransitionTo(newStatus Status, now time.Time) error {
	if !o.CanTransitionTo(newStatus) {
		return ErrInvalidStatusTransition
	}

	o.Status = newStatus
	o.UpdatedAt = now
	return nil
}

// CanTransitionTo checks if the order can transition to the new status
func (o *Order) CanTransitionTo(newStatus Status) bool {
	return CanTransition(o.Status, newStatus)
}

// DisplayName is the customer name or "Guest"
func (o *Order) DisplayName() string {
	if o.CustomerName == "" {
		return "Guest"
	}
	return o.CustomerName
}

func (o *Order) Clone() *Order {
	c := *o
	c.Items = make([]CartLine, len(o.Items))
	for i, l := range o.Items {
		c.Items[i] = l.Clone()
	}
	return &c
}

var (
	ErrEmptyCart               = errors.New("cart is empty")
	ErrCartLineNotFound        = errors.New("cart line not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidStatus           = errors.New("invalid order status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
