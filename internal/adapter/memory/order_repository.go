package memory

import (
	"sync"

	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

// orderRepository is the order ledger: append-only, with status as the only
// mutable field. Orders are never deleted, which is what keeps numbering by
// ledger length gap-free and unique.
type orderRepository struct {
	mu     sync.RWMutex
	orders []*domain.Order
	index  map[string]int
}

func NewOrderRepository() interfaces.OrderRepository {
	return &orderRepository{index: make(map[string]int)}
}

func (r *orderRepository) Append(order *domain.Order) *domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := order.Clone()
	stored.Number = len(r.orders) + 1
	r.index[stored.ID] = len(r.orders)
	r.orders = append(r.orders, stored)

	return stored.Clone()
}

func (r *orderRepository) FindByID(id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return r.orders[i].Clone(), nil
}

// List returns orders in placement order
func (r *orderRepository) List() []*domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = o.Clone()
	}
	return out
}

func (r *orderRepository) Update(id string, fn interfaces.OrderUpdate) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}

	draft := r.orders[i].Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}
	r.orders[i] = draft

	return draft.Clone(), nil
}
