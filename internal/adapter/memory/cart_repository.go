package memory

import (
	"sync"

	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

type cartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewCartRepository() interfaces.CartRepository {
	return &cartRepository{carts: make(map[string]*domain.Cart)}
}

// Get returns a copy of the session cart; an unknown session has an empty cart.
func (r *cartRepository) Get(session string) *domain.Cart {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[session]
	if !ok {
		return &domain.Cart{Lines: []domain.CartLine{}}
	}
	return cart.Clone()
}

func (r *cartRepository) Save(session string, cart *domain.Cart) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[session] = cart.Clone()
}

func (r *cartRepository) Clear(session string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, session)
}
