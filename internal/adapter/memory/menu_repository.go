package memory

import (
	"fmt"
	"sync"

	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

type menuRepository struct {
	mu    sync.RWMutex
	items []domain.MenuItem
	index map[string]int
}

// NewMenuRepository validates the items and keeps them in the given order.
func NewMenuRepository(items []domain.MenuItem) (interfaces.MenuRepository, error) {
	r := &menuRepository{
		items: make([]domain.MenuItem, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.index[item.ID]; dup {
			return nil, fmt.Errorf("duplicate menu item id %s", item.ID)
		}
		r.index[item.ID] = len(r.items)
		r.items = append(r.items, item.Clone())
	}
	return r, nil
}

func (r *menuRepository) List() []domain.MenuItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.MenuItem, len(r.items))
	for i, item := range r.items {
		out[i] = item.Clone()
	}
	return out
}

func (r *menuRepository) FindByID(id string) (domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return domain.MenuItem{}, domain.ErrMenuItemNotFound
	}
	return r.items[i].Clone(), nil
}

func (r *menuRepository) UpdateImage(id, image string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return domain.ErrMenuItemNotFound
	}
	r.items[i].Image = image
	return nil
}
