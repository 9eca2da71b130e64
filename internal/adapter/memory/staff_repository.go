package memory

import (
	"sync"

	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

type staffRepository struct {
	mu      sync.RWMutex
	members []domain.StaffMember
}

func NewStaffRepository(members []domain.StaffMember) interfaces.StaffRepository {
	return &staffRepository{members: append([]domain.StaffMember(nil), members...)}
}

func (r *staffRepository) List() []domain.StaffMember {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.StaffMember(nil), r.members...)
}

func (r *staffRepository) FindByID(id string) (domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.StaffMember{}, domain.ErrStaffNotFound
}

func (r *staffRepository) Add(member domain.StaffMember) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members = append(r.members, member)
}

func (r *staffRepository) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.members {
		if m.ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return domain.ErrStaffNotFound
}

func (r *staffRepository) Update(member domain.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.members {
		if m.ID == member.ID {
			r.members[i] = member
			return nil
		}
	}
	return domain.ErrStaffNotFound
}
