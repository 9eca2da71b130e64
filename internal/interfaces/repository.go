package interfaces

import (
	"context"

	"github.com/YelzhanWeb/kiosk/internal/domain"
)

// In-process state (adapter/memory). These hold the authoritative,
// process-lifetime state of the kiosk.
type MenuRepository interface {
	List() []domain.MenuItem
	FindByID(id string) (domain.MenuItem, error)
	UpdateImage(id, image string) error
}

type CartRepository interface {
	Get(session string) *domain.Cart
	Save(session string, cart *domain.Cart)
	Clear(session string)
}

// OrderUpdate mutates a copy of a stored order; an error discards the copy.
type OrderUpdate func(order *domain.Order) error

type OrderRepository interface {
	// Append assigns the next order number (ledger length + 1) and stores the order.
	Append(order *domain.Order) *domain.Order
	FindByID(id string) (*domain.Order, error)
	List() []*domain.Order
	Update(id string, fn OrderUpdate) (*domain.Order, error)
}

type StaffRepository interface {
	List() []domain.StaffMember
	FindByID(id string) (domain.StaffMember, error)
	Add(member domain.StaffMember)
	Update(member domain.StaffMember) error
	Remove(id string) error
}

// LogUpdate mutates a copy of a stored staff log; an error discards the copy.
type LogUpdate func(log *domain.StaffLog) error

type AttendanceRepository interface {
	Append(log *domain.StaffLog)
	FindByID(id string) (*domain.StaffLog, error)
	FindOpenByStaff(staffID string) (*domain.StaffLog, error)
	Update(id string, fn LogUpdate) (*domain.StaffLog, error)
	// List returns logs newest first.
	List() []*domain.StaffLog
}

// Write-only sales archive (adapter/postgres). Nothing reads it back into
// the kiosk state.
type SalesArchive interface {
	ArchiveOrder(ctx context.Context, order *domain.Order) error
	LogStatus(ctx context.Context, change domain.StatusChange) error
	ArchiveShift(ctx context.Context, log *domain.StaffLog) error
}
