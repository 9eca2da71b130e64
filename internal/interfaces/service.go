package interfaces

import (
	"context"
	"errors"
	"time"

	"github.com/YelzhanWeb/kiosk/internal/domain"
)

// Интерфейсы Сервисов (Business Logic)
type OrderService interface {
	Cart(session string) *domain.Cart
	AddToCart(session, itemID, variantName string) (domain.CartLine, error)
	UpdateQuantity(session, cartID string, delta int) (*domain.Cart, error)
	RemoveFromCart(session, cartID string) (*domain.Cart, error)
	PlaceOrder(ctx context.Context, session, customerName string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.Status, changedBy string) (*domain.Order, error)
	Order(id string) (*domain.Order, error)
	Orders() []*domain.Order
	ActiveOrders() []*domain.Order
}

type CatalogService interface {
	Menu() []domain.MenuItem
	Item(id string) (domain.MenuItem, error)
	UpdateImage(id, image string) (domain.MenuItem, error)
	Recommend(ctx context.Context, mood string) string
}

type AttendanceService interface {
	Staff() []domain.StaffMember
	AddStaff(name, pin string, hourlyRate float64) (*domain.StaffMember, error)
	UpdateStaff(id, name string, hourlyRate float64) (*domain.StaffMember, error)
	RemoveStaff(id string) error
	ClockIn(ctx context.Context, staffID string) (*domain.StaffLog, error)
	ClockOut(ctx context.Context, logID string) (*domain.StaffLog, error)
	ActiveLog(staffID string) (*domain.StaffLog, bool)
	Logs() []*domain.StaffLog
}

type SettingsService interface {
	VerifyAdminPIN(pin string) error
	ChangeAdminPIN(current, next, confirm string) error
	AutoPrint() bool
	SetAutoPrint(enabled bool)
}

// Внешние коллабораторы
type Recommender interface {
	Recommend(ctx context.Context, mood string, menuNames []string) (string, error)
}

type ReceiptPrinter interface {
	Print(ctx context.Context, order *domain.Order) error
}

// AutoPrintSetting is the part of settings the order flow reads
type AutoPrintSetting interface {
	AutoPrint() bool
}

var ErrMissingAPIKey = errors.New("recommendation api key is not configured")

// Clock is injected where tests need a fixed "now"
type Clock func() time.Time

type ReportingService interface {
	Dashboard(now time.Time) domain.Dashboard
	Export(period domain.Period, now time.Time) domain.Report
}
