package order

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

// Service owns carts and the order ledger. mu is the single serialization
// point for every cart and ledger mutation.
type Service struct {
	mu        sync.Mutex
	menu      interfaces.MenuRepository
	carts     interfaces.CartRepository
	orders    interfaces.OrderRepository
	publisher interfaces.MessagePublisher
	archive   interfaces.SalesArchive
	printer   interfaces.ReceiptPrinter
	settings  interfaces.AutoPrintSetting
	logger    logger.Logger
	now       interfaces.Clock
}

func NewService(
	menu interfaces.MenuRepository,
	carts interfaces.CartRepository,
	orders interfaces.OrderRepository,
	publisher interfaces.MessagePublisher,
	archive interfaces.SalesArchive,
	printer interfaces.ReceiptPrinter,
	settings interfaces.AutoPrintSetting,
	logger logger.Logger,
) *Service {
	return &Service{
		menu:      menu,
		carts:     carts,
		orders:    orders,
		publisher: publisher,
		archive:   archive,
		printer:   printer,
		settings:  settings,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Service) Cart(session string) *domain.Cart {
	return s.carts.Get(session)
}

// AddToCart resolves the item and variant from the catalog, then merges into
// the session cart.
func (s *Service) AddToCart(session, itemID, variantName string) (domain.CartLine, error) {
	item, err := s.menu.FindByID(itemID)
	if err != nil {
		return domain.CartLine{}, err
	}

	var variant *domain.Variant
	if item.HasVariants() {
		if variantName == "" {
			return domain.CartLine{}, domain.ErrVariantRequired
		}
		v, ok := item.Variant(variantName)
		if !ok {
			return domain.CartLine{}, fmt.Errorf("%w: %s", domain.ErrUnknownVariant, variantName)
		}
		variant = &v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts.Get(session)
	line := cart.Add(item, variant)
	s.carts.Save(session, cart)

	return line, nil
}

// UpdateQuantity clamps the line quantity at 1. An unknown line leaves the
// cart unchanged and returns ErrCartLineNotFound.
func (s *Service) UpdateQuantity(session, cartID string, delta int) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts.Get(session)
	if !cart.UpdateQuantity(cartID, delta) {
		return cart, domain.ErrCartLineNotFound
	}
	s.carts.Save(session, cart)
	return cart, nil
}

func (s *Service) RemoveFromCart(session, cartID string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts.Get(session)
	if !cart.Remove(cartID) {
		return cart, domain.ErrCartLineNotFound
	}
	s.carts.Save(session, cart)
	return cart, nil
}

// PlaceOrder converts the session cart into a pending order and clears the
// cart. Publishing, archiving and printing happen afterwards and never undo
// the order.
func (s *Service) PlaceOrder(ctx context.Context, session, customerName string) (*domain.Order, error) {
	order, err := s.placeOrder(session, customerName)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order_placed", fmt.Sprintf("Order #%03d placed", order.Number), "", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.Number,
		"total":        order.Total,
		"session":      session,
	})

	if err := s.publisher.PublishOrder(ctx, interfaces.NewOrderMessage(order)); err != nil {
		s.logger.Error("rabbitmq_publish_failed", "Failed to publish order", "", map[string]interface{}{"order_id": order.ID}, err)
	}

	if err := s.archive.ArchiveOrder(ctx, order); err != nil {
		s.logger.Error("archive_failed", "Failed to archive order", "", map[string]interface{}{"order_id": order.ID}, err)
	}

	if s.settings.AutoPrint() {
		if err := s.printer.Print(ctx, order); err != nil {
			s.logger.Error("print_failed", "Failed to print receipt", "", map[string]interface{}{"order_id": order.ID}, err)
		}
	}

	return order, nil
}

func (s *Service) placeOrder(session, customerName string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts.Get(session)
	order, err := domain.NewOrder(cart.Snapshot(), customerName, s.now())
	if err != nil {
		return nil, err
	}

	placed := s.orders.Append(order)
	s.carts.Clear(session)

	return placed, nil
}

// UpdateStatus applies one state-machine transition. Rejected transitions
// and unknown orders leave the ledger untouched.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status domain.Status, changedBy string) (*domain.Order, error) {
	if _, err := domain.ParseStatus(string(status)); err != nil {
		return nil, err
	}

	s.mu.Lock()
	var change domain.StatusChange
	updated, err := s.orders.Update(orderID, func(o *domain.Order) error {
		from := o.Status
		now := s.now()
		if err := o.TransitionTo(status, now); err != nil {
			return fmt.Errorf("%w: %s -> %s", err, from, status)
		}
		change = domain.StatusChange{
			OrderID:   o.ID,
			Number:    o.Number,
			From:      from,
			To:        status,
			ChangedBy: changedBy,
			ChangedAt: now,
		}
		return nil
	})
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatusTransition) {
			s.logger.Error("invalid_transition", "Rejected status change", "", map[string]interface{}{
				"order_id": orderID,
				"status":   status,
			}, err)
		}
		return nil, err
	}

	s.logger.Info("status_changed", fmt.Sprintf("Order #%03d is now %s", change.Number, change.To), "", map[string]interface{}{
		"order_id":   change.OrderID,
		"old_status": change.From,
		"new_status": change.To,
		"changed_by": change.ChangedBy,
	})

	if err := s.publisher.PublishStatusUpdate(ctx, interfaces.NewStatusUpdateMessage(change)); err != nil {
		s.logger.Error("rabbitmq_publish_failed", "Failed to publish status update", "", nil, err)
	}
	if err := s.archive.LogStatus(ctx, change); err != nil {
		s.logger.Error("archive_failed", "Failed to archive status change", "", nil, err)
	}

	return updated, nil
}

func (s *Service) Order(id string) (*domain.Order, error) {
	return s.orders.FindByID(id)
}

func (s *Service) Orders() []*domain.Order {
	return s.orders.List()
}

// ActiveOrders is the kitchen queue: non-terminal orders, newest first.
func (s *Service) ActiveOrders() []*domain.Order {
	all := s.orders.List()

	active := make([]*domain.Order, 0, len(all))
	for _, o := range all {
		if !o.Status.IsTerminal() {
			active = append(active, o)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		a, b := active[i], active[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.Number > b.Number
	})
	return active
}
