package interfaces

import (
	"context"
	"time"

	"github.com/YelzhanWeb/kiosk/internal/domain"
)

// Сообщения RabbitMQ
type OrderMessage struct {
	OrderID      string            `json:"order_id"`
	OrderNumber  int               `json:"order_number"`
	CustomerName string            `json:"customer_name,omitempty"`
	Items        []domain.CartLine `json:"items"`
	Total        float64           `json:"total"`
	Status       domain.Status     `json:"status"`
	PlacedAt     time.Time         `json:"placed_at"`
}

// NewOrderMessage builds the wire form of a placed order
func NewOrderMessage(o *domain.Order) OrderMessage {
	return OrderMessage{
		OrderID:      o.ID,
		OrderNumber:  o.Number,
		CustomerName: o.CustomerName,
		Items:        o.Items,
		Total:        o.Total,
		Status:       o.Status,
		PlacedAt:     o.CreatedAt,
	}
}

// Order rebuilds the domain order carried by the message
func (m OrderMessage) Order() *domain.Order {
	return &domain.Order{
		ID:           m.OrderID,
		Number:       m.OrderNumber,
		Items:        m.Items,
		Total:        m.Total,
		Status:       m.Status,
		CustomerName: m.CustomerName,
		CreatedAt:    m.PlacedAt,
		UpdatedAt:    m.PlacedAt,
	}
}

type StatusUpdateMessage struct {
	OrderID     string        `json:"order_id"`
	OrderNumber int           `json:"order_number"`
	OldStatus   domain.Status `json:"old_status"`
	NewStatus   domain.Status `json:"new_status"`
	ChangedBy   string        `json:"changed_by"`
	Timestamp   time.Time     `json:"timestamp"`
}

func NewStatusUpdateMessage(c domain.StatusChange) StatusUpdateMessage {
	return StatusUpdateMessage{
		OrderID:     c.OrderID,
		OrderNumber: c.Number,
		OldStatus:   c.From,
		NewStatus:   c.To,
		ChangedBy:   c.ChangedBy,
		Timestamp:   c.ChangedAt,
	}
}

// Интерфейсы Messaging (Adapter/RabbitMQ)
type MessagePublisher interface {
	PublishOrder(ctx context.Context, msg OrderMessage) error
	PublishStatusUpdate(ctx context.Context, msg StatusUpdateMessage) error
}

type MessageConsumer interface {
	ConsumeOrders(ctx context.Context, handler OrderMessageHandler) error
	ConsumeNotifications(ctx context.Context, handler NotificationHandler) error
}

type (
	OrderMessageHandler func(ctx context.Context, body []byte) error
	NotificationHandler func(ctx context.Context, body []byte) error
)
