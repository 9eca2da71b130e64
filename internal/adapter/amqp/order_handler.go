package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/adapter/printer"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

var errMalformedOrder = errors.New("order message has no id or items")

// OrderHandler feeds the kitchen display: every placed order is rendered as
// a shop-copy ticket.
type OrderHandler struct {
	mu     sync.Mutex
	out    io.Writer
	layout printer.Layout
	logger logger.Logger
}

func NewOrderHandler(out io.Writer, layout printer.Layout, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		out:    out,
		layout: layout,
		logger: logger,
	}
}

func (h *OrderHandler) HandleOrder(ctx context.Context, body []byte) error {
	var msg interfaces.OrderMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		h.logger.Error("message_parse_failed", "Failed to parse order message", "", nil, err)
		return err
	}
	if msg.OrderID == "" || len(msg.Items) == 0 {
		h.logger.Error("message_invalid", "Order message rejected", msg.OrderID, nil, errMalformedOrder)
		return errMalformedOrder
	}

	ticket := printer.ShopCopy(h.layout, msg.Order())

	h.mu.Lock()
	_, err := fmt.Fprintf(h.out, "%s\n", ticket)
	h.mu.Unlock()
	if err != nil {
		return fmt.Errorf("write kitchen ticket: %w", err)
	}

	h.logger.Debug("kitchen_ticket_shown", fmt.Sprintf("Order %03d on kitchen display", msg.OrderNumber), msg.OrderID, map[string]interface{}{
		"order_number": msg.OrderNumber,
		"items":        len(msg.Items),
	})
	return nil
}
