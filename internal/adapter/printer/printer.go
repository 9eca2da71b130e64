package printer

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/domain"
)

// Printer writes rendered receipts to a line printer device or any writer.
type Printer struct {
	mu     sync.Mutex
	out    io.Writer
	layout Layout
	logger logger.Logger
}

func New(out io.Writer, layout Layout, logger logger.Logger) *Printer {
	return &Printer{out: out, layout: layout, logger: logger}
}

func (p *Printer) Print(ctx context.Context, order *domain.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	receipt := Render(p.layout, order)

	p.mu.Lock()
	_, err := io.WriteString(p.out, receipt+"\n")
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("print receipt for order %d: %w", order.Number, err)
	}

	p.logger.Debug("receipt_printed", "Receipt sent to printer", "", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.Number,
	})
	return nil
}
