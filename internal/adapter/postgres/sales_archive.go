package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

const placedBy = "kiosk"

var ErrNotArchived = errors.New("order is not in the archive")

// salesArchive mirrors orders and shifts into PostgreSQL for reporting
// outside the kiosk. The kiosk never reads it back.
type salesArchive struct {
	db DB
}

func NewSalesArchive(db DB) interfaces.SalesArchive {
	return &salesArchive{db: db}
}

func (a *salesArchive) ArchiveOrder(ctx context.Context, order *domain.Order) error {
	tx, err := a.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (id, number, customer_name, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`
	tag, err := tx.Exec(ctx, query,
		order.ID, order.Number, order.CustomerName, order.Total, string(order.Status), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Уже в архиве
		return nil
	}

	itemQuery := `
		INSERT INTO order_items (order_id, cart_id, item_id, name, category, variant, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, line := range order.Items {
		_, err = tx.Exec(ctx, itemQuery,
			order.ID, line.CartID, line.Item.ID, line.Item.Name, string(line.Item.Category),
			line.VariantName(), line.Quantity, line.UnitPrice(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := insertStatusLog(ctx, tx, order.ID, order.Status, placedBy, order.CreatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (a *salesArchive) LogStatus(ctx context.Context, change domain.StatusChange) error {
	tx, err := a.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		string(change.To), change.ChangedAt, change.OrderID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotArchived, change.OrderID)
	}

	if err := insertStatusLog(ctx, tx, change.OrderID, change.To, change.ChangedBy, change.ChangedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (a *salesArchive) ArchiveShift(ctx context.Context, log *domain.StaffLog) error {
	hours, ok := log.Hours()
	if !ok {
		return fmt.Errorf("shift %s is still open", log.ID)
	}
	pay, _ := log.Pay()

	query := `
		INSERT INTO staff_shifts (id, staff_id, staff_name, shift_date, clock_in, clock_out, hourly_rate, hours, pay)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := a.db.Exec(ctx, query,
		log.ID, log.StaffID, log.StaffName, log.Date, log.ClockIn, *log.ClockOut, log.HourlyRate, hours, pay,
	)
	if err != nil {
		return fmt.Errorf("failed to archive shift: %w", err)
	}
	return nil
}

func insertStatusLog(ctx context.Context, tx Tx, orderID string, status domain.Status, changedBy string, at time.Time) error {
	query := `
		INSERT INTO order_status_log (order_id, status, changed_by, changed_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.Exec(ctx, query, orderID, string(status), changedBy, at); err != nil {
		return fmt.Errorf("failed to log status: %w", err)
	}
	return nil
}

// NopArchive is used when the database is disabled.
type NopArchive struct{}

func (NopArchive) ArchiveOrder(context.Context, *domain.Order) error { return nil }

func (NopArchive) LogStatus(context.Context, domain.StatusChange) error { return nil }

func (NopArchive) ArchiveShift(context.Context, *domain.StaffLog) error { return nil }
