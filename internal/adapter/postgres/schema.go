package postgres

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS orders (
	id            TEXT PRIMARY KEY,
	number        INTEGER NOT NULL,
	customer_name TEXT NOT NULL DEFAULT '',
	total_amount  NUMERIC(12,2) NOT NULL,
	status        TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS order_items (
	id         BIGSERIAL PRIMARY KEY,
	order_id   TEXT NOT NULL REFERENCES orders(id),
	cart_id    TEXT NOT NULL,
	item_id    TEXT NOT NULL,
	name       TEXT NOT NULL,
	category   TEXT NOT NULL,
	variant    TEXT NOT NULL DEFAULT '',
	quantity   INTEGER NOT NULL CHECK (quantity >= 1),
	unit_price NUMERIC(12,2) NOT NULL
);

CREATE TABLE IF NOT EXISTS order_status_log (
	id         BIGSERIAL PRIMARY KEY,
	order_id   TEXT NOT NULL REFERENCES orders(id),
	status     TEXT NOT NULL,
	changed_by TEXT NOT NULL,
	changed_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS staff_shifts (
	id          TEXT PRIMARY KEY,
	staff_id    TEXT NOT NULL,
	staff_name  TEXT NOT NULL,
	shift_date  DATE NOT NULL,
	clock_in    TIMESTAMPTZ NOT NULL,
	clock_out   TIMESTAMPTZ NOT NULL,
	hourly_rate NUMERIC(10,2) NOT NULL,
	hours       NUMERIC(10,4) NOT NULL,
	pay         NUMERIC(12,2) NOT NULL
);
`

// EnsureSchema creates the archive tables if they do not exist.
func EnsureSchema(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create archive schema: %w", err)
	}
	return nil
}
