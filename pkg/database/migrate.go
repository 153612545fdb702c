package database

import (
	"context"
	"fmt"
)

// Migrate creates all tables and indexes if they do not exist yet.
//
// The partial unique index idx_appointments_slot_key is the actual
// correctness guarantee for exclusive bookings: slot_key is filled only
// for exclusive service types, and cancelled rows fall out of the index
// predicate so cancelling a booking frees its slot. The application-level
// availability pre-check is just a friendlier error path.
func Migrate(ctx context.Context, db PgxIface) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(50) UNIQUE NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			phone VARCHAR(20) NOT NULL,
			pet_name VARCHAR(100) NOT NULL,
			pet_type VARCHAR(20) NOT NULL,
			pet_breed VARCHAR(100),
			address TEXT NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'customer',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			token UUID UNIQUE NOT NULL,
			user_agent TEXT,
			ip_address TEXT,
			expires_at TIMESTAMPTZ NOT NULL,
			revoked_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS appointments (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			pet_name VARCHAR(100) NOT NULL,
			service_type VARCHAR(50) NOT NULL,
			appointment_date DATE NOT NULL,
			appointment_time VARCHAR(5) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Scheduled',
			notes TEXT,
			price NUMERIC(10,2) NOT NULL,
			slot_key TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			category VARCHAR(50) NOT NULL,
			pet_types TEXT[] NOT NULL DEFAULT '{All}',
			image TEXT NOT NULL,
			in_stock BOOLEAN NOT NULL DEFAULT TRUE,
			stock_quantity INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			total_amount NUMERIC(10,2) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Pending',
			shipping_address TEXT NOT NULL,
			payment_method VARCHAR(30) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id),
			product_id UUID NOT NULL REFERENCES products(id),
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			quantity INT NOT NULL CHECK (quantity >= 1),
			created_at TIMESTAMPTZ NOT NULL
		)`,

		// Exclusive-slot invariant; see doc comment above.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_slot_key
			ON appointments (slot_key)
			WHERE slot_key IS NOT NULL AND status <> 'Cancelled'`,

		`CREATE INDEX IF NOT EXISTS idx_appointments_user_id ON appointments(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_date_service ON appointments(appointment_date, service_type)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_token ON sessions(token)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}
