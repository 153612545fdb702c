package repository

import (
	"context"
	"fmt"

	"pet-grooming/internal/data/entity"
	"pet-grooming/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	// Create persists the order and its items and decrements product
	// stock, all in one transaction: a failure anywhere rolls back the
	// stock too. A decrement that cannot be satisfied comes back as
	// ErrInsufficientStock.
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id, userID uuid.UUID, status entity.OrderStatus) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `id, user_id, total_amount, status, shipping_address, payment_method, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var order entity.Order
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.TotalAmount,
		&order.Status,
		&order.ShippingAddress,
		&order.PaymentMethod,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = tx.Exec(ctx, orderQuery,
		order.ID,
		order.UserID,
		order.TotalAmount,
		order.Status,
		order.ShippingAddress,
		order.PaymentMethod,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, name, price, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	// The WHERE guard keeps stock from going negative under concurrent
	// orders; zero rows means another order got there first.
	stockQuery := `
		UPDATE products
		SET stock_quantity = stock_quantity - $2,
		    in_stock = (stock_quantity - $2) > 0,
		    updated_at = NOW()
		WHERE id = $1 AND stock_quantity >= $2
	`

	for _, item := range order.Items {
		_, err = tx.Exec(ctx, itemQuery,
			item.ID,
			item.OrderID,
			item.ProductID,
			item.Name,
			item.Price,
			item.Quantity,
			item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create order item",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
				zap.String("product_id", item.ProductID.String()),
			)
			return fmt.Errorf("create order item: %w", err)
		}

		result, err := tx.Exec(ctx, stockQuery, item.ProductID, item.Quantity)
		if err != nil {
			r.log.Error("Failed to decrement stock",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
				zap.String("product_id", item.ProductID.String()),
			)
			return fmt.Errorf("decrement stock for product %s: %w", item.ProductID.String(), err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("product %s: %w", item.ProductID.String(), ErrInsufficientStock)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit order transaction: %w", err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	items, err := r.findItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find orders by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find orders by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range orders {
		items, err := r.findItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id, userID uuid.UUID, status entity.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(ctx, query, id, userID, status)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *orderRepository) findItems(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, name, price, quantity, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find order items",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find order items for %s: %w", orderID.String(), err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
