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

// ProductFilter narrows product listings. Zero values mean no filter.
// PetType matches products tagged with the given pet type or with "All".
type ProductFilter struct {
	Category string
	PetType  string
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindAll(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	CountAll(ctx context.Context, filter ProductFilter) (int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productColumns = `id, name, description, price, category, pet_types, image, in_stock, stock_quantity, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var product entity.Product
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Category,
		&product.PetTypes,
		&product.Image,
		&product.InStock,
		&product.StockQuantity,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.PetTypes,
		product.Image,
		product.InStock,
		product.StockQuantity,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return product, nil
}

func (r *productRepository) FindAll(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR pet_types && ARRAY[$2, 'All'])
		ORDER BY name
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, filter.Category, filter.PetType, limit, offset)
	if err != nil {
		r.log.Error("Failed to find products",
			zap.Error(err),
			zap.String("category", filter.Category),
			zap.String("pet_type", filter.PetType),
		)
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (r *productRepository) CountAll(ctx context.Context, filter ProductFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM products
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR pet_types && ARRAY[$2, 'All'])
	`

	var count int64
	err := r.db.QueryRow(ctx, query, filter.Category, filter.PetType).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category = $5,
		    pet_types = $6, image = $7, in_stock = $8, stock_quantity = $9,
		    updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.PetTypes,
		product.Image,
		product.InStock,
		product.StockQuantity,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return fmt.Errorf("update product %s: %w", product.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}
