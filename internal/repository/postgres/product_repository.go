package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
	"github.com/ChromaDiv/supply-chain-app/internal/repository"
)

type productRepository struct {
	db *DB
}

func NewProductRepository(db *DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, sku, name, current_stock, reorder_point, unit_cost,
		       lead_time_days, next_delivery, supplier_id
		FROM products
		ORDER BY id
	`

	products := make([]domain.Product, 0)
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	query := `
		SELECT id, sku, name, current_stock, reorder_point, unit_cost,
		       lead_time_days, next_delivery, supplier_id
		FROM products
		WHERE id = $1
	`

	var p domain.Product
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, repository.ErrNotFound
		}
		return domain.Product{}, fmt.Errorf("error getting product %d: %w", id, err)
	}
	return p, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	query := `
		INSERT INTO products (sku, name, current_stock, reorder_point, unit_cost,
		                      lead_time_days, next_delivery, supplier_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		p.SKU, p.Name, p.CurrentStock, p.ReorderPoint, p.UnitCost,
		p.LeadTimeDays, p.NextDelivery, p.SupplierID,
	).Scan(&p.ID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("error creating product %s: %w", p.SKU, err)
	}
	return p, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	// Idempotent: deleting an already-gone row is not an error.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting product %d: %w", id, err)
	}
	return nil
}

func (r *productRepository) ApplyReorder(ctx context.Context, id int64, quantity int, nextDelivery time.Time) (domain.Product, error) {
	var updated domain.Product

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE products
			SET current_stock = current_stock + $2,
			    next_delivery = $3
			WHERE id = $1
			RETURNING id, sku, name, current_stock, reorder_point, unit_cost,
			          lead_time_days, next_delivery, supplier_id
		`
		if err := tx.GetContext(ctx, &updated, query, id, quantity, nextDelivery); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return repository.ErrNotFound
			}
			return fmt.Errorf("error applying reorder to product %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return domain.Product{}, err
	}
	return updated, nil
}
