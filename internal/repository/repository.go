package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("record not found")

// ProductRepository is the persistence surface for product rows.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	// ApplyReorder adds quantity to the product's stock and stamps the
	// projected delivery date, atomically.
	ApplyReorder(ctx context.Context, id int64, quantity int, nextDelivery time.Time) (domain.Product, error)
}

// SupplierRepository is the persistence surface for supplier rows.
type SupplierRepository interface {
	ListSuppliers(ctx context.Context) ([]domain.SupplierRecord, error)
	CreateSupplier(ctx context.Context, s domain.SupplierRecord) (domain.SupplierRecord, error)
}
