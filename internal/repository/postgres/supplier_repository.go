package postgres

import (
	"context"
	"fmt"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
	"github.com/ChromaDiv/supply-chain-app/internal/repository"
)

type supplierRepository struct {
	db *DB
}

func NewSupplierRepository(db *DB) repository.SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) ListSuppliers(ctx context.Context) ([]domain.SupplierRecord, error) {
	query := `
		SELECT id, name, contact_email, lead_time_days
		FROM suppliers
		ORDER BY id
	`

	suppliers := make([]domain.SupplierRecord, 0)
	if err := r.db.SelectContext(ctx, &suppliers, query); err != nil {
		return nil, fmt.Errorf("error listing suppliers: %w", err)
	}
	return suppliers, nil
}

func (r *supplierRepository) CreateSupplier(ctx context.Context, s domain.SupplierRecord) (domain.SupplierRecord, error) {
	query := `
		INSERT INTO suppliers (name, contact_email, lead_time_days)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query, s.Name, s.ContactEmail, s.LeadTimeDays).Scan(&s.ID)
	if err != nil {
		return domain.SupplierRecord{}, fmt.Errorf("error creating supplier %s: %w", s.Name, err)
	}
	return s, nil
}
