package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the authoritative product row as stored by the backing service.
// It carries fulfillment fields (next delivery, supplier link) that the
// analytics snapshot does not need.
type Product struct {
	ID           int64           `json:"id" db:"id"`
	SKU          string          `json:"sku" db:"sku"`
	Name         string          `json:"name" db:"name"`
	CurrentStock int             `json:"current_stock" db:"current_stock"`
	ReorderPoint int             `json:"reorder_point" db:"reorder_point"`
	UnitCost     decimal.Decimal `json:"unit_cost" db:"unit_cost"`
	LeadTimeDays int             `json:"lead_time_days" db:"lead_time_days"`
	NextDelivery *time.Time      `json:"next_delivery,omitempty" db:"next_delivery"`
	SupplierID   *int64          `json:"supplier_id,omitempty" db:"supplier_id"`
}

// Item projects the stored row into the analytics model.
func (p Product) Item() InventoryItem {
	return InventoryItem{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		CurrentStock: p.CurrentStock,
		ReorderPoint: p.ReorderPoint,
		UnitCost:     p.UnitCost,
		LeadTimeDays: p.LeadTimeDays,
	}
}

// SupplierRecord is the authoritative supplier row.
type SupplierRecord struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	ContactEmail string `json:"contact_email" db:"contact_email"`
	LeadTimeDays int    `json:"lead_time_days" db:"lead_time_days"`
}

// Supplier projects the stored row into the analytics model.
func (s SupplierRecord) Supplier() Supplier {
	return Supplier{
		ID:           s.ID,
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		LeadTimeDays: s.LeadTimeDays,
	}
}
