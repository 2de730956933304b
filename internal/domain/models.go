package domain

import "github.com/shopspring/decimal"

// InventoryItem is a typed snapshot of a single product row as served by the
// backing store. Numeric fields are already coerced by the record package, so
// analytics code can assume they are present and non-negative.
type InventoryItem struct {
	ID           int64           `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	CurrentStock int             `json:"current_stock"`
	ReorderPoint int             `json:"reorder_point"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	LeadTimeDays int             `json:"lead_time_days"`
}

// Shortfall is the number of units needed to climb back to the reorder point.
// Zero when the item is not low.
func (i InventoryItem) Shortfall() int {
	if d := i.ReorderPoint - i.CurrentStock; d > 0 {
		return d
	}
	return 0
}

// RiskRatio is current stock over reorder point; lower means more urgent.
// An item with no threshold is defined as never-risky and pins at 1.
func (i InventoryItem) RiskRatio() float64 {
	if i.ReorderPoint <= 0 {
		return 1
	}
	return float64(i.CurrentStock) / float64(i.ReorderPoint)
}

// TotalValue is current stock times unit cost.
func (i InventoryItem) TotalValue() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(int64(i.CurrentStock)))
}

// IsLow reports whether stock sits at or below the reorder point. The
// boundary counts: stock equal to the threshold is low.
func (i InventoryItem) IsLow() bool {
	return i.CurrentStock <= i.ReorderPoint
}

// Supplier is a typed snapshot of a supplier row.
type Supplier struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	LeadTimeDays int    `json:"lead_time_days"`
}

// Snapshot is an immutable point-in-time copy of both collections. Analytics
// always re-derives from a snapshot; nothing here is cached between reads.
type Snapshot struct {
	Items     []InventoryItem
	Suppliers []Supplier
}

// ReorderOutcome describes a successful reorder. The backing store answers
// with either an estimated delivery date or a plain confirmation message;
// both fields empty still counts as a bare success.
type ReorderOutcome struct {
	ETA     string `json:"eta,omitempty"`
	Message string `json:"message,omitempty"`
}
