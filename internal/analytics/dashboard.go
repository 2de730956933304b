package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
)

// Dashboard bundles every derived view the analytics page needs for one
// snapshot. It is built in a single pass over the snapshot and carries no
// state of its own.
type Dashboard struct {
	TotalValue       decimal.Decimal        `json:"total_value"`
	SKUCount         int                    `json:"sku_count"`
	LowStockCount    int                    `json:"low_stock_count"`
	MostCritical     *domain.InventoryItem  `json:"most_critical,omitempty"`
	RiskRanking      []domain.InventoryItem `json:"risk_ranking"`
	TopValueItems    []domain.InventoryItem `json:"top_value_items"`
	StockLevels      []StockLevelPoint      `json:"stock_levels"`
	SupplierLeadTime []LeadTimePoint        `json:"supplier_lead_time"`
}

// BuildDashboard computes the full dashboard from a snapshot. Empty
// collections produce empty (not nil) slices so the JSON encoding stays
// stable for clients.
func BuildDashboard(snap domain.Snapshot) Dashboard {
	dash := Dashboard{
		TotalValue:       TotalInventoryValue(snap.Items),
		SKUCount:         len(snap.Items),
		LowStockCount:    LowStockCount(snap.Items),
		RiskRanking:      RankByRisk(snap.Items),
		TopValueItems:    TopValueItems(snap.Items, DefaultTopValueCount),
		StockLevels:      StockLevelSeries(snap.Items),
		SupplierLeadTime: LeadTimeSeries(snap.Suppliers),
	}
	if critical, ok := MostCriticalItem(snap.Items); ok {
		dash.MostCritical = &critical
	}
	return dash
}
