// Package analytics derives operational views from an inventory snapshot.
//
// Every function here is pure: it takes an immutable slice of items (or
// suppliers), returns a fresh value, and touches nothing. Derived metrics are
// recomputed on every call instead of being cached on the records, so a view
// can never go stale against the snapshot it was computed from.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
)

// DefaultTopValueCount is how many rows the high-value ranking keeps.
const DefaultTopValueCount = 5

// MostCriticalItem returns the low-stock item with the largest shortfall.
// Ties break on the lowest id so the selection stays deterministic. The
// second return is false when no item is low (or the snapshot is empty).
func MostCriticalItem(items []domain.InventoryItem) (domain.InventoryItem, bool) {
	var (
		critical domain.InventoryItem
		found    bool
	)
	for _, item := range items {
		if !item.IsLow() {
			continue
		}
		if !found {
			critical, found = item, true
			continue
		}
		switch s := item.Shortfall(); {
		case s > critical.Shortfall():
			critical = item
		case s == critical.Shortfall() && item.ID < critical.ID:
			critical = item
		}
	}
	return critical, found
}

// RankByRisk orders items ascending by risk ratio, most urgent first. Items
// with no reorder point carry ratio 1 and sort by that value like any other.
// The input slice is left untouched; ties keep their input order.
func RankByRisk(items []domain.InventoryItem) []domain.InventoryItem {
	ranked := make([]domain.InventoryItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].RiskRatio() < ranked[b].RiskRatio()
	})
	return ranked
}

// HighestRiskItem returns the most urgent item by risk ratio, or false for an
// empty snapshot.
func HighestRiskItem(items []domain.InventoryItem) (domain.InventoryItem, bool) {
	if len(items) == 0 {
		return domain.InventoryItem{}, false
	}
	top := items[0]
	for _, item := range items[1:] {
		if item.RiskRatio() < top.RiskRatio() {
			top = item
		}
	}
	return top, true
}

// TopValueItems returns up to n items ordered descending by total value.
// The sort is stable, so equal values keep their input order.
func TopValueItems(items []domain.InventoryItem, n int) []domain.InventoryItem {
	if n <= 0 {
		n = DefaultTopValueCount
	}
	ranked := make([]domain.InventoryItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].TotalValue().GreaterThan(ranked[b].TotalValue())
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TotalInventoryValue sums total value over all items. Empty input is zero.
func TotalInventoryValue(items []domain.InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalValue())
	}
	return total
}

// LowStockCount counts items at or below their reorder point.
func LowStockCount(items []domain.InventoryItem) int {
	count := 0
	for _, item := range items {
		if item.IsLow() {
			count++
		}
	}
	return count
}

// LeadTimePoint is one supplier bar on the lead-time chart.
type LeadTimePoint struct {
	Name         string `json:"name"`
	LeadTimeDays int    `json:"lead_time_days"`
}

// LeadTimeSeries projects suppliers into chart points, preserving input
// order. Empty input yields an empty series; the presentation layer renders
// its own placeholder.
func LeadTimeSeries(suppliers []domain.Supplier) []LeadTimePoint {
	series := make([]LeadTimePoint, 0, len(suppliers))
	for _, s := range suppliers {
		series = append(series, LeadTimePoint{Name: s.Name, LeadTimeDays: s.LeadTimeDays})
	}
	return series
}

// StockLevelPoint is one product bar on the stock-versus-threshold chart.
type StockLevelPoint struct {
	Name         string `json:"name"`
	CurrentStock int    `json:"current_stock"`
	ReorderPoint int    `json:"reorder_point"`
}

// StockLevelSeries projects items into chart points, preserving input order.
func StockLevelSeries(items []domain.InventoryItem) []StockLevelPoint {
	series := make([]StockLevelPoint, 0, len(items))
	for _, item := range items {
		series = append(series, StockLevelPoint{
			Name:         item.Name,
			CurrentStock: item.CurrentStock,
			ReorderPoint: item.ReorderPoint,
		})
	}
	return series
}
