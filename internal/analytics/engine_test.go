package analytics

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
)

func item(id int64, sku, name string, stock, reorderPoint int, unitCost string) domain.InventoryItem {
	return domain.InventoryItem{
		ID: id, SKU: sku, Name: name,
		CurrentStock: stock, ReorderPoint: reorderPoint,
		UnitCost: decimal.RequireFromString(unitCost),
	}
}

// The worked scenario from the dashboard: one low item, one healthy.
func scenarioItems() []domain.InventoryItem {
	return []domain.InventoryItem{
		item(1, "A1", "Widget", 5, 10, "2.00"),
		item(2, "B2", "Gadget", 20, 8, "5.00"),
	}
}

func TestScenario(t *testing.T) {
	items := scenarioItems()

	if got := LowStockCount(items); got != 1 {
		t.Errorf("LowStockCount = %d, want 1", got)
	}

	if got := TotalInventoryValue(items); !got.Equal(decimal.RequireFromString("110")) {
		t.Errorf("TotalInventoryValue = %s, want 110", got)
	}

	critical, ok := MostCriticalItem(items)
	if !ok || critical.SKU != "A1" {
		t.Errorf("MostCriticalItem = %+v ok=%v, want A1", critical, ok)
	}

	ranked := RankByRisk(items)
	if ranked[0].SKU != "A1" || ranked[1].SKU != "B2" {
		t.Errorf("RankByRisk order = [%s %s], want [A1 B2]", ranked[0].SKU, ranked[1].SKU)
	}
}

func TestEmptyInput(t *testing.T) {
	var items []domain.InventoryItem

	if _, ok := MostCriticalItem(items); ok {
		t.Error("MostCriticalItem on empty input reported a result")
	}
	if _, ok := HighestRiskItem(items); ok {
		t.Error("HighestRiskItem on empty input reported a result")
	}
	if got := RankByRisk(items); len(got) != 0 {
		t.Errorf("RankByRisk on empty input = %v", got)
	}
	if got := TopValueItems(items, 5); len(got) != 0 {
		t.Errorf("TopValueItems on empty input = %v", got)
	}
	if got := TotalInventoryValue(items); !got.IsZero() {
		t.Errorf("TotalInventoryValue on empty input = %s, want 0", got)
	}
	if got := LowStockCount(items); got != 0 {
		t.Errorf("LowStockCount on empty input = %d, want 0", got)
	}
	if got := LeadTimeSeries(nil); len(got) != 0 {
		t.Errorf("LeadTimeSeries on empty input = %v", got)
	}
}

func TestIsLowBoundary(t *testing.T) {
	// Stock exactly at the threshold counts as low.
	boundary := item(1, "X", "Exact", 10, 10, "1.00")
	if !boundary.IsLow() {
		t.Error("stock == reorder point must be low")
	}
	if got := LowStockCount([]domain.InventoryItem{boundary}); got != 1 {
		t.Errorf("LowStockCount = %d, want 1", got)
	}
}

func TestMostCriticalTieBreaksOnLowestID(t *testing.T) {
	items := []domain.InventoryItem{
		item(9, "B", "Second", 0, 5, "1.00"),
		item(3, "A", "First", 0, 5, "1.00"),
	}
	critical, ok := MostCriticalItem(items)
	if !ok || critical.ID != 3 {
		t.Errorf("MostCriticalItem = %+v, want id 3", critical)
	}
}

func TestRankByRiskZeroThresholdNeverRisky(t *testing.T) {
	items := []domain.InventoryItem{
		item(1, "NONE", "No threshold", 0, 0, "1.00"),
		item(2, "HALF", "Half stocked", 5, 10, "1.00"),
		item(3, "FULL", "Over stocked", 30, 10, "1.00"),
	}

	ranked := RankByRisk(items)
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].RiskRatio() > ranked[i].RiskRatio() {
			t.Fatalf("RankByRisk not non-decreasing at %d", i)
		}
	}
	// Ratio 1 for the no-threshold item places it after anything below 1.
	if ranked[0].SKU != "HALF" {
		t.Errorf("most urgent = %s, want HALF", ranked[0].SKU)
	}
	if ranked[1].SKU != "NONE" {
		t.Errorf("second = %s, want NONE (pinned at ratio 1)", ranked[1].SKU)
	}

	// Input order untouched.
	if items[0].SKU != "NONE" || items[1].SKU != "HALF" {
		t.Error("RankByRisk mutated its input")
	}
}

func TestTopValueItems(t *testing.T) {
	items := []domain.InventoryItem{
		item(1, "LOW1", "Cheap A", 1, 0, "1.00"),
		item(2, "BIG", "Expensive", 10, 0, "100.00"),
		item(3, "LOW2", "Cheap B", 1, 0, "1.00"),
		item(4, "MID", "Middling", 10, 0, "5.00"),
	}

	top := TopValueItems(items, 3)
	if len(top) != 3 {
		t.Fatalf("len = %d, want 3", len(top))
	}
	if top[0].SKU != "BIG" || top[1].SKU != "MID" {
		t.Errorf("order = [%s %s], want [BIG MID]", top[0].SKU, top[1].SKU)
	}
	// Stable: the tied cheap items keep input order.
	if top[2].SKU != "LOW1" {
		t.Errorf("tied item = %s, want LOW1 (stable sort)", top[2].SKU)
	}

	if got := TopValueItems(items, 10); len(got) != len(items) {
		t.Errorf("n beyond length: len = %d, want %d", len(got), len(items))
	}
	if got := TopValueItems(items, 0); len(got) != 4 {
		// Non-positive n falls back to the default of 5.
		t.Errorf("default n: len = %d, want 4", len(got))
	}
}

func TestLeadTimeSeries(t *testing.T) {
	suppliers := []domain.Supplier{
		{ID: 1, Name: "Slow Partner", LeadTimeDays: 21},
		{ID: 2, Name: "Fast Partner", LeadTimeDays: 3},
	}

	series := LeadTimeSeries(suppliers)
	if len(series) != 2 {
		t.Fatalf("len = %d, want 2", len(series))
	}
	if series[0].Name != "Slow Partner" || series[0].LeadTimeDays != 21 {
		t.Errorf("series[0] = %+v", series[0])
	}
	if series[1].Name != "Fast Partner" {
		t.Error("LeadTimeSeries reordered input")
	}
}

func TestBuildDashboard(t *testing.T) {
	snap := domain.Snapshot{
		Items: scenarioItems(),
		Suppliers: []domain.Supplier{
			{ID: 1, Name: "Global Fabrics Inc", LeadTimeDays: 14},
		},
	}

	dash := BuildDashboard(snap)
	if dash.SKUCount != 2 || dash.LowStockCount != 1 {
		t.Errorf("counts = %d/%d, want 2/1", dash.SKUCount, dash.LowStockCount)
	}
	if !dash.TotalValue.Equal(decimal.RequireFromString("110")) {
		t.Errorf("TotalValue = %s, want 110", dash.TotalValue)
	}
	if dash.MostCritical == nil || dash.MostCritical.SKU != "A1" {
		t.Errorf("MostCritical = %+v, want A1", dash.MostCritical)
	}
	if len(dash.StockLevels) != 2 || len(dash.SupplierLeadTime) != 1 {
		t.Errorf("series lengths = %d/%d", len(dash.StockLevels), len(dash.SupplierLeadTime))
	}

	empty := BuildDashboard(domain.Snapshot{})
	if empty.MostCritical != nil {
		t.Error("empty snapshot produced a most-critical item")
	}
	if empty.RiskRanking == nil || empty.TopValueItems == nil {
		t.Error("empty snapshot produced nil slices")
	}
}
