package view

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
)

func testItems() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: 1, SKU: "COT-BLU-001", Name: "Blue Cotton Roll", CurrentStock: 100, ReorderPoint: 40, UnitCost: decimal.New(125, -1)},
		{ID: 2, SKU: "SILK-RED-002", Name: "Red Silk Sheet", CurrentStock: 15, ReorderPoint: 20, UnitCost: decimal.New(25, 0)},
		{ID: 3, SKU: "WOOL-GRN-003", Name: "Green Wool Yarn", CurrentStock: 8, ReorderPoint: 8, UnitCost: decimal.New(4, 0)},
	}
}

func TestFilter(t *testing.T) {
	items := testItems()

	tests := []struct {
		name     string
		term     string
		lowOnly  bool
		wantSKUs []string
	}{
		{"no filters is identity", "", false, []string{"COT-BLU-001", "SILK-RED-002", "WOOL-GRN-003"}},
		{"low only", "", true, []string{"SILK-RED-002", "WOOL-GRN-003"}},
		{"name substring case-insensitive", "silk", false, []string{"SILK-RED-002"}},
		{"sku substring", "grn", false, []string{"WOOL-GRN-003"}},
		{"term plus low toggle", "o", true, []string{"WOOL-GRN-003"}},
		{"no match", "titanium", false, nil},
		{"whitespace term is literal", "  ", false, nil},
		{"single space matches names with spaces", " ", false, []string{"COT-BLU-001", "SILK-RED-002", "WOOL-GRN-003"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(items, tt.term, tt.lowOnly)
			if len(got) != len(tt.wantSKUs) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.wantSKUs), got)
			}
			for i, sku := range tt.wantSKUs {
				if got[i].SKU != sku {
					t.Errorf("result[%d] = %s, want %s", i, got[i].SKU, sku)
				}
			}
		})
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	items := testItems()
	_ = Filter(items, "silk", true)

	if items[0].SKU != "COT-BLU-001" || items[1].SKU != "SILK-RED-002" || items[2].SKU != "WOOL-GRN-003" {
		t.Error("Filter reordered or mutated the source slice")
	}
}

func TestFilterEmptyInput(t *testing.T) {
	if got := Filter(nil, "anything", true); len(got) != 0 {
		t.Errorf("Filter(nil) = %v, want empty", got)
	}
}
