package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
)

func TestWriteReport(t *testing.T) {
	items := []domain.InventoryItem{
		{SKU: "A1", Name: "Widget", CurrentStock: 5, ReorderPoint: 10, UnitCost: decimal.RequireFromString("2")},
		{SKU: "B2", Name: "Gadget", CurrentStock: 20, ReorderPoint: 8, UnitCost: decimal.RequireFromString("5.50")},
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, items); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	want := "SKU,Name,Stock,ReorderPoint,UnitCost,TotalValue\n" +
		"A1,Widget,5,10,2,10\n" +
		"B2,Gadget,20,8,5.5,110\n"
	if got := buf.String(); got != want {
		t.Errorf("report =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, nil); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if got := buf.String(); got != "SKU,Name,Stock,ReorderPoint,UnitCost,TotalValue\n" {
		t.Errorf("empty report = %q, want header only", got)
	}
}

func TestReportFilename(t *testing.T) {
	now := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	if got := ReportFilename(now); got != "Inventory_Report_2024-01-10.csv" {
		t.Errorf("filename = %q", got)
	}
}
