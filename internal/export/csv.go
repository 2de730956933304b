// Package export renders inventory reports for download or archival.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
)

var reportHeader = []string{"SKU", "Name", "Stock", "ReorderPoint", "UnitCost", "TotalValue"}

// WriteReport writes one CSV row per item. TotalValue uses the same
// stock-times-cost derivation as the analytics engine, so the export can
// never disagree with the dashboard.
func WriteReport(w io.Writer, items []domain.InventoryItem) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(reportHeader); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}

	for _, item := range items {
		row := []string{
			item.SKU,
			item.Name,
			fmt.Sprintf("%d", item.CurrentStock),
			fmt.Sprintf("%d", item.ReorderPoint),
			item.UnitCost.String(),
			item.TotalValue().String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write report row for %s: %w", item.SKU, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReportFilename names a report after the day it was generated.
func ReportFilename(now time.Time) string {
	return fmt.Sprintf("Inventory_Report_%s.csv", now.Format("2006-01-02"))
}
