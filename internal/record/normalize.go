// Package record converts raw backing-store records into typed domain values.
//
// The backing store is not trusted to send clean rows: numeric fields may be
// missing, null, or arrive as strings. All of that is absorbed here so the
// rest of the engine never sees a NaN or a nil. Coercion is the whole job:
// parse-or-default to zero for numbers, empty string for text.
package record

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
)

// Raw is one undecoded record as it came off the wire.
type Raw map[string]any

// Item normalizes a raw inventory record. It never fails: garbage numeric
// fields become 0, missing strings become "". A record without an id keeps a
// zero ID, which downstream key-based operations must treat as an unreliable
// key.
func Item(raw Raw) domain.InventoryItem {
	return domain.InventoryItem{
		ID:           asInt64(raw["id"]),
		SKU:          asString(raw["sku"]),
		Name:         asString(raw["name"]),
		CurrentStock: clampNonNegative(asInt(raw["current_stock"])),
		ReorderPoint: clampNonNegative(asInt(raw["reorder_point"])),
		UnitCost:     asDecimal(raw["unit_cost"]),
		LeadTimeDays: clampNonNegative(asInt(raw["lead_time_days"])),
	}
}

// Items normalizes a whole collection, preserving input order.
func Items(raws []Raw) []domain.InventoryItem {
	items := make([]domain.InventoryItem, 0, len(raws))
	for _, raw := range raws {
		items = append(items, Item(raw))
	}
	return items
}

// Supplier normalizes a raw supplier record with the same never-fail contract.
func Supplier(raw Raw) domain.Supplier {
	return domain.Supplier{
		ID:           asInt64(raw["id"]),
		Name:         asString(raw["name"]),
		ContactEmail: asString(raw["contact_email"]),
		LeadTimeDays: clampNonNegative(asInt(raw["lead_time_days"])),
	}
}

// Suppliers normalizes a whole collection, preserving input order.
func Suppliers(raws []Raw) []domain.Supplier {
	suppliers := make([]domain.Supplier, 0, len(raws))
	for _, raw := range raws {
		suppliers = append(suppliers, Supplier(raw))
	}
	return suppliers
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asInt(v any) int {
	return int(asFloat(v))
}

func asInt64(v any) int64 {
	return int64(asFloat(v))
}

func asDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		f := asFloat(v)
		if f == 0 {
			return decimal.Zero
		}
		return decimal.NewFromFloat(f)
	}
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
