// Package view projects an inventory snapshot into what a table screen shows.
package view

import (
	"strings"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
)

// Filter returns the items whose name or SKU contains term
// (case-insensitive), optionally restricted to low-stock rows. An empty term
// matches everything; whitespace is matched literally, not stripped. Input
// order is preserved and the source slice is never mutated or reordered.
func Filter(items []domain.InventoryItem, term string, lowStockOnly bool) []domain.InventoryItem {
	needle := strings.ToLower(term)

	out := make([]domain.InventoryItem, 0, len(items))
	for _, item := range items {
		if lowStockOnly && !item.IsLow() {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(item.Name), needle) &&
			!strings.Contains(strings.ToLower(item.SKU), needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}
