// Package budget computes line-item and aggregate totals for the budget
// generator. All math is pure and unrounded; display formatting happens
// at render time only.
package budget

import (
	"math"
	"strconv"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

// Summary aggregates a budget item list.
type Summary struct {
	Subtotal    float64
	Contingency float64
	GrandTotal  float64
}

// ItemTotal computes unitCost * quantity * duration. Inputs are coerced
// through Coerce first, so malformed or negative values contribute 0
// instead of propagating NaN.
func ItemTotal(unitCost, quantity, duration float64) float64 {
	return Coerce(unitCost) * Coerce(quantity) * Coerce(duration)
}

// Recalc refreshes the derived Total of a single item.
func Recalc(item *domain.BudgetItem) {
	item.Total = ItemTotal(item.UnitCost, item.Quantity, item.Duration)
}

// Aggregate computes subtotal, contingency and grand total over the item
// list. Item totals are trusted as-is; they are derived on every edit.
func Aggregate(items []domain.BudgetItem, contingencyPercent float64) Summary {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Total
	}
	contingency := subtotal * Coerce(contingencyPercent) / 100
	return Summary{
		Subtotal:    subtotal,
		Contingency: contingency,
		GrandTotal:  subtotal + contingency,
	}
}

// Coerce is the parse-failure policy for numeric budget input: negative,
// NaN and infinite values all become 0.
func Coerce(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParseAmount converts free-text numeric input to a usable value,
// applying the same coercion policy to unparseable text.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Coerce(v)
}
