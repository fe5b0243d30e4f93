package budget

import (
	"math"
	"testing"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestItemTotal(t *testing.T) {
	tests := []struct {
		name                         string
		unitCost, quantity, duration float64
		expected                     float64
	}{
		{"simple product", 1000, 2, 3, 6000},
		{"zero quantity", 500, 0, 12, 0},
		{"negative unit cost coerced to zero", -100, 2, 3, 0},
		{"nan coerced to zero", math.NaN(), 2, 3, 0},
		{"fractional values unrounded", 10.5, 2, 1, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ItemTotal(tt.unitCost, tt.quantity, tt.duration))
		})
	}
}

func TestRecalcIdempotent(t *testing.T) {
	item := domain.BudgetItem{UnitCost: 250, Quantity: 4, Duration: 2}

	Recalc(&item)
	assert.Equal(t, float64(2000), item.Total)

	// re-applying the same edit yields the same total
	Recalc(&item)
	assert.Equal(t, float64(2000), item.Total)
}

func TestAggregate(t *testing.T) {
	items := []domain.BudgetItem{
		{Category: "Personnel", UnitCost: 1000, Quantity: 2, Duration: 3, Total: 6000},
	}

	summary := Aggregate(items, 10)

	assert.Equal(t, float64(6000), summary.Subtotal)
	assert.Equal(t, float64(600), summary.Contingency)
	assert.Equal(t, float64(6600), summary.GrandTotal)
}

func TestAggregateGrandTotalLaw(t *testing.T) {
	items := []domain.BudgetItem{
		{Total: 1200}, {Total: 350.5}, {Total: 980},
	}

	summary := Aggregate(items, 7.5)

	assert.Equal(t, summary.Subtotal+summary.Subtotal*7.5/100, summary.GrandTotal)
	assert.Equal(t, float64(1200+350.5+980), summary.Subtotal)
}

func TestAggregateEmpty(t *testing.T) {
	summary := Aggregate(nil, 10)
	assert.Zero(t, summary.Subtotal)
	assert.Zero(t, summary.Contingency)
	assert.Zero(t, summary.GrandTotal)
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, float64(50000), ParseAmount("50000"))
	assert.Equal(t, float64(0), ParseAmount("fifty"))
	assert.Equal(t, float64(0), ParseAmount(""))
	assert.Equal(t, float64(0), ParseAmount("-20"))
}
