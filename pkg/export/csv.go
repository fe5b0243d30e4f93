package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
	"github.com/ngo-tools/grant-forge/pkg/services/budget"
)

var budgetCSVHeader = []string{
	"No.", "Category", "Item", "Unit Cost", "Quantity", "Duration", "Total", "Notes",
}

// WriteBudgetCSV streams the budget line items as CSV: an unquoted
// header row, then one quoted row per item in list order, then the
// Subtotal, Contingency and GRAND TOTAL summary rows. Numbers are raw,
// without display formatting.
func WriteBudgetCSV(f *domain.BudgetForm, w io.Writer) error {
	lines := []string{strings.Join(budgetCSVHeader, ",")}

	for i, item := range f.Items {
		lines = append(lines, quotedRow([]string{
			strconv.Itoa(i + 1),
			item.Category,
			item.Item,
			formatRaw(item.UnitCost),
			formatRaw(item.Quantity),
			formatRaw(item.Duration),
			formatRaw(item.Total),
			item.Notes,
		}))
	}

	totals := budget.Aggregate(f.Items, f.ContingencyPercent)
	lines = append(lines,
		quotedRow([]string{"", "", "", "", "", "", "Subtotal:", formatRaw(totals.Subtotal)}),
		quotedRow([]string{"", "", "", "", "", "", fmt.Sprintf("Contingency (%s%%):", formatRaw(f.ContingencyPercent)), formatRaw(totals.Contingency)}),
		quotedRow([]string{"", "", "", "", "", "", "GRAND TOTAL:", formatRaw(totals.GrandTotal)}),
	)

	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write budget csv: %w", err)
	}
	return nil
}

// quotedRow wraps every cell in double quotes, doubling any embedded
// quote so cells with commas or quotes survive the round trip.
func quotedRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func formatRaw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
