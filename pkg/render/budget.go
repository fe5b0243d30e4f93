package render

import (
	"fmt"
	"strconv"

	"github.com/ngo-tools/grant-forge/pkg/export"
	"github.com/ngo-tools/grant-forge/pkg/models/domain"
	"github.com/ngo-tools/grant-forge/pkg/services/budget"
)

// BudgetTableHeader is the column layout shared by the document table
// and the CSV export.
var BudgetTableHeader = []string{
	"No.", "Category", "Item", "Unit Cost", "Quantity", "Duration", "Total", "Notes",
}

// Budget assembles a project budget document: the line-item table with
// its summary rows, then the generated insight sections.
func Budget(f *domain.BudgetForm, c *domain.BudgetContent) *domain.Document {
	doc := &domain.Document{
		Title:    "PROJECT BUDGET",
		Subtitle: f.ProjectName,
		Meta: []string{
			fmt.Sprintf("Organization: %s", f.Organization),
			fmt.Sprintf("Project Period: %s", f.ProjectPeriod),
			fmt.Sprintf("Project Type: %s", orDefault(f.ProjectType, "Not specified")),
			fmt.Sprintf("Currency: %s", f.Currency),
		},
		Filename: export.SanitizeName(orDefault(f.ProjectName, "Project")) + "_Budget.docx",
	}

	doc.Sections = append(doc.Sections, domain.Section{
		Heading: "BUDGET DETAILS",
		Table:   BudgetTable(f),
	})

	if c != nil {
		for _, category := range categoryOrder(f.Items) {
			justification, ok := c.CategoryJustifications[category]
			if !ok {
				continue
			}
			if len(doc.Sections) == 1 {
				doc.Sections = append(doc.Sections, domain.Section{Heading: "BUDGET JUSTIFICATION"})
			}
			doc.Sections = append(doc.Sections, domain.Section{
				Heading:    category,
				Paragraphs: paragraphs(justification),
				Sub:        true,
			})
		}

		insights := []domain.Section{
			{Heading: "VALUE FOR MONEY ANALYSIS", Paragraphs: paragraphs(c.ValueForMoney)},
			{Heading: "SECTOR BENCHMARKS", Paragraphs: paragraphs(c.SectorBenchmarks)},
			{Heading: "COST EFFICIENCY ANALYSIS", Paragraphs: paragraphs(c.CostEfficiency)},
			{Heading: "RISK MITIGATION", Paragraphs: paragraphs(c.RiskMitigation)},
		}
		for _, s := range insights {
			if !s.Empty() {
				doc.Sections = append(doc.Sections, s)
			}
		}
	}

	if f.BudgetNarrative != "" {
		doc.Sections = append(doc.Sections, domain.Section{
			Heading:    "ADDITIONAL BUDGET NARRATIVE",
			Paragraphs: paragraphs(f.BudgetNarrative),
		})
	}

	return doc
}

// BudgetTable builds the line-item table with Subtotal, Contingency and
// GRAND TOTAL summary rows. Nothing renders after the grand total.
func BudgetTable(f *domain.BudgetForm) *domain.Table {
	rows := make([][]string, len(f.Items))
	for i, item := range f.Items {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			item.Category,
			item.Item,
			budget.FormatAmount(item.UnitCost),
			strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			strconv.FormatFloat(item.Duration, 'f', -1, 64),
			budget.FormatAmount(item.Total),
			item.Notes,
		}
	}

	totals := budget.Aggregate(f.Items, f.ContingencyPercent)
	summary := [][]string{
		{"", "", "", "", "", "", "Subtotal:", budget.FormatAmount(totals.Subtotal)},
		{"", "", "", "", "", "", fmt.Sprintf("Contingency (%s%%):", strconv.FormatFloat(f.ContingencyPercent, 'f', -1, 64)), budget.FormatAmount(totals.Contingency)},
		{"", "", "", "", "", "", "GRAND TOTAL:", budget.FormatAmount(totals.GrandTotal)},
	}

	return &domain.Table{Header: BudgetTableHeader, Rows: rows, Summary: summary}
}

func categoryOrder(items []domain.BudgetItem) []string {
	var order []string
	seen := make(map[string]bool)
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			order = append(order, item.Category)
		}
	}
	return order
}
