package domain

// BudgetItem is one repeatable budget line. Total is derived
// (unitCost * quantity * duration) and recomputed on every edit,
// never set independently.
type BudgetItem struct {
	ID       string
	Category string
	Item     string
	UnitCost float64
	Quantity float64
	Duration float64
	Total    float64
	Notes    string
}

// BudgetCategories is the fixed set offered by the line-item form.
// Unrecognized categories fall back to a generic justification template.
var BudgetCategories = []string{
	"Personnel",
	"Equipment",
	"Supplies",
	"Training",
	"Travel",
	"Communications",
	"Overhead",
	"Other",
}

// ProjectTypes is the fixed set used for sector benchmark selection.
var ProjectTypes = []string{
	"Education",
	"Healthcare",
	"Agriculture",
	"Water & Sanitation",
	"Economic Development",
	"Emergency Response",
	"Environment",
	"Governance",
	"Social Services",
	"Infrastructure",
}

// BudgetForm is the editable input backing the budget generator.
type BudgetForm struct {
	ProjectName        string
	Organization       string
	ProjectPeriod      string
	Currency           string
	ProjectType        string
	Items              []BudgetItem
	ContingencyPercent float64
	BudgetNarrative    string
}

// NewBudgetForm returns the default form state: one empty item at
// quantity 1 / duration 1, 10% contingency, USD.
func NewBudgetForm() *BudgetForm {
	return &BudgetForm{
		Currency:           "USD",
		Items:              []BudgetItem{{ID: "1", Quantity: 1, Duration: 1}},
		ContingencyPercent: 10,
	}
}

// BudgetContent is the enriched-section output of one budget expansion.
type BudgetContent struct {
	// CategoryJustifications maps budget category to its justification
	// paragraph; rendering follows the categories' first appearance
	// among the line items.
	CategoryJustifications map[string]string
	ValueForMoney          string
	SectorBenchmarks       string
	CostEfficiency         string
	RiskMitigation         string
}
