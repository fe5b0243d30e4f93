package generator

import (
	"fmt"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

// FormState is the tagged union of the five editable forms. Exactly the
// field matching Type is non-nil.
type FormState struct {
	Type     domain.DocType
	Proposal *domain.ProposalForm
	WorkPlan *domain.WorkPlanForm
	MEPlan   *domain.MEPlanForm
	Budget   *domain.BudgetForm
	Report   *domain.ReportForm
}

// NewFormState returns the default form for the document type, with one
// empty row in every repeatable list.
func NewFormState(t domain.DocType) (*FormState, error) {
	fs := &FormState{Type: t}
	switch t {
	case domain.DocTypeProposal:
		fs.Proposal = domain.NewProposalForm()
	case domain.DocTypeWorkPlan:
		fs.WorkPlan = domain.NewWorkPlanForm()
	case domain.DocTypeMEPlan:
		fs.MEPlan = domain.NewMEPlanForm()
	case domain.DocTypeBudget:
		fs.Budget = domain.NewBudgetForm()
	case domain.DocTypeReport:
		fs.Report = domain.NewReportForm()
	default:
		return nil, fmt.Errorf("unsupported document type: %s", t)
	}
	return fs, nil
}

// Content is the tagged union of enriched output. Work plans have no
// enrichment step, so every field stays nil for them.
type Content struct {
	Proposal *domain.ProposalContent
	MEPlan   *domain.MEPlanContent
	Budget   *domain.BudgetContent
	Report   *domain.ReportContent
}
