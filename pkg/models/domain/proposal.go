package domain

// FunderCase classifies the funder's current situation; it selects the
// boilerplate slant used by the executive summary.
type FunderCase string

const (
	FunderCaseExpansion    FunderCase = "Expansion"
	FunderCaseCrisis       FunderCase = "Crisis"
	FunderCaseSatisfaction FunderCase = "Satisfaction"
	FunderCaseArrogance    FunderCase = "Arrogance"
)

// ProposalForm is the editable input backing the grant proposal generator.
type ProposalForm struct {
	OrganizationName       string
	ProjectTitle           string
	FundingAmount          string
	ProjectDuration        string
	TargetBeneficiaries    string
	FunderName             string
	FunderCase             FunderCase
	ProblemStatement       string
	ProjectGoals           string
	Activities             string
	ExpectedOutcomes       string
	OrganizationExperience string
	BudgetOverview         string
	Theme                  string
	DecisionMakers         string
	CriticalIssues         string
	UniqueValue            string
	ReferenceTopics        string
}

// NewProposalForm returns the default (empty) form state.
func NewProposalForm() *ProposalForm {
	return &ProposalForm{FunderCase: FunderCaseExpansion}
}

// ProposalContent is the enriched-section output of one proposal expansion.
type ProposalContent struct {
	Theme                  string
	ExecutiveSummary       string
	ProblemStatement       string
	ProjectGoals           string
	Activities             string
	ExpectedOutcomes       string
	OrganizationExperience string
	BudgetOverview         string
	WhyUs                  string
	References             []Reference
}
