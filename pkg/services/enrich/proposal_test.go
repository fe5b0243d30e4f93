package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

func TestExpandProposal(t *testing.T) {
	form := domain.NewProposalForm()
	form.OrganizationName = "Hope Foundation"
	form.ProjectTitle = "Youth Skills Initiative"
	form.FunderName = "Global Trust"
	form.FunderCase = domain.FunderCaseCrisis
	form.FundingAmount = "50,000"
	form.ProjectDuration = "18 months"
	form.TargetBeneficiaries = "unemployed youth"
	form.ProblemStatement = "Youth unemployment in the region exceeds 40%."
	form.ProjectGoals = "Reduce youth unemployment through vocational training."
	form.Activities = "Run weekly training workshops."
	form.ExpectedOutcomes = "500 youth trained and placed in jobs."
	form.Theme = "Skills for Tomorrow"

	content := ExpandProposal(form, fixedSource(0))
	require.NotNil(t, content)

	assert.Equal(t, "Skills for Tomorrow", content.Theme)
	assert.Contains(t, content.ExecutiveSummary, `Hope Foundation respectfully submits this proposal for "Youth Skills Initiative" to Global Trust.`)
	assert.Contains(t, content.ExecutiveSummary, "faces urgent challenges requiring immediate intervention")
	assert.Contains(t, content.ExecutiveSummary, "Funding Requested: $50,000 over 18 months")
	assert.Contains(t, content.ProblemStatement, "Youth unemployment in the region exceeds 40%.")
	assert.Contains(t, content.ProblemStatement, "UNDERSTANDING THE CHALLENGE")
	assert.Contains(t, content.ProjectGoals, "SMART OBJECTIVES")
	assert.Contains(t, content.Activities, "PHASE 2: CORE PROGRAM DELIVERY (Months 4-15)")
	assert.Contains(t, content.ExpectedOutcomes, "500 youth trained and placed in jobs.")
	assert.Contains(t, content.OrganizationExperience, "WHY HOPE FOUNDATION?")
	assert.Contains(t, content.WhyUs, "WHY PARTNER WITH HOPE FOUNDATION?")
	assert.Empty(t, content.References)
}

func TestExpandProposalBlankSectionsStayEmpty(t *testing.T) {
	form := domain.NewProposalForm()
	form.OrganizationName = "Hope Foundation"
	form.ProjectTitle = "Youth Skills Initiative"

	content := ExpandProposal(form, fixedSource(0))

	assert.Empty(t, content.ProblemStatement)
	assert.Empty(t, content.ProjectGoals)
	assert.Empty(t, content.Activities)
	assert.Empty(t, content.ExpectedOutcomes)

	// Experience, budget and why-us always render with fallback text.
	assert.Contains(t, content.OrganizationExperience, "has established itself as a trusted community partner")
	assert.Contains(t, content.BudgetOverview, "The total project budget of $0")
	assert.NotEmpty(t, content.WhyUs)
}

func TestExpandProposalReferences(t *testing.T) {
	form := domain.NewProposalForm()
	form.OrganizationName = "Hope Foundation"
	form.ProjectTitle = "Youth Skills Initiative"
	form.ReferenceTopics = "youth employment, education"

	content := ExpandProposal(form, fixedSource(0))
	require.NotEmpty(t, content.References)
	assert.Equal(t, "Youth Employment in Sub-Saharan Africa: Progress and Prospects", content.References[0].Title)
}

func TestDurationMonths(t *testing.T) {
	tests := []struct {
		duration string
		expected int
	}{
		{"12 months", 12},
		{"18 months", 18},
		{"2 years", 2},
		{"", 12},
		{"eighteen months", 12},
		{"0 months", 12},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			assert.Equal(t, tt.expected, durationMonths(tt.duration))
		})
	}
}
