package adapters

import (
	"github.com/ngo-tools/grant-forge/pkg/models/api"
	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

// MapProposalContentToSections flattens enriched proposal content into
// ordered preview sections. References travel separately on the
// response; empty sections are dropped.
func MapProposalContentToSections(c *domain.ProposalContent) []api.Section {
	return nonEmpty([]api.Section{
		{Key: "theme", Title: "Theme", Content: c.Theme},
		{Key: "executiveSummary", Title: "Executive Summary", Content: c.ExecutiveSummary},
		{Key: "problemStatement", Title: "Problem Statement", Content: c.ProblemStatement},
		{Key: "projectGoals", Title: "Project Goals and Objectives", Content: c.ProjectGoals},
		{Key: "activities", Title: "Project Activities and Methodology", Content: c.Activities},
		{Key: "expectedOutcomes", Title: "Expected Outcomes and Impact", Content: c.ExpectedOutcomes},
		{Key: "organizationExperience", Title: "Organizational Capacity and Expertise", Content: c.OrganizationExperience},
		{Key: "budgetOverview", Title: "Budget Summary and Justification", Content: c.BudgetOverview},
		{Key: "whyUs", Title: "Why Partner With Us", Content: c.WhyUs},
	})
}

func MapMEPlanContentToSections(c *domain.MEPlanContent) []api.Section {
	return nonEmpty([]api.Section{
		{Key: "executiveSummary", Title: "Executive Summary", Content: c.ExecutiveSummary},
		{Key: "theoryOfChange", Title: "Theory of Change", Content: c.TheoryOfChange},
		{Key: "baselineData", Title: "Baseline Data", Content: c.BaselineData},
		{Key: "outputsAndOutcomes", Title: "Outputs and Outcomes Framework", Content: c.OutputsAndOutcomes},
		{Key: "indicatorsFramework", Title: "Indicators Framework", Content: c.IndicatorsFramework},
		{Key: "reportingSchedule", Title: "Reporting Schedule", Content: c.ReportingSchedule},
		{Key: "evaluationMethodology", Title: "Evaluation Methodology", Content: c.EvaluationMethodology},
		{Key: "processMonitoring", Title: "Process Monitoring", Content: c.ProcessMonitoring},
	})
}

func MapReportContentToSections(c *domain.ReportContent) []api.Section {
	return nonEmpty([]api.Section{
		{Key: "executiveSummary", Title: "Executive Summary", Content: c.ExecutiveSummary},
		{Key: "keyAchievements", Title: "Key Achievements", Content: c.KeyAchievements},
		{Key: "beneficiariesReached", Title: "Beneficiaries Reached", Content: c.BeneficiariesReached},
		{Key: "activitiesCompleted", Title: "Activities Completed", Content: c.ActivitiesCompleted},
		{Key: "challenges", Title: "Challenges Encountered", Content: c.Challenges},
		{Key: "lessonsLearned", Title: "Lessons Learned", Content: c.LessonsLearned},
		{Key: "financialStatus", Title: "Financial Status", Content: c.FinancialStatus},
		{Key: "nextSteps", Title: "Next Steps", Content: c.NextSteps},
	})
}

// MapBudgetContentToSections orders category justifications by their
// first appearance among the items, then appends the insight sections.
func MapBudgetContentToSections(f *domain.BudgetForm, c *domain.BudgetContent) []api.Section {
	var sections []api.Section
	seen := make(map[string]bool)
	for _, item := range f.Items {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		if j, ok := c.CategoryJustifications[item.Category]; ok {
			sections = append(sections, api.Section{
				Key:     "justification:" + item.Category,
				Title:   item.Category,
				Content: j,
			})
		}
	}
	sections = append(sections,
		api.Section{Key: "valueForMoney", Title: "Value for Money Analysis", Content: c.ValueForMoney},
		api.Section{Key: "sectorBenchmarks", Title: "Sector Benchmarks", Content: c.SectorBenchmarks},
		api.Section{Key: "costEfficiency", Title: "Cost Efficiency Analysis", Content: c.CostEfficiency},
		api.Section{Key: "riskMitigation", Title: "Risk Mitigation", Content: c.RiskMitigation},
	)
	return nonEmpty(sections)
}

func nonEmpty(sections []api.Section) []api.Section {
	out := sections[:0]
	for _, s := range sections {
		if s.Content != "" {
			out = append(out, s)
		}
	}
	return out
}
