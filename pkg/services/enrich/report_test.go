package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

func TestExpandReport(t *testing.T) {
	form := domain.NewReportForm()
	form.ReportType = "Quarterly"
	form.ProjectName = "Water Access Project"
	form.Organization = "Clean Water Org"
	form.ReportingPeriod = "Q1 2026"
	form.KeyAchievements = "Drilled 5 new boreholes."
	form.Challenges = "Seasonal flooding delayed drilling."

	content := ExpandReport(form)

	assert.Contains(t, content.ExecutiveSummary, "This quarterly report presents the achievements, challenges, and progress of Water Access Project for the period Q1 2026.")
	assert.Contains(t, content.ExecutiveSummary, "Clean Water Org has made significant strides")

	assert.Contains(t, content.KeyAchievements, "Drilled 5 new boreholes.")
	assert.Contains(t, content.KeyAchievements, "MAJOR ACCOMPLISHMENTS")

	assert.Contains(t, content.Challenges, "Seasonal flooding delayed drilling.")
	assert.Contains(t, content.Challenges, "MITIGATION STRATEGIES")

	assert.Empty(t, content.BeneficiariesReached)
	assert.Empty(t, content.ActivitiesCompleted)
	assert.Empty(t, content.LessonsLearned)
	assert.Empty(t, content.FinancialStatus)
	assert.Empty(t, content.NextSteps)
}

func TestExpandReportBlankPeriodFallsBack(t *testing.T) {
	form := domain.NewReportForm()
	form.ProjectName = "Project"
	form.Organization = "Org"

	content := ExpandReport(form)
	assert.Contains(t, content.ExecutiveSummary, "for the period under review.")
}
