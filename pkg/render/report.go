package render

import (
	"fmt"
	"strings"

	"github.com/ngo-tools/grant-forge/pkg/export"
	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

// Report assembles a progress report document.
func Report(f *domain.ReportForm, c *domain.ReportContent) *domain.Document {
	doc := &domain.Document{
		Title:    fmt.Sprintf("%s REPORT", strings.ToUpper(f.ReportType)),
		Subtitle: f.ProjectName,
		Meta: []string{
			fmt.Sprintf("Organization: %s", f.Organization),
			fmt.Sprintf("Reporting Period: %s", f.ReportingPeriod),
			fmt.Sprintf("Prepared by: %s", f.PreparedBy),
			fmt.Sprintf("Date: %s", f.DatePrepared),
		},
		Filename: fmt.Sprintf("%s_%s_Report.docx", export.SanitizeName(orDefault(f.ProjectName, "Report")), f.ReportType),
	}

	sections := []domain.Section{
		{Heading: "EXECUTIVE SUMMARY", Paragraphs: paragraphs(c.ExecutiveSummary)},
		{Heading: "KEY ACHIEVEMENTS", Paragraphs: paragraphs(c.KeyAchievements)},
		{Heading: "BENEFICIARIES REACHED", Paragraphs: paragraphs(c.BeneficiariesReached)},
		{Heading: "ACTIVITIES COMPLETED", Paragraphs: paragraphs(c.ActivitiesCompleted)},
		{Heading: "CHALLENGES ENCOUNTERED", Paragraphs: paragraphs(c.Challenges)},
		{Heading: "LESSONS LEARNED", Paragraphs: paragraphs(c.LessonsLearned)},
		{Heading: "FINANCIAL STATUS", Paragraphs: paragraphs(c.FinancialStatus)},
		{Heading: "NEXT STEPS", Paragraphs: paragraphs(c.NextSteps)},
	}

	for _, s := range sections {
		if !s.Empty() {
			doc.Sections = append(doc.Sections, s)
		}
	}
	return doc
}
