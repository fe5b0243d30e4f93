package render

import (
	"fmt"
	"strings"

	"github.com/ngo-tools/grant-forge/pkg/export"
	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

// Proposal assembles a grant proposal document from the form and its
// enriched content.
func Proposal(f *domain.ProposalForm, c *domain.ProposalContent) *domain.Document {
	doc := &domain.Document{
		Title:    strings.ToUpper(c.Theme),
		Subtitle: orDefault(f.ProjectTitle, "Project Proposal"),
		Meta: []string{
			fmt.Sprintf("Submitted by: %s", f.OrganizationName),
			fmt.Sprintf("Funding Requested: $%s", orDefault(f.FundingAmount, "0")),
			fmt.Sprintf("Project Duration: %s", orDefault(f.ProjectDuration, "Not specified")),
		},
		Filename: export.SanitizeName(orDefault(f.ProjectTitle, "Grant_Proposal")) + ".docx",
	}

	sections := []domain.Section{
		{Heading: "EXECUTIVE SUMMARY", Paragraphs: paragraphs(c.ExecutiveSummary)},
		{Heading: "PROBLEM STATEMENT", Paragraphs: paragraphs(c.ProblemStatement)},
		{Heading: "PROJECT GOALS AND OBJECTIVES", Paragraphs: paragraphs(c.ProjectGoals)},
		{Heading: "PROJECT ACTIVITIES AND METHODOLOGY", Paragraphs: paragraphs(c.Activities)},
		{Heading: "EXPECTED OUTCOMES AND IMPACT", Paragraphs: paragraphs(c.ExpectedOutcomes)},
		{Heading: "ORGANIZATIONAL CAPACITY AND EXPERTISE", Paragraphs: paragraphs(c.OrganizationExperience)},
		{Heading: "BUDGET SUMMARY AND JUSTIFICATION", Paragraphs: paragraphs(c.BudgetOverview)},
		{Heading: "WHY PARTNER WITH US", Paragraphs: paragraphs(c.WhyUs)},
		{Heading: "CONCLUSION", Paragraphs: []string{conclusion(f)}},
	}
	if len(c.References) > 0 {
		entries := make([]string, len(c.References))
		for i, ref := range c.References {
			entries[i] = fmt.Sprintf("[%d] %s. %s, %s. Relevance: %s", i+1, ref.Title, ref.Source, ref.Year, ref.Relevance)
		}
		sections = append(sections, domain.Section{Heading: "REFERENCES", Entries: entries})
	}

	for _, s := range sections {
		if !s.Empty() {
			doc.Sections = append(doc.Sections, s)
		}
	}
	return doc
}

func conclusion(f *domain.ProposalForm) string {
	return fmt.Sprintf("With your support, %s will make a lasting impact on %s. We look forward to partnering with %s to achieve meaningful, sustainable change.",
		f.OrganizationName,
		orDefault(f.TargetBeneficiaries, "our community"),
		orDefault(f.FunderName, "you"),
	)
}
