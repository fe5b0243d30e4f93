package render

import (
	"fmt"
	"strconv"

	"github.com/ngo-tools/grant-forge/pkg/export"
	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

var indicatorTableHeader = []string{
	"No.", "Indicator", "Definition", "Target", "Data Source", "Frequency", "Responsible",
}

var processTableHeader = []string{
	"No.", "Activity", "Processes & Steps", "Lessons", "Suggestions", "Knowledge Gained",
}

// MEPlan assembles a monitoring and evaluation plan document.
func MEPlan(f *domain.MEPlanForm, c *domain.MEPlanContent) *domain.Document {
	doc := &domain.Document{
		Title:    "MONITORING AND EVALUATION PLAN",
		Subtitle: f.ProjectName,
		Meta: []string{
			fmt.Sprintf("Organization: %s", f.Organization),
			fmt.Sprintf("Project Goal: %s", f.ProjectGoal),
		},
		Filename: export.SanitizeName(orDefault(f.ProjectName, "ME_Plan")) + "_ME_Plan.docx",
	}

	sections := []domain.Section{
		{Heading: "EXECUTIVE SUMMARY", Paragraphs: paragraphs(c.ExecutiveSummary)},
		{Heading: "THEORY OF CHANGE", Paragraphs: paragraphs(c.TheoryOfChange)},
		{Heading: "BASELINE DATA", Paragraphs: paragraphs(c.BaselineData)},
		{Heading: "OUTPUTS AND OUTCOMES FRAMEWORK", Paragraphs: paragraphs(c.OutputsAndOutcomes)},
		indicatorsSection(f.Indicators),
		{Heading: "REPORTING SCHEDULE", Paragraphs: paragraphs(c.ReportingSchedule)},
		{Heading: "EVALUATION METHODOLOGY", Paragraphs: paragraphs(c.EvaluationMethodology)},
		processMonitoringSection(f.ProcessMonitoring, c.ProcessMonitoring),
	}

	for _, s := range sections {
		if !s.Empty() {
			doc.Sections = append(doc.Sections, s)
		}
	}
	return doc
}

func indicatorsSection(indicators []domain.Indicator) domain.Section {
	if len(indicators) == 0 || indicators[0].Name == "" {
		return domain.Section{}
	}
	rows := make([][]string, len(indicators))
	for i, ind := range indicators {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			ind.Name,
			ind.Definition,
			ind.Target,
			ind.DataSource,
			ind.Frequency,
			ind.Responsible,
		}
	}
	return domain.Section{
		Heading: "INDICATORS FRAMEWORK",
		Table:   &domain.Table{Header: indicatorTableHeader, Rows: rows},
	}
}

// processMonitoringSection pairs the enriched narrative with the raw
// entry table under one heading.
func processMonitoringSection(entries []domain.ProcessMonitoringEntry, prose string) domain.Section {
	if len(entries) == 0 || entries[0].Activity == "" {
		return domain.Section{}
	}
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			e.Activity,
			e.Processes,
			e.Lessons,
			e.Suggestions,
			e.KnowledgeGained,
		}
	}
	return domain.Section{
		Heading:    "PROCESS MONITORING",
		Paragraphs: paragraphs(prose),
		Table:      &domain.Table{Header: processTableHeader, Rows: rows},
	}
}
