package render

import (
	"fmt"
	"strconv"

	"github.com/ngo-tools/grant-forge/pkg/export"
	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

var activityTableHeader = []string{
	"No.", "Activity", "Person Responsible", "Start Date", "End Date",
	"Process Report", "Activity Report", "Remark by Supervisor",
}

// WorkPlan assembles a work plan document. The activities table keeps
// the rows in form order, numbered from 1.
func WorkPlan(f *domain.WorkPlanForm) *domain.Document {
	doc := &domain.Document{
		Title:    "WORK PLAN",
		Subtitle: f.ProjectName,
		Meta: []string{
			fmt.Sprintf("Organization: %s", f.Organization),
			fmt.Sprintf("Project Period: %s", f.ProjectPeriod),
		},
		Filename: export.SanitizeName(orDefault(f.ProjectName, "Work_Plan")) + ".docx",
	}

	if f.OverallObjective != "" {
		doc.Sections = append(doc.Sections, domain.Section{
			Heading:    "OVERALL OBJECTIVE",
			Paragraphs: paragraphs(f.OverallObjective),
		})
	}

	rows := make([][]string, len(f.Activities))
	for i, a := range f.Activities {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			a.Name,
			a.Responsible,
			a.StartDate,
			a.EndDate,
			a.ProcessReport,
			a.ActivityReport,
			a.SupervisorRemark,
		}
	}
	doc.Sections = append(doc.Sections, domain.Section{
		Heading: "ACTIVITIES AND TIMELINE",
		Table:   &domain.Table{Header: activityTableHeader, Rows: rows},
	})

	return doc
}
