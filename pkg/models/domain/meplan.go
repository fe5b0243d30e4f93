package domain

// Indicator is one repeatable row of the M&E indicators framework.
type Indicator struct {
	ID         string
	Name       string
	Definition string
	Target     string
	DataSource string
	Frequency  string
	Responsible string
}

// ProcessMonitoringEntry captures how one activity was carried out, for
// the process monitoring section of the M&E plan.
type ProcessMonitoringEntry struct {
	ID              string
	Activity        string
	Processes       string
	Lessons         string
	Suggestions     string
	KnowledgeGained string
}

// MEPlanForm is the editable input backing the M&E plan generator.
type MEPlanForm struct {
	ProjectName        string
	Organization       string
	ProjectGoal        string
	TheoryOfChange     string
	BaselineData       string
	OutputsAndOutcomes string
	Indicators         []Indicator
	ReportingSchedule  string
	EvaluationMethod   string
	ProcessMonitoring  []ProcessMonitoringEntry
}

// NewMEPlanForm returns the default form state with one empty row per list.
func NewMEPlanForm() *MEPlanForm {
	return &MEPlanForm{
		Indicators:        []Indicator{{ID: "1"}},
		ProcessMonitoring: []ProcessMonitoringEntry{{ID: "1"}},
	}
}

// MEPlanContent is the enriched-section output of one M&E plan expansion.
type MEPlanContent struct {
	ExecutiveSummary      string
	TheoryOfChange        string
	BaselineData          string
	OutputsAndOutcomes    string
	IndicatorsFramework   string
	ReportingSchedule     string
	EvaluationMethodology string
	ProcessMonitoring     string
}
