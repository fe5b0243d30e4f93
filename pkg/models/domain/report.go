package domain

// ReportTypes is the fixed set of progress report flavors.
var ReportTypes = []string{"Progress", "Financial", "Quarterly", "Annual", "Final"}

// ReportForm is the editable input backing the report generator.
type ReportForm struct {
	ReportType          string
	ProjectName         string
	Organization        string
	ReportingPeriod     string
	PreparedBy          string
	DatePrepared        string
	ExecutiveSummary    string
	ActivitiesCompleted string
	Challenges          string
	LessonsLearned      string
	FinancialStatus     string
	NextSteps           string
	BeneficiariesReached string
	KeyAchievements     string
}

// NewReportForm returns the default form state.
func NewReportForm() *ReportForm {
	return &ReportForm{ReportType: "Progress"}
}

// ReportContent is the enriched-section output of one report expansion.
type ReportContent struct {
	ExecutiveSummary     string
	KeyAchievements      string
	BeneficiariesReached string
	ActivitiesCompleted  string
	Challenges           string
	LessonsLearned       string
	FinancialStatus      string
	NextSteps            string
}
