package domain

// Activity is one repeatable work plan row. The ID addresses list edits
// and carries no ordering meaning beyond insertion order.
type Activity struct {
	ID               string
	Name             string
	Responsible      string
	StartDate        string
	EndDate          string
	ProcessReport    string
	ActivityReport   string
	SupervisorRemark string
}

// WorkPlanForm is the editable input backing the work plan generator.
type WorkPlanForm struct {
	ProjectName      string
	Organization     string
	ProjectPeriod    string
	OverallObjective string
	Activities       []Activity
}

// NewWorkPlanForm returns the default form state with one empty activity.
func NewWorkPlanForm() *WorkPlanForm {
	return &WorkPlanForm{Activities: []Activity{{ID: "1"}}}
}
