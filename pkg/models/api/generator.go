package api

// Generator describes one available document generator.
type Generator struct {
	Type        string `json:"type"`
	DisplayName string `json:"displayName"`
}

type ProposalForm struct {
	OrganizationName       string `json:"organizationName"`
	ProjectTitle           string `json:"projectTitle"`
	FundingAmount          string `json:"fundingAmount"`
	ProjectDuration        string `json:"projectDuration"`
	TargetBeneficiaries    string `json:"targetBeneficiaries"`
	FunderName             string `json:"funderName"`
	FunderCase             string `json:"funderCase"`
	ProblemStatement       string `json:"problemStatement"`
	ProjectGoals           string `json:"projectGoals"`
	Activities             string `json:"activities"`
	ExpectedOutcomes       string `json:"expectedOutcomes"`
	OrganizationExperience string `json:"organizationExperience"`
	BudgetOverview         string `json:"budgetOverview"`
	Theme                  string `json:"theme"`
	DecisionMakers         string `json:"decisionMakers"`
	CriticalIssues         string `json:"criticalIssues"`
	UniqueValue            string `json:"uniqueValue"`
	ReferenceTopics        string `json:"referenceTopics"`
}

type Activity struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Responsible      string `json:"responsible"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	ProcessReport    string `json:"processReport"`
	ActivityReport   string `json:"activityReport"`
	SupervisorRemark string `json:"supervisorRemark"`
}

type WorkPlanForm struct {
	ProjectName      string     `json:"projectName"`
	Organization     string     `json:"organization"`
	ProjectPeriod    string     `json:"projectPeriod"`
	OverallObjective string     `json:"overallObjective"`
	Activities       []Activity `json:"activities"`
}

type Indicator struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Definition  string `json:"definition"`
	Target      string `json:"target"`
	DataSource  string `json:"dataSource"`
	Frequency   string `json:"frequency"`
	Responsible string `json:"responsible"`
}

type ProcessMonitoringEntry struct {
	ID              string `json:"id"`
	Activity        string `json:"activity"`
	Processes       string `json:"processes"`
	Lessons         string `json:"lessons"`
	Suggestions     string `json:"suggestions"`
	KnowledgeGained string `json:"knowledgeGained"`
}

type MEPlanForm struct {
	ProjectName        string                   `json:"projectName"`
	Organization       string                   `json:"organization"`
	ProjectGoal        string                   `json:"projectGoal"`
	TheoryOfChange     string                   `json:"theoryOfChange"`
	BaselineData       string                   `json:"baselineData"`
	OutputsAndOutcomes string                   `json:"outputsAndOutcomes"`
	Indicators         []Indicator              `json:"indicators"`
	ReportingSchedule  string                   `json:"reportingSchedule"`
	EvaluationMethod   string                   `json:"evaluationMethod"`
	ProcessMonitoring  []ProcessMonitoringEntry `json:"processMonitoring"`
}

type BudgetItem struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Item     string  `json:"item"`
	UnitCost float64 `json:"unitCost"`
	Quantity float64 `json:"quantity"`
	Duration float64 `json:"duration"`
	Notes    string  `json:"notes"`
}

type BudgetForm struct {
	ProjectName        string       `json:"projectName"`
	Organization       string       `json:"organization"`
	ProjectPeriod      string       `json:"projectPeriod"`
	Currency           string       `json:"currency"`
	ProjectType        string       `json:"projectType"`
	Items              []BudgetItem `json:"items"`
	ContingencyPercent float64      `json:"contingencyPercent"`
	BudgetNarrative    string       `json:"budgetNarrative"`
}

type ReportForm struct {
	ReportType           string `json:"reportType"`
	ProjectName          string `json:"projectName"`
	Organization         string `json:"organization"`
	ReportingPeriod      string `json:"reportingPeriod"`
	PreparedBy           string `json:"preparedBy"`
	DatePrepared         string `json:"datePrepared"`
	ExecutiveSummary     string `json:"executiveSummary"`
	ActivitiesCompleted  string `json:"activitiesCompleted"`
	Challenges           string `json:"challenges"`
	LessonsLearned       string `json:"lessonsLearned"`
	FinancialStatus      string `json:"financialStatus"`
	NextSteps            string `json:"nextSteps"`
	BeneficiariesReached string `json:"beneficiariesReached"`
	KeyAchievements      string `json:"keyAchievements"`
}

// Section is one enriched block of a generation preview.
type Section struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Reference struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Source    string `json:"source"`
	Year      string `json:"year"`
	URL       string `json:"url"`
	Relevance string `json:"relevance"`
}

type BudgetTotals struct {
	Subtotal    float64 `json:"subtotal"`
	Contingency float64 `json:"contingency"`
	GrandTotal  float64 `json:"grandTotal"`
}

// PreviewResponse is the enriched content of one expansion.
type PreviewResponse struct {
	Type       string        `json:"type"`
	Sections   []Section     `json:"sections"`
	References []Reference   `json:"references,omitempty"`
	Totals     *BudgetTotals `json:"totals,omitempty"`
}

// Error is the uniform error payload.
type Error struct {
	Error string `json:"error"`
}
