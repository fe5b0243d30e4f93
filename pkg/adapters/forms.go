// Package adapters maps between the API wire models and the domain
// models. Derived fields (budget totals) are recomputed during mapping,
// never trusted from the wire.
package adapters

import (
	"github.com/ngo-tools/grant-forge/pkg/models/api"
	"github.com/ngo-tools/grant-forge/pkg/models/domain"
	"github.com/ngo-tools/grant-forge/pkg/services/budget"
)

func MapApiProposalFormToDomain(f api.ProposalForm) *domain.ProposalForm {
	out := domain.NewProposalForm()
	out.OrganizationName = f.OrganizationName
	out.ProjectTitle = f.ProjectTitle
	out.FundingAmount = f.FundingAmount
	out.ProjectDuration = f.ProjectDuration
	out.TargetBeneficiaries = f.TargetBeneficiaries
	out.FunderName = f.FunderName
	if f.FunderCase != "" {
		out.FunderCase = domain.FunderCase(f.FunderCase)
	}
	out.ProblemStatement = f.ProblemStatement
	out.ProjectGoals = f.ProjectGoals
	out.Activities = f.Activities
	out.ExpectedOutcomes = f.ExpectedOutcomes
	out.OrganizationExperience = f.OrganizationExperience
	out.BudgetOverview = f.BudgetOverview
	out.Theme = f.Theme
	out.DecisionMakers = f.DecisionMakers
	out.CriticalIssues = f.CriticalIssues
	out.UniqueValue = f.UniqueValue
	out.ReferenceTopics = f.ReferenceTopics
	return out
}

func MapApiWorkPlanFormToDomain(f api.WorkPlanForm) *domain.WorkPlanForm {
	out := &domain.WorkPlanForm{
		ProjectName:      f.ProjectName,
		Organization:     f.Organization,
		ProjectPeriod:    f.ProjectPeriod,
		OverallObjective: f.OverallObjective,
	}
	for _, a := range f.Activities {
		out.Activities = append(out.Activities, domain.Activity{
			ID:               a.ID,
			Name:             a.Name,
			Responsible:      a.Responsible,
			StartDate:        a.StartDate,
			EndDate:          a.EndDate,
			ProcessReport:    a.ProcessReport,
			ActivityReport:   a.ActivityReport,
			SupervisorRemark: a.SupervisorRemark,
		})
	}
	if len(out.Activities) == 0 {
		out.Activities = domain.NewWorkPlanForm().Activities
	}
	return out
}

func MapApiMEPlanFormToDomain(f api.MEPlanForm) *domain.MEPlanForm {
	out := &domain.MEPlanForm{
		ProjectName:        f.ProjectName,
		Organization:       f.Organization,
		ProjectGoal:        f.ProjectGoal,
		TheoryOfChange:     f.TheoryOfChange,
		BaselineData:       f.BaselineData,
		OutputsAndOutcomes: f.OutputsAndOutcomes,
		ReportingSchedule:  f.ReportingSchedule,
		EvaluationMethod:   f.EvaluationMethod,
	}
	for _, ind := range f.Indicators {
		out.Indicators = append(out.Indicators, domain.Indicator{
			ID:          ind.ID,
			Name:        ind.Name,
			Definition:  ind.Definition,
			Target:      ind.Target,
			DataSource:  ind.DataSource,
			Frequency:   ind.Frequency,
			Responsible: ind.Responsible,
		})
	}
	for _, e := range f.ProcessMonitoring {
		out.ProcessMonitoring = append(out.ProcessMonitoring, domain.ProcessMonitoringEntry{
			ID:              e.ID,
			Activity:        e.Activity,
			Processes:       e.Processes,
			Lessons:         e.Lessons,
			Suggestions:     e.Suggestions,
			KnowledgeGained: e.KnowledgeGained,
		})
	}
	defaults := domain.NewMEPlanForm()
	if len(out.Indicators) == 0 {
		out.Indicators = defaults.Indicators
	}
	if len(out.ProcessMonitoring) == 0 {
		out.ProcessMonitoring = defaults.ProcessMonitoring
	}
	return out
}

func MapApiBudgetFormToDomain(f api.BudgetForm) *domain.BudgetForm {
	out := &domain.BudgetForm{
		ProjectName:        f.ProjectName,
		Organization:       f.Organization,
		ProjectPeriod:      f.ProjectPeriod,
		Currency:           f.Currency,
		ProjectType:        f.ProjectType,
		ContingencyPercent: budget.Coerce(f.ContingencyPercent),
		BudgetNarrative:    f.BudgetNarrative,
	}
	if out.Currency == "" {
		out.Currency = "USD"
	}
	for _, item := range f.Items {
		mapped := domain.BudgetItem{
			ID:       item.ID,
			Category: item.Category,
			Item:     item.Item,
			UnitCost: budget.Coerce(item.UnitCost),
			Quantity: budget.Coerce(item.Quantity),
			Duration: budget.Coerce(item.Duration),
			Notes:    item.Notes,
		}
		budget.Recalc(&mapped)
		out.Items = append(out.Items, mapped)
	}
	if len(out.Items) == 0 {
		out.Items = domain.NewBudgetForm().Items
	}
	return out
}

func MapApiReportFormToDomain(f api.ReportForm) *domain.ReportForm {
	out := domain.NewReportForm()
	if f.ReportType != "" {
		out.ReportType = f.ReportType
	}
	out.ProjectName = f.ProjectName
	out.Organization = f.Organization
	out.ReportingPeriod = f.ReportingPeriod
	out.PreparedBy = f.PreparedBy
	out.DatePrepared = f.DatePrepared
	out.ExecutiveSummary = f.ExecutiveSummary
	out.ActivitiesCompleted = f.ActivitiesCompleted
	out.Challenges = f.Challenges
	out.LessonsLearned = f.LessonsLearned
	out.FinancialStatus = f.FinancialStatus
	out.NextSteps = f.NextSteps
	out.BeneficiariesReached = f.BeneficiariesReached
	out.KeyAchievements = f.KeyAchievements
	return out
}

func MapDomainReferenceToApi(r domain.Reference) api.Reference {
	return api.Reference{
		ID:        r.ID,
		Title:     r.Title,
		Source:    r.Source,
		Year:      r.Year,
		URL:       r.URL,
		Relevance: r.Relevance,
	}
}
