package generator

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

// Validate checks the required fields for the form's document type.
// Proposals require the organization name and project title; everything
// else requires project name and organization. Budgets additionally
// require a category and item on every line.
func (f *FormState) Validate() error {
	switch f.Type {
	case domain.DocTypeProposal:
		return validation.ValidateStruct(f.Proposal,
			validation.Field(&f.Proposal.OrganizationName, validation.Required),
			validation.Field(&f.Proposal.ProjectTitle, validation.Required),
		)
	case domain.DocTypeWorkPlan:
		return validation.ValidateStruct(f.WorkPlan,
			validation.Field(&f.WorkPlan.ProjectName, validation.Required),
			validation.Field(&f.WorkPlan.Organization, validation.Required),
		)
	case domain.DocTypeMEPlan:
		return validation.ValidateStruct(f.MEPlan,
			validation.Field(&f.MEPlan.ProjectName, validation.Required),
			validation.Field(&f.MEPlan.Organization, validation.Required),
		)
	case domain.DocTypeBudget:
		return validation.ValidateStruct(f.Budget,
			validation.Field(&f.Budget.ProjectName, validation.Required),
			validation.Field(&f.Budget.Organization, validation.Required),
			validation.Field(&f.Budget.Items, validation.Each(validation.By(validateBudgetItem))),
		)
	case domain.DocTypeReport:
		return validation.ValidateStruct(f.Report,
			validation.Field(&f.Report.ProjectName, validation.Required),
			validation.Field(&f.Report.Organization, validation.Required),
		)
	}
	return fmt.Errorf("unsupported document type: %s", f.Type)
}

func validateBudgetItem(value interface{}) error {
	item, ok := value.(domain.BudgetItem)
	if !ok {
		return fmt.Errorf("unexpected budget item type %T", value)
	}
	return validation.ValidateStruct(&item,
		validation.Field(&item.Category, validation.Required),
		validation.Field(&item.Item, validation.Required),
	)
}
