package generator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
	"github.com/ngo-tools/grant-forge/pkg/services/budget"
)

// removeRow drops the row with the given id. Removing the last row is
// rejected with ErrListFloor and the list is returned unchanged.
func removeRow[T any](list []T, id string, idOf func(T) string) ([]T, error) {
	if len(list) <= 1 {
		return list, ErrListFloor
	}
	for i, row := range list {
		if idOf(row) == id {
			return append(list[:i], list[i+1:]...), nil
		}
	}
	return list, fmt.Errorf("row %q: %w", id, ErrNotFound)
}

func (f *FormState) AddActivity() (*domain.Activity, error) {
	if f.WorkPlan == nil {
		return nil, fmt.Errorf("activities: %w", ErrInvalidState)
	}
	f.WorkPlan.Activities = append(f.WorkPlan.Activities, domain.Activity{ID: uuid.NewString()})
	return &f.WorkPlan.Activities[len(f.WorkPlan.Activities)-1], nil
}

func (f *FormState) RemoveActivity(id string) error {
	if f.WorkPlan == nil {
		return fmt.Errorf("activities: %w", ErrInvalidState)
	}
	list, err := removeRow(f.WorkPlan.Activities, id, func(a domain.Activity) string { return a.ID })
	f.WorkPlan.Activities = list
	return err
}

func (f *FormState) UpdateActivity(id string, apply func(*domain.Activity)) error {
	if f.WorkPlan == nil {
		return fmt.Errorf("activities: %w", ErrInvalidState)
	}
	for i := range f.WorkPlan.Activities {
		if f.WorkPlan.Activities[i].ID == id {
			apply(&f.WorkPlan.Activities[i])
			return nil
		}
	}
	return fmt.Errorf("activity %q: %w", id, ErrNotFound)
}

func (f *FormState) AddIndicator() (*domain.Indicator, error) {
	if f.MEPlan == nil {
		return nil, fmt.Errorf("indicators: %w", ErrInvalidState)
	}
	f.MEPlan.Indicators = append(f.MEPlan.Indicators, domain.Indicator{ID: uuid.NewString()})
	return &f.MEPlan.Indicators[len(f.MEPlan.Indicators)-1], nil
}

func (f *FormState) RemoveIndicator(id string) error {
	if f.MEPlan == nil {
		return fmt.Errorf("indicators: %w", ErrInvalidState)
	}
	list, err := removeRow(f.MEPlan.Indicators, id, func(i domain.Indicator) string { return i.ID })
	f.MEPlan.Indicators = list
	return err
}

func (f *FormState) AddProcessEntry() (*domain.ProcessMonitoringEntry, error) {
	if f.MEPlan == nil {
		return nil, fmt.Errorf("process monitoring: %w", ErrInvalidState)
	}
	f.MEPlan.ProcessMonitoring = append(f.MEPlan.ProcessMonitoring, domain.ProcessMonitoringEntry{ID: uuid.NewString()})
	return &f.MEPlan.ProcessMonitoring[len(f.MEPlan.ProcessMonitoring)-1], nil
}

func (f *FormState) RemoveProcessEntry(id string) error {
	if f.MEPlan == nil {
		return fmt.Errorf("process monitoring: %w", ErrInvalidState)
	}
	list, err := removeRow(f.MEPlan.ProcessMonitoring, id, func(e domain.ProcessMonitoringEntry) string { return e.ID })
	f.MEPlan.ProcessMonitoring = list
	return err
}

func (f *FormState) AddBudgetItem() (*domain.BudgetItem, error) {
	if f.Budget == nil {
		return nil, fmt.Errorf("budget items: %w", ErrInvalidState)
	}
	item := domain.BudgetItem{ID: uuid.NewString(), Quantity: 1, Duration: 1}
	budget.Recalc(&item)
	f.Budget.Items = append(f.Budget.Items, item)
	return &f.Budget.Items[len(f.Budget.Items)-1], nil
}

func (f *FormState) RemoveBudgetItem(id string) error {
	if f.Budget == nil {
		return fmt.Errorf("budget items: %w", ErrInvalidState)
	}
	list, err := removeRow(f.Budget.Items, id, func(i domain.BudgetItem) string { return i.ID })
	f.Budget.Items = list
	return err
}

// UpdateBudgetItem applies an item edit, coerces the numeric fields and
// recomputes the derived total, so neither invalid input nor a stale
// Total can survive a mutation.
func (f *FormState) UpdateBudgetItem(id string, apply func(*domain.BudgetItem)) error {
	if f.Budget == nil {
		return fmt.Errorf("budget items: %w", ErrInvalidState)
	}
	for i := range f.Budget.Items {
		if f.Budget.Items[i].ID == id {
			item := &f.Budget.Items[i]
			apply(item)
			item.UnitCost = budget.Coerce(item.UnitCost)
			item.Quantity = budget.Coerce(item.Quantity)
			item.Duration = budget.Coerce(item.Duration)
			budget.Recalc(item)
			return nil
		}
	}
	return fmt.Errorf("budget item %q: %w", id, ErrNotFound)
}
