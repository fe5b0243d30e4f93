package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

func TestRemoveLastRowRejected(t *testing.T) {
	fs, err := NewFormState(domain.DocTypeWorkPlan)
	require.NoError(t, err)
	require.Len(t, fs.WorkPlan.Activities, 1)

	id := fs.WorkPlan.Activities[0].ID
	err = fs.RemoveActivity(id)
	assert.ErrorIs(t, err, ErrListFloor)
	assert.Len(t, fs.WorkPlan.Activities, 1)
}

func TestAddAndRemoveActivity(t *testing.T) {
	fs, err := NewFormState(domain.DocTypeWorkPlan)
	require.NoError(t, err)

	added, err := fs.AddActivity()
	require.NoError(t, err)
	require.Len(t, fs.WorkPlan.Activities, 2)

	require.NoError(t, fs.RemoveActivity(added.ID))
	assert.Len(t, fs.WorkPlan.Activities, 1)

	err = fs.RemoveActivity("missing")
	assert.ErrorIs(t, err, ErrListFloor)
}

func TestRemoveUnknownRow(t *testing.T) {
	fs, err := NewFormState(domain.DocTypeMEPlan)
	require.NoError(t, err)

	_, err = fs.AddIndicator()
	require.NoError(t, err)

	err = fs.RemoveIndicator("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, fs.MEPlan.Indicators, 2)
}

func TestUpdateBudgetItemRecalculatesTotal(t *testing.T) {
	fs, err := NewFormState(domain.DocTypeBudget)
	require.NoError(t, err)

	id := fs.Budget.Items[0].ID
	require.NoError(t, fs.UpdateBudgetItem(id, func(item *domain.BudgetItem) {
		item.UnitCost = 1000
		item.Quantity = 2
		item.Duration = 3
	}))
	assert.Equal(t, float64(6000), fs.Budget.Items[0].Total)

	// Coercion keeps invalid input out of the stored state.
	require.NoError(t, fs.UpdateBudgetItem(id, func(item *domain.BudgetItem) {
		item.Quantity = -5
	}))
	assert.Equal(t, float64(0), fs.Budget.Items[0].Quantity)
	assert.Equal(t, float64(0), fs.Budget.Items[0].Total)
}

func TestListOpsRejectWrongFormType(t *testing.T) {
	fs, err := NewFormState(domain.DocTypeProposal)
	require.NoError(t, err)

	_, err = fs.AddActivity()
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = fs.AddBudgetItem()
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.ErrorIs(t, fs.RemoveIndicator("1"), ErrInvalidState)
}
