package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

type fixedSource int

func (f fixedSource) Intn(n int) int { return int(f) % n }

func newTestService() Service {
	return NewService(Options{Source: fixedSource(0)})
}

func TestSessionLifecycle(t *testing.T) {
	svc := newTestService()
	session, err := svc.NewSession(domain.DocTypeProposal)
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID())
	assert.Equal(t, StateIdle, session.State())
	assert.Equal(t, domain.DocTypeProposal, session.Type())

	err = session.Edit(func(f *FormState) error {
		f.Proposal.OrganizationName = "Hope Foundation"
		f.Proposal.ProjectTitle = "Youth Skills Initiative"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, StateFilling, session.State())

	require.NoError(t, session.Generate(context.Background()))
	assert.Equal(t, StateGenerated, session.State())

	content, err := session.Content()
	require.NoError(t, err)
	require.NotNil(t, content.Proposal)
	assert.NotEmpty(t, content.Proposal.ExecutiveSummary)

	// Download is repeatable and does not change state.
	doc, err := session.Document()
	require.NoError(t, err)
	assert.Equal(t, "Youth_Skills_Initiative.docx", doc.Filename)
	assert.Equal(t, StateGenerated, session.State())

	_, err = session.Document()
	require.NoError(t, err)

	require.NoError(t, session.Reset())
	assert.Equal(t, StateIdle, session.State())
	_, err = session.Content()
	assert.ErrorIs(t, err, ErrNotGenerated)
}

func TestGenerateValidationFailureKeepsFilling(t *testing.T) {
	svc := newTestService()
	session, err := svc.NewSession(domain.DocTypeProposal)
	require.NoError(t, err)

	err = session.Edit(func(f *FormState) error {
		f.Proposal.ProjectTitle = "Youth Skills Initiative"
		return nil
	})
	require.NoError(t, err)

	err = session.Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OrganizationName")
	assert.Equal(t, StateFilling, session.State())

	_, err = session.Content()
	assert.ErrorIs(t, err, ErrNotGenerated)
}

func TestGenerateCancellation(t *testing.T) {
	svc := NewService(Options{Delay: 5 * time.Second, Source: fixedSource(0)})
	session, err := svc.NewSession(domain.DocTypeWorkPlan)
	require.NoError(t, err)

	err = session.Edit(func(f *FormState) error {
		f.WorkPlan.ProjectName = "Garden"
		f.WorkPlan.Organization = "Green Org"
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = session.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateFilling, session.State())
}

func TestEditAfterGenerationInvalidatesContent(t *testing.T) {
	svc := newTestService()
	session, err := svc.NewSession(domain.DocTypeReport)
	require.NoError(t, err)

	require.NoError(t, session.Edit(func(f *FormState) error {
		f.Report.ProjectName = "Water Access Project"
		f.Report.Organization = "Clean Water Org"
		return nil
	}))
	require.NoError(t, session.Generate(context.Background()))

	require.NoError(t, session.Edit(func(f *FormState) error {
		f.Report.ReportingPeriod = "Q2 2026"
		return nil
	}))
	assert.Equal(t, StateFilling, session.State())
	_, err = session.Content()
	assert.ErrorIs(t, err, ErrNotGenerated)
}

func TestBudgetValidationRequiresItemFields(t *testing.T) {
	svc := newTestService()
	session, err := svc.NewSession(domain.DocTypeBudget)
	require.NoError(t, err)

	require.NoError(t, session.Edit(func(f *FormState) error {
		f.Budget.ProjectName = "Water Project"
		f.Budget.Organization = "Clean Water Org"
		return nil
	}))

	// Default item has no category or item name.
	err = session.Generate(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateFilling, session.State())

	require.NoError(t, session.Edit(func(f *FormState) error {
		return f.UpdateBudgetItem(f.Budget.Items[0].ID, func(item *domain.BudgetItem) {
			item.Category = "Personnel"
			item.Item = "Manager"
			item.UnitCost = 1000
			item.Quantity = 2
			item.Duration = 3
		})
	}))
	require.NoError(t, session.Generate(context.Background()))

	content, err := session.Content()
	require.NoError(t, err)
	require.NotNil(t, content.Budget)
	assert.Contains(t, content.Budget.CategoryJustifications, "Personnel")
}

func TestServiceTracksSessions(t *testing.T) {
	svc := newTestService()
	session, err := svc.NewSession(domain.DocTypeMEPlan)
	require.NoError(t, err)

	got, err := svc.Get(session.ID())
	require.NoError(t, err)
	assert.Same(t, session, got)

	svc.Close(session.ID())
	_, err = svc.Get(session.ID())
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, domain.DocTypes(), svc.Types())
}
