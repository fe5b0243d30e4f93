package generator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
	"github.com/ngo-tools/grant-forge/pkg/render"
	"github.com/ngo-tools/grant-forge/pkg/services/budget"
	"github.com/ngo-tools/grant-forge/pkg/services/enrich"
)

// State is the generator session lifecycle phase.
type State string

const (
	StateIdle       State = "idle"
	StateFilling    State = "filling"
	StateGenerating State = "generating"
	StateGenerated  State = "generated"
)

// Session owns the form state and enriched content of one generator.
// All methods are safe for concurrent use.
type Session struct {
	id    string
	delay time.Duration
	src   enrich.Source

	mu      sync.Mutex
	state   State
	form    *FormState
	content *Content
}

func newSession(t domain.DocType, delay time.Duration, src enrich.Source) (*Session, error) {
	form, err := NewFormState(t)
	if err != nil {
		return nil, err
	}
	return &Session{
		id:    uuid.NewString(),
		delay: delay,
		src:   src,
		state: StateIdle,
		form:  form,
	}, nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) Type() domain.DocType {
	return s.form.Type
}

// Form exposes the current form state. Callers must treat it as
// read-only; mutations go through Edit.
func (s *Session) Form() *FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Edit applies a form mutation. Editing is rejected while a generation
// is in flight; an edit after generation invalidates the content and
// returns the session to Filling.
func (s *Session) Edit(apply func(*FormState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateGenerating {
		return fmt.Errorf("edit: %w", ErrInvalidState)
	}
	if err := apply(s.form); err != nil {
		return err
	}
	s.state = StateFilling
	s.content = nil
	return nil
}

// Generate validates the form, waits the pacing delay, then expands the
// form into enriched content. Validation failure leaves the session in
// Filling with no content. Cancelling ctx aborts the wait and leaves
// the session in Filling.
func (s *Session) Generate(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateGenerating {
		s.mu.Unlock()
		return fmt.Errorf("generate: %w", ErrInvalidState)
	}
	if err := s.form.Validate(); err != nil {
		s.state = StateFilling
		s.mu.Unlock()
		return err
	}
	s.state = StateGenerating
	s.content = nil
	s.mu.Unlock()

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			s.mu.Lock()
			s.state = StateFilling
			s.mu.Unlock()
			return ctx.Err()
		case <-timer.C:
		}
	}

	content := Expand(s.form, s.src)

	s.mu.Lock()
	s.content = content
	s.state = StateGenerated
	s.mu.Unlock()
	return nil
}

// Content returns the enriched content of the last successful
// generation, or ErrNotGenerated.
func (s *Session) Content() (*Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateGenerated {
		return nil, ErrNotGenerated
	}
	return s.content, nil
}

// Document assembles the export-ready document. It does not change the
// session state; downloads are repeatable.
func (s *Session) Document() (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateGenerated {
		return nil, ErrNotGenerated
	}
	return Render(s.form, s.content), nil
}

// Reset discards all form input and content and returns to Idle with
// fresh defaults.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateGenerating {
		return fmt.Errorf("reset: %w", ErrInvalidState)
	}
	form, err := NewFormState(s.form.Type)
	if err != nil {
		return err
	}
	s.form = form
	s.content = nil
	s.state = StateIdle
	return nil
}

// Expand runs the template expansion for the form's document type.
// Work plans carry no enrichment and yield an empty Content.
func Expand(f *FormState, src enrich.Source) *Content {
	c := &Content{}
	switch f.Type {
	case domain.DocTypeProposal:
		c.Proposal = enrich.ExpandProposal(f.Proposal, src)
	case domain.DocTypeMEPlan:
		c.MEPlan = enrich.ExpandMEPlan(f.MEPlan)
	case domain.DocTypeBudget:
		totals := budget.Aggregate(f.Budget.Items, f.Budget.ContingencyPercent)
		c.Budget = enrich.ExpandBudget(f.Budget, totals.GrandTotal)
	case domain.DocTypeReport:
		c.Report = enrich.ExpandReport(f.Report)
	}
	return c
}

// Render assembles the document for the form's type from its content.
func Render(f *FormState, c *Content) *domain.Document {
	switch f.Type {
	case domain.DocTypeProposal:
		return render.Proposal(f.Proposal, c.Proposal)
	case domain.DocTypeWorkPlan:
		return render.WorkPlan(f.WorkPlan)
	case domain.DocTypeMEPlan:
		return render.MEPlan(f.MEPlan, c.MEPlan)
	case domain.DocTypeBudget:
		return render.Budget(f.Budget, c.Budget)
	case domain.DocTypeReport:
		return render.Report(f.Report, c.Report)
	}
	return nil
}
