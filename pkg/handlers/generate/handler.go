package generate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"

	"github.com/ngo-tools/grant-forge/pkg/adapters"
	"github.com/ngo-tools/grant-forge/pkg/export"
	"github.com/ngo-tools/grant-forge/pkg/models/api"
	"github.com/ngo-tools/grant-forge/pkg/models/domain"
	"github.com/ngo-tools/grant-forge/pkg/services/budget"
	"github.com/ngo-tools/grant-forge/pkg/services/generator"
)

type Handler struct {
	svc         generator.Service
	checkoutURL string
}

func NewHandler(svc generator.Service, checkoutURL string) *Handler {
	return &Handler{svc: svc, checkoutURL: checkoutURL}
}

func (h *Handler) ListGenerators(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var response []api.Generator
	for _, t := range h.svc.Types() {
		response = append(response, api.Generator{
			Type:        string(t),
			DisplayName: t.DisplayName(),
		})
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode generators")
	}
}

// Preview runs the expansion pipeline and returns the enriched content.
// ?format=html renders each section's prose to HTML for the preview pane.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	session, err := h.startSession(r)
	if err != nil {
		writeError(w, logger, http.StatusBadRequest, err)
		return
	}
	defer h.svc.Close(session.ID())

	if err := session.Generate(ctx); err != nil {
		writeError(w, logger, http.StatusBadRequest, err)
		return
	}

	response, err := previewResponse(session)
	if err != nil {
		writeError(w, logger, http.StatusInternalServerError, err)
		return
	}

	if r.URL.Query().Get("format") == "html" {
		if err := renderSectionsHTML(response.Sections); err != nil {
			writeError(w, logger, http.StatusInternalServerError, err)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode preview")
	}
}

// Document runs the full pipeline and streams the .docx attachment.
func (h *Handler) Document(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	session, err := h.startSession(r)
	if err != nil {
		writeError(w, logger, http.StatusBadRequest, err)
		return
	}
	defer h.svc.Close(session.ID())

	if err := session.Generate(ctx); err != nil {
		writeError(w, logger, http.StatusBadRequest, err)
		return
	}

	doc, err := session.Document()
	if err != nil {
		writeError(w, logger, http.StatusInternalServerError, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteDocx(doc, &buf); err != nil {
		writeError(w, logger, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error().Err(err).Str("filename", doc.Filename).Msg("failed to stream document")
	}
}

// ExportCSV streams the budget line items as a CSV attachment.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var form api.BudgetForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, logger, http.StatusBadRequest, fmt.Errorf("decode budget form: %w", err))
		return
	}
	budgetForm := adapters.MapApiBudgetFormToDomain(form)

	filename := export.SanitizeName(orDefault(budgetForm.ProjectName, "Project")) + "_Budget.csv"

	var buf bytes.Buffer
	if err := export.WriteBudgetCSV(budgetForm, &buf); err != nil {
		writeError(w, logger, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error().Err(err).Str("filename", filename).Msg("failed to stream csv")
	}
}

// Checkout redirects to the external hosted checkout page. Plan choice
// is cosmetic and not forwarded.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.checkoutURL, http.StatusFound)
}

// startSession opens a one-shot session loaded with the posted form.
func (h *Handler) startSession(r *http.Request) (*generator.Session, error) {
	docType, err := domain.ParseDocType(chi.URLParam(r, "type"))
	if err != nil {
		return nil, err
	}

	session, err := h.svc.NewSession(docType)
	if err != nil {
		return nil, err
	}

	edit, err := decodeForm(docType, r)
	if err != nil {
		h.svc.Close(session.ID())
		return nil, err
	}
	if err := session.Edit(edit); err != nil {
		h.svc.Close(session.ID())
		return nil, err
	}
	return session, nil
}

func decodeForm(t domain.DocType, r *http.Request) (func(*generator.FormState) error, error) {
	dec := json.NewDecoder(r.Body)

	switch t {
	case domain.DocTypeProposal:
		var form api.ProposalForm
		if err := dec.Decode(&form); err != nil {
			return nil, fmt.Errorf("decode proposal form: %w", err)
		}
		return func(fs *generator.FormState) error {
			fs.Proposal = adapters.MapApiProposalFormToDomain(form)
			return nil
		}, nil
	case domain.DocTypeWorkPlan:
		var form api.WorkPlanForm
		if err := dec.Decode(&form); err != nil {
			return nil, fmt.Errorf("decode work plan form: %w", err)
		}
		return func(fs *generator.FormState) error {
			fs.WorkPlan = adapters.MapApiWorkPlanFormToDomain(form)
			return nil
		}, nil
	case domain.DocTypeMEPlan:
		var form api.MEPlanForm
		if err := dec.Decode(&form); err != nil {
			return nil, fmt.Errorf("decode M&E plan form: %w", err)
		}
		return func(fs *generator.FormState) error {
			fs.MEPlan = adapters.MapApiMEPlanFormToDomain(form)
			return nil
		}, nil
	case domain.DocTypeBudget:
		var form api.BudgetForm
		if err := dec.Decode(&form); err != nil {
			return nil, fmt.Errorf("decode budget form: %w", err)
		}
		return func(fs *generator.FormState) error {
			fs.Budget = adapters.MapApiBudgetFormToDomain(form)
			return nil
		}, nil
	case domain.DocTypeReport:
		var form api.ReportForm
		if err := dec.Decode(&form); err != nil {
			return nil, fmt.Errorf("decode report form: %w", err)
		}
		return func(fs *generator.FormState) error {
			fs.Report = adapters.MapApiReportFormToDomain(form)
			return nil
		}, nil
	}
	return nil, fmt.Errorf("unsupported document type: %s", t)
}

func previewResponse(session *generator.Session) (*api.PreviewResponse, error) {
	content, err := session.Content()
	if err != nil {
		return nil, err
	}

	response := &api.PreviewResponse{Type: string(session.Type())}

	switch session.Type() {
	case domain.DocTypeProposal:
		response.Sections = adapters.MapProposalContentToSections(content.Proposal)
		for _, ref := range content.Proposal.References {
			response.References = append(response.References, adapters.MapDomainReferenceToApi(ref))
		}
	case domain.DocTypeMEPlan:
		response.Sections = adapters.MapMEPlanContentToSections(content.MEPlan)
	case domain.DocTypeBudget:
		form := session.Form().Budget
		response.Sections = adapters.MapBudgetContentToSections(form, content.Budget)
		totals := budget.Aggregate(form.Items, form.ContingencyPercent)
		response.Totals = &api.BudgetTotals{
			Subtotal:    totals.Subtotal,
			Contingency: totals.Contingency,
			GrandTotal:  totals.GrandTotal,
		}
	case domain.DocTypeReport:
		response.Sections = adapters.MapReportContentToSections(content.Report)
	}
	return response, nil
}

func renderSectionsHTML(sections []api.Section) error {
	for i, s := range sections {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(s.Content), &buf); err != nil {
			return fmt.Errorf("render section %s: %w", s.Key, err)
		}
		sections[i].Content = buf.String()
	}
	return nil
}

func writeError(w http.ResponseWriter, logger *zerolog.Logger, status int, err error) {
	if errors.Is(err, generator.ErrNotFound) {
		status = http.StatusNotFound
	}
	logger.Error().Err(err).Int("status", status).Msg("request failed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(api.Error{Error: err.Error()}); encErr != nil {
		logger.Error().Err(encErr).Msg("failed to encode error response")
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
