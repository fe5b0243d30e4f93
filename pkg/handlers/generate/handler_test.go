package generate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngo-tools/grant-forge/pkg/models/api"
	"github.com/ngo-tools/grant-forge/pkg/services/generator"
)

type fixedSource int

func (f fixedSource) Intn(n int) int { return int(f) % n }

func newTestRouter() http.Handler {
	svc := generator.NewService(generator.Options{Source: fixedSource(0)})
	h := NewHandler(svc, "https://checkout.example.com/grant-forge")

	router := chi.NewRouter()
	router.Get("/generators", h.ListGenerators)
	router.Post("/generators/{type}/preview", h.Preview)
	router.Post("/generators/{type}/document", h.Document)
	router.Post("/generators/budget/export", h.ExportCSV)
	router.Get("/checkout", h.Checkout)
	return router
}

func TestPreviewHTMLFormat(t *testing.T) {
	router := newTestRouter()

	body := `{"projectName":"Water Project","organization":"Clean Water Org","contingencyPercent":10,"items":[{"id":"1","category":"Personnel","item":"Manager","unitCost":100,"quantity":1,"duration":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/generators/budget/preview?format=html", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var preview api.PreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preview))
	require.NotEmpty(t, preview.Sections)

	var vfm string
	for _, s := range preview.Sections {
		if s.Key == "valueForMoney" {
			vfm = s.Content
		}
	}
	assert.Contains(t, vfm, "<strong>Efficient Resource Allocation</strong>")
}

func TestPreviewPlainKeepsMarkdown(t *testing.T) {
	router := newTestRouter()

	body := `{"projectName":"Water Project","organization":"Clean Water Org","contingencyPercent":10,"items":[{"id":"1","category":"Personnel","item":"Manager","unitCost":100,"quantity":1,"duration":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/generators/budget/preview", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var preview api.PreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preview))

	require.NotNil(t, preview.Totals)
	assert.Equal(t, 100.0, preview.Totals.Subtotal)
	assert.Equal(t, 110.0, preview.Totals.GrandTotal)

	for _, s := range preview.Sections {
		if s.Key == "valueForMoney" {
			assert.Contains(t, s.Content, "**Efficient Resource Allocation**")
		}
	}
}

func TestPreviewMalformedBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/generators/proposal/preview", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr api.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Contains(t, apiErr.Error, "decode proposal form")
}

func TestReportPreviewSections(t *testing.T) {
	router := newTestRouter()

	body := `{"reportType":"Quarterly","projectName":"Water Access Project","organization":"Clean Water Org","keyAchievements":"Drilled 5 boreholes."}`
	req := httptest.NewRequest(http.MethodPost, "/generators/report/preview", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var preview api.PreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preview))

	var keys []string
	for _, s := range preview.Sections {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{"executiveSummary", "keyAchievements"}, keys)
}
