package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngo-tools/grant-forge/pkg/models/api"
	"github.com/ngo-tools/grant-forge/pkg/services/generator"
)

type fixedSource int

func (f fixedSource) Intn(n int) int { return int(f) % n }

func newTestAPI() *WebAPI {
	svc := generator.NewService(generator.Options{Source: fixedSource(0)})
	return NewWebAPI(zerolog.Nop(), Config{
		Addr:        "localhost:0",
		CheckoutURL: "https://checkout.example.com/grant-forge",
		Dependencies: Dependencies{
			Generator: svc,
		},
	})
}

func TestListGenerators(t *testing.T) {
	srv := httptest.NewServer(newTestAPI().Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/generators")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var generators []api.Generator
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&generators))
	require.Len(t, generators, 5)
	assert.Equal(t, "proposal", generators[0].Type)
	assert.Equal(t, "Grant Proposal", generators[0].DisplayName)
}

func TestProposalPreview(t *testing.T) {
	srv := httptest.NewServer(newTestAPI().Router())
	defer srv.Close()

	body := `{"organizationName":"Hope Foundation","projectTitle":"Youth Skills Initiative","theme":"Skills for Tomorrow","referenceTopics":"youth, education"}`
	resp, err := http.Post(srv.URL+"/api/v1/generators/proposal/preview", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var preview api.PreviewResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&preview))
	assert.Equal(t, "proposal", preview.Type)
	require.NotEmpty(t, preview.Sections)
	assert.Equal(t, "theme", preview.Sections[0].Key)
	assert.Equal(t, "Skills for Tomorrow", preview.Sections[0].Content)
	assert.NotEmpty(t, preview.References)
}

func TestPreviewValidationFailure(t *testing.T) {
	srv := httptest.NewServer(newTestAPI().Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/generators/proposal/preview", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var apiErr api.Error
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiErr))
	assert.Contains(t, apiErr.Error, "OrganizationName")
}

func TestUnknownGeneratorType(t *testing.T) {
	srv := httptest.NewServer(newTestAPI().Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/generators/unknown/preview", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDocumentDownload(t *testing.T) {
	srv := httptest.NewServer(newTestAPI().Router())
	defer srv.Close()

	body := `{"projectName":"Community Garden","organization":"Green Org","activities":[{"id":"1","name":"Prepare land"}]}`
	resp, err := http.Post(srv.URL+"/api/v1/generators/workplan/document", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="Community_Garden.docx"`)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Greater(t, len(payload), 2)
	assert.Equal(t, []byte{'P', 'K'}, payload[:2])
}

func TestBudgetCSVExport(t *testing.T) {
	srv := httptest.NewServer(newTestAPI().Router())
	defer srv.Close()

	body := `{"projectName":"Water Project","organization":"Clean Water Org","contingencyPercent":10,"items":[{"id":"1","category":"Personnel","item":"Manager","unitCost":1000,"quantity":2,"duration":3}]}`
	resp, err := http.Post(srv.URL+"/api/v1/generators/budget/export", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="Water_Project_Budget.csv"`)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(string(payload), "\n")
	assert.Equal(t, "No.,Category,Item,Unit Cost,Quantity,Duration,Total,Notes", lines[0])
	assert.Contains(t, string(payload), `"GRAND TOTAL:","6600"`)
}

func TestCheckoutRedirect(t *testing.T) {
	srv := httptest.NewServer(newTestAPI().Router())
	defer srv.Close()

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Get(srv.URL + "/api/v1/checkout")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://checkout.example.com/grant-forge", resp.Header.Get("Location"))
}
