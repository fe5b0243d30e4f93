package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ngo-tools/grant-forge/pkg/runtime/terminal/export"
	"github.com/ngo-tools/grant-forge/pkg/services/config"
	"github.com/ngo-tools/grant-forge/pkg/services/generator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "form.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTypesCmd(t *testing.T) {
	svc := generator.NewService(generator.Options{})
	var buf bytes.Buffer

	cmd := NewTypesCmd(svc, &buf)
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Grant Proposal")
	assert.Contains(t, out, "M&E Plan")
}

func TestGenerateCmdText(t *testing.T) {
	svc := generator.NewService(generator.Options{})
	var buf bytes.Buffer

	input := writeInput(t, `{
		"projectName": "Community Garden",
		"organization": "Green Roots",
		"projectPeriod": "Jan - Jun 2025",
		"overallObjective": "Improve food security in the district.",
		"activities": [{"name": "Site preparation", "responsible": "J. Doe"}]
	}`)

	cmd := NewGenerateCmd(svc, nil, export.NewReporter(&buf))
	cmd.SetArgs([]string{"--input", input, "--type", "workplan", "--format", "text"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "WORK PLAN")
	assert.Contains(t, out, "=== OVERALL OBJECTIVE ===")
	assert.Contains(t, out, "=== ACTIVITIES AND TIMELINE ===")
	assert.Contains(t, out, "Site preparation")
}

func TestGenerateCmdDocx(t *testing.T) {
	svc := generator.NewService(generator.Options{})
	outDir := t.TempDir()

	input := writeInput(t, `{
		"projectName": "Community Garden",
		"organization": "Green Roots",
		"activities": [{"name": "Site preparation"}]
	}`)

	cmd := NewGenerateCmd(svc, nil, export.NewReporter(&bytes.Buffer{}))
	cmd.SetArgs([]string{"--input", input, "--type", "workplan", "--out", outDir})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(outDir, "Community_Garden.docx"))
	require.NoError(t, err)
	assert.Equal(t, "PK", string(data[:2]))
}

func TestGenerateCmdCSVWithProfile(t *testing.T) {
	svc := generator.NewService(generator.Options{})
	outDir := t.TempDir()

	cfgPath := filepath.Join(t.TempDir(), "grantforgecfg")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`[hope-foundation]
organization = Hope Foundation
currency = EUR
contingency_percent = 5
`), 0o644))
	profiles, err := config.NewRegistry(cfgPath)
	require.NoError(t, err)

	input := writeInput(t, `{
		"projectName": "Water Access",
		"items": [{"category": "Equipment", "item": "Pump", "unitCost": 100, "quantity": 2, "duration": 1}]
	}`)

	cmd := NewGenerateCmd(svc, profiles, export.NewReporter(&bytes.Buffer{}))
	cmd.SetArgs([]string{
		"--input", input,
		"--type", "budget",
		"--format", "csv",
		"--out", outDir,
		"--profile", "hope-foundation",
	})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(outDir, "Water_Access_Budget.csv"))
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "No.,Category,Item,Unit Cost,Quantity,Duration,Total,Notes")
	assert.Contains(t, out, `"Contingency (5%):"`)
	assert.Contains(t, out, `"GRAND TOTAL:","210"`)
}

func TestGenerateCmdValidationError(t *testing.T) {
	svc := generator.NewService(generator.Options{})

	input := writeInput(t, `{"projectTitle": "No Org"}`)

	cmd := NewGenerateCmd(svc, nil, export.NewReporter(&bytes.Buffer{}))
	cmd.SetArgs([]string{"--input", input, "--type", "proposal", "--format", "text"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OrganizationName")
}
