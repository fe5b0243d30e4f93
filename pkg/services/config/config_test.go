package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Addr)
	assert.Equal(t, 2*time.Second, cfg.GenerateDelay)
	assert.Equal(t, 29, cfg.MonthlyPrice)
	assert.Equal(t, 290, cfg.YearlyPrice)
	assert.NotEmpty(t, cfg.CheckoutURL)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: 0.0.0.0:9000\ngenerate_delay: 50ms\ncheckout_url: https://pay.example.org\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Addr)
	assert.Equal(t, 50*time.Millisecond, cfg.GenerateDelay)
	assert.Equal(t, "https://pay.example.org", cfg.CheckoutURL)
	assert.Equal(t, 29, cfg.MonthlyPrice)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestProfileRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grantforgecfg")
	content := `[hope-foundation]
organization = Hope Foundation International
currency = KES
contingency_percent = 15
prepared_by = Jordan Smith

[minimal]
organization = Minimal Org
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	ctx := context.Background()

	profiles, err := registry.GetProfiles(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"hope-foundation", "minimal"}, profiles)

	p, err := registry.GetProfile(ctx, "hope-foundation")
	require.NoError(t, err)
	assert.Equal(t, "Hope Foundation International", p.Organization)
	assert.Equal(t, "KES", p.Currency)
	assert.Equal(t, 15.0, p.ContingencyPercent)
	assert.Equal(t, "Jordan Smith", p.PreparedBy)

	// Defaults for sparse profiles.
	p, err = registry.GetProfile(ctx, "minimal")
	require.NoError(t, err)
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, 10.0, p.ContingencyPercent)

	_, err = registry.GetProfile(ctx, "unknown")
	assert.Error(t, err)
}
