package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFiles_Layering(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	override := filepath.Join(dir, "override.toml")

	require.NoError(t, os.WriteFile(base, []byte(`
[server]
port = 9000

[analysis]
max_years = 7

[valuation]
payout_ratio = 0.4
`), 0o644))
	require.NoError(t, os.WriteFile(override, []byte(`
[server]
port = 9100

[benchmarks]
schedule = "0 30 3 * * *"
`), 0o644))

	t.Setenv("FINSIGHT_ANALYSIS_PARALLEL_RATIOS", "true")
	t.Setenv("FINSIGHT_VALUATION_COST_OF_CAPITAL", "0.12")

	cfg, err := LoadFromFiles(base, override)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port, "later file wins")
	assert.Equal(t, "localhost", cfg.Server.Host, "default kept")
	assert.Equal(t, 7, cfg.Analysis.MaxYears)
	assert.True(t, cfg.Analysis.ParallelRatios, "env override")
	assert.Equal(t, 0.4, cfg.Valuation.PayoutRatio)
	assert.Equal(t, 0.12, cfg.Valuation.CostOfCapital)
	assert.Equal(t, 0.8, cfg.Valuation.TaxShield)
	assert.Equal(t, "0 30 3 * * *", cfg.Benchmarks.Schedule)
}

func TestLoadFromFiles_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFiles(filepath.Join(dir, "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("invalid toml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[server\nport ="), 0o644))
		_, err := LoadFromFiles(path)
		assert.Error(t, err)
	})

	t.Run("validation failure", func(t *testing.T) {
		path := filepath.Join(dir, "years.toml")
		require.NoError(t, os.WriteFile(path, []byte("[analysis]\nmax_years = 1\n"), 0o644))
		_, err := LoadFromFiles(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_years")
	})
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		schedule string
		wantErr  bool
	}{
		{schedule: "0 0 2 * * *"},
		{schedule: "0 */15 * * * *"},
		{schedule: "0 */2 * * * *", wantErr: true},
		{schedule: "0 * * * * *", wantErr: true},
		{schedule: "* 0 2 * * *", wantErr: true},
		{schedule: "0 0 2 * *", wantErr: true},
		{schedule: "not a schedule", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			err := ValidateSchedule(tt.schedule)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()
	ApplyFlagOverrides(cfg, 0, "")
	assert.Equal(t, 8085, cfg.Server.Port)

	ApplyFlagOverrides(cfg, 9999, "0.0.0.0")
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestIsProduction(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.False(t, cfg.IsProduction())
	cfg.Environment = " Prod "
	assert.True(t, cfg.IsProduction())
}

func TestIDs(t *testing.T) {
	assert.Regexp(t, `^rpt_[0-9a-f-]{36}$`, NewReportID())
	assert.Regexp(t, `^imp_[0-9a-f-]{36}$`, NewImportID())
	assert.NotEqual(t, NewReportID(), NewReportID())
}
