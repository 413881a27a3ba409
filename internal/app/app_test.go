package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/common"
	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/report"
)

func testConfig(t *testing.T) *common.Config {
	cfg := common.NewDefaultConfig()
	cfg.Storage.Badger.Path = filepath.Join(t.TempDir(), "db")
	cfg.Benchmarks.Enabled = false
	cfg.Tracing.Enabled = false
	return cfg
}

func TestApp_ImportThenReport(t *testing.T) {
	application, err := New(testConfig(t), arbor.NewLogger())
	require.NoError(t, err)
	defer application.Close()

	ctx := context.Background()
	bundle := &models.ImportBundle{
		Company: models.Company{Code: "ABC", Sector: "Retail"},
		Benchmarks: []models.SectorBenchmark{
			{Sector: "Retail", Averages: map[string]float64{"ROE": 10, "ROA": 5, "Debt_to_Equity": 100}},
		},
	}
	for i, year := range []int{2021, 2022, 2023} {
		bundle.Statements = append(bundle.Statements,
			models.ImportStatement{
				Statement: models.StatementBalanceSheet,
				Year:      year,
				Items: map[string]interface{}{
					"total_assets": 2000, "equity": 1300, "liabilities": 700,
					"current_assets": 1000, "short_term_debt": 450,
				},
			},
			models.ImportStatement{
				Statement: models.StatementIncome,
				Year:      year,
				Items: map[string]interface{}{
					"revenue":    1000 + 200*i,
					"net_profit": 130 + 20*i,
				},
			},
		)
	}

	result, err := application.ImportService.ImportBundle(ctx, bundle)
	require.NoError(t, err)
	assert.Equal(t, 6, result.Statements)

	assert.Equal(t, 1, result.Benchmarks)
	// Imported benchmarks are visible without a reload or refresh
	require.NotNil(t, application.BenchmarkService.Get("Retail"))

	rep, err := application.ReportService.Generate(ctx, "abc", models.ReportOptions{Price: 12})
	require.NoError(t, err)
	assert.Equal(t, []int{2021, 2022, 2023}, rep.Years)
	require.NotNil(t, rep.Sector)
	assert.Equal(t, "Retail", rep.Sector.Sector)
	require.NotNil(t, rep.Recommendation)
	assert.True(t, rep.Recommendation.TargetPriceAvailable)

	_, err = application.ReportService.Generate(ctx, "NOPE", models.ReportOptions{})
	assert.ErrorIs(t, err, report.ErrCompanyNotFound)
}
