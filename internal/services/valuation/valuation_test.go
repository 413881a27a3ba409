package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/finsight/internal/common"
	"github.com/ternarybob/finsight/internal/models"
)

func latestSnapshot() *models.AnnualSnapshot {
	return &models.AnnualSnapshot{
		Year: 2023,
		BalanceSheet: models.BalanceSheetFacts{
			TotalAssets:      1000,
			CurrentAssets:    400,
			ShortTermDebt:    200,
			Liabilities:      600,
			Equity:           400,
			Cash:             100,
			RetainedEarnings: 150,
		},
		Income: models.IncomeFacts{
			Revenue:         1200,
			OperatingProfit: 150,
			NetProfit:       80,
			EBIT:            120,
		},
		EBITKnown: true,
	}
}

func TestZone(t *testing.T) {
	tests := []struct {
		z    float64
		want string
	}{
		{3.5, models.ZoneSafe},
		{2.0, models.ZoneGrey},
		{0.5, models.ZoneDistress},
		{2.9, models.ZoneGrey},
		{1.23, models.ZoneDistress},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Zone(tt.z), "z=%v", tt.z)
	}
}

func TestAnalyze_Ratios(t *testing.T) {
	m := Analyze(DefaultPolicy(), latestSnapshot())
	require.NotNil(t, m)

	assert.InDelta(t, 60, m.DebtRatio, 1e-9)
	assert.InDelta(t, 150, m.DebtToEquity, 1e-9)
	assert.InDelta(t, 20, m.ROE, 1e-9)
	assert.InDelta(t, 8, m.ROA, 1e-9)
	assert.InDelta(t, 1.2, m.AssetTurnover, 1e-9)
	assert.InDelta(t, 6.6667, m.ProfitMargin, 1e-4)
	assert.InDelta(t, 12.5, m.OperatingMargin, 1e-9)
}

func TestAnalyze_DuPontReconstructsROE(t *testing.T) {
	m := Analyze(DefaultPolicy(), latestSnapshot())
	require.NotNil(t, m)

	d := m.DuPont
	assert.InDelta(t, 2.5, d.EquityMultiplier, 1e-9)
	assert.InDelta(t, m.ROE, d.ProfitMargin*d.AssetTurnover*d.EquityMultiplier, 1e-9)
}

func TestAnalyze_ZScore(t *testing.T) {
	m := Analyze(DefaultPolicy(), latestSnapshot())
	require.NotNil(t, m)

	want := 0.717*0.2 + 0.847*0.15 + 3.107*0.12 + 0.420*(400.0/600) + 0.998*1.2
	assert.InDelta(t, want, m.ZScore, 1e-9)
	assert.Equal(t, Zone(want), m.FinancialStrength)
	assert.False(t, m.RetainedEarningsEstimated)
	assert.False(t, m.EBITFromOperatingProfit)
}

func TestAnalyze_Fallbacks(t *testing.T) {
	s := latestSnapshot()
	s.Missing = []string{models.ItemRetainedEarnings}
	s.BalanceSheet.RetainedEarnings = 0
	s.EBITKnown = false
	s.Income.EBIT = 0

	m := Analyze(DefaultPolicy(), s)
	require.NotNil(t, m)
	assert.True(t, m.RetainedEarningsEstimated)
	assert.True(t, m.EBITFromOperatingProfit)

	want := 0.717*0.2 + 0.847*(400*0.6/1000) + 3.107*0.15 + 0.420*(400.0/600) + 0.998*1.2
	assert.InDelta(t, want, m.ZScore, 1e-9)
}

func TestAnalyze_GrowthAndEVA(t *testing.T) {
	m := Analyze(DefaultPolicy(), latestSnapshot())
	require.NotNil(t, m)

	assert.InDelta(t, 14, m.SustainableGrowthRate, 1e-9)
	assert.InDelta(t, 150*0.8-0.1*900, m.EconomicValueAdded, 1e-9)

	loss := latestSnapshot()
	loss.Income.NetProfit = -10
	assert.Equal(t, 0.0, Analyze(DefaultPolicy(), loss).SustainableGrowthRate)
}

func TestAnalyze_ZeroDenominators(t *testing.T) {
	m := Analyze(DefaultPolicy(), &models.AnnualSnapshot{Year: 2020})
	require.NotNil(t, m)
	assert.Equal(t, 0.0, m.ZScore)
	assert.Equal(t, models.ZoneDistress, m.FinancialStrength)
	assert.Equal(t, 0.0, m.DuPont.EquityMultiplier)
	assert.Nil(t, Analyze(DefaultPolicy(), nil))
}

func TestPolicyFromConfig(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Valuation.PayoutRatio = 0.5

	p := PolicyFromConfig(cfg.Valuation)
	assert.Equal(t, 0.5, p.PayoutRatio)
	assert.Equal(t, DefaultPolicy().TaxShield, p.TaxShield)

	m := Analyze(p, latestSnapshot())
	assert.InDelta(t, 10, m.SustainableGrowthRate, 1e-9)
}
