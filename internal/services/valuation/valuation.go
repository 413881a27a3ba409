// Package valuation computes statement-only structural and valuation measures.
package valuation

import (
	"github.com/ternarybob/finsight/internal/common"
	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/finmath"
)

// Z-score weights for working capital, retained earnings, EBIT, equity/liabilities and sales
const (
	weightWorkingCapital   = 0.717
	weightRetainedEarnings = 0.847
	weightEBIT             = 3.107
	weightEquity           = 0.420
	weightSales            = 0.998
)

// Z-score zone boundaries
const (
	SafeThreshold = 2.9
	GreyThreshold = 1.23
)

// Policy holds the assumption constants of the analysis. They are fixed policy values, not fitted.
type Policy struct {
	TaxShield             float64 // NOPAT = operating profit * TaxShield
	CostOfCapital         float64
	PayoutRatio           float64
	RetainedEarningsProxy float64 // share of equity assumed retained when unreported
}

// DefaultPolicy returns the standard assumptions
func DefaultPolicy() Policy {
	return Policy{
		TaxShield:             0.8,
		CostOfCapital:         0.10,
		PayoutRatio:           0.30,
		RetainedEarningsProxy: 0.6,
	}
}

// PolicyFromConfig builds a policy from the [valuation] config section
func PolicyFromConfig(cfg common.ValuationConfig) Policy {
	return Policy{
		TaxShield:             cfg.TaxShield,
		CostOfCapital:         cfg.CostOfCapital,
		PayoutRatio:           cfg.PayoutRatio,
		RetainedEarningsProxy: cfg.RetainedEarningsProxy,
	}
}

// Analyze computes valuation metrics for the latest snapshot. Returns nil without a snapshot.
func Analyze(policy Policy, latest *models.AnnualSnapshot) *models.ValuationMetrics {
	if latest == nil {
		return nil
	}

	bs := latest.BalanceSheet
	is := latest.Income

	m := &models.ValuationMetrics{
		Year:        latest.Year,
		TotalAssets: bs.TotalAssets,
		Equity:      bs.Equity,
		Liabilities: bs.Liabilities,

		DebtRatio:       finmath.SafeDiv(bs.Liabilities, bs.TotalAssets) * 100,
		DebtToEquity:    finmath.SafeDiv(bs.Liabilities, bs.Equity) * 100,
		ROE:             finmath.SafeDiv(is.NetProfit, bs.Equity) * 100,
		ROA:             finmath.SafeDiv(is.NetProfit, bs.TotalAssets) * 100,
		AssetTurnover:   finmath.SafeDiv(is.Revenue, bs.TotalAssets),
		ProfitMargin:    finmath.SafeDiv(is.NetProfit, is.Revenue) * 100,
		OperatingMargin: finmath.SafeDiv(is.OperatingProfit, is.Revenue) * 100,
	}

	m.DuPont = models.DuPont{
		ProfitMargin:     m.ProfitMargin,
		AssetTurnover:    m.AssetTurnover,
		EquityMultiplier: finmath.SafeDiv(bs.TotalAssets, bs.Equity),
	}

	retained := bs.RetainedEarnings
	if !latest.IsReported(models.ItemRetainedEarnings) {
		retained = bs.Equity * policy.RetainedEarningsProxy
		m.RetainedEarningsEstimated = true
	}

	ebit := is.EBIT
	if !latest.EBITKnown {
		ebit = is.OperatingProfit
		m.EBITFromOperatingProfit = true
	}

	m.ZScore = weightWorkingCapital*finmath.SafeDiv(bs.CurrentAssets-bs.ShortTermDebt, bs.TotalAssets) +
		weightRetainedEarnings*finmath.SafeDiv(retained, bs.TotalAssets) +
		weightEBIT*finmath.SafeDiv(ebit, bs.TotalAssets) +
		weightEquity*finmath.SafeDiv(bs.Equity, bs.Liabilities) +
		weightSales*finmath.SafeDiv(is.Revenue, bs.TotalAssets)
	m.FinancialStrength = Zone(m.ZScore)

	if m.ROE > 0 {
		m.SustainableGrowthRate = m.ROE * (1 - policy.PayoutRatio)
	}

	nopat := is.OperatingProfit * policy.TaxShield
	investedCapital := bs.TotalAssets - bs.Cash
	m.EconomicValueAdded = nopat - policy.CostOfCapital*investedCapital

	return m
}

// Zone classifies a Z-score
func Zone(z float64) string {
	switch {
	case z > SafeThreshold:
		return models.ZoneSafe
	case z > GreyThreshold:
		return models.ZoneGrey
	default:
		return models.ZoneDistress
	}
}
