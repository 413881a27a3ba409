// Package ratios computes the fixed ratio vocabulary for annual snapshots.
package ratios

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/finmath"
)

// cogsApproximation is the share of revenue used as cost of goods sold
// when gross profit was not reported
const cogsApproximation = 0.7

// Calculate computes every ratio of the vocabulary for one snapshot.
// A ratio whose inputs are missing or whose denominator is not positive is 0
// and listed in Unavailable. It never fails.
func Calculate(s models.AnnualSnapshot) models.RatioSet {
	bs := s.BalanceSheet
	is := s.Income
	cf := s.CashFlow

	values := map[models.RatioName]float64{
		// Profitability
		models.RatioROA:               finmath.Ratio(is.NetProfit, bs.TotalAssets, 100),
		models.RatioROE:               finmath.Ratio(is.NetProfit, bs.Equity, 100),
		models.RatioROS:               finmath.Ratio(is.NetProfit, is.Revenue, 100),
		models.RatioGrossProfitMargin: finmath.Ratio(is.GrossProfit, is.Revenue, 100),
		models.RatioEBITMargin:        finmath.Ratio(is.EBIT, is.Revenue, 100),
		models.RatioEBITDAMargin:      finmath.Ratio(is.EBITDA, is.Revenue, 100),

		// Liquidity
		models.RatioCurrent:           finmath.Ratio(bs.CurrentAssets, bs.ShortTermDebt, 1),
		models.RatioQuick:             finmath.Ratio(bs.CurrentAssets-bs.Inventory, bs.ShortTermDebt, 1),
		models.RatioOperatingCashFlow: finmath.Ratio(cf.OperatingCashFlow, bs.ShortTermDebt, 1),

		// Leverage
		models.RatioDebtToEquity:     finmath.Ratio(bs.Liabilities, bs.Equity, 100),
		models.RatioDebtToAssets:     finmath.Ratio(bs.Liabilities, bs.TotalAssets, 100),
		models.RatioEquityToAssets:   finmath.Ratio(bs.Equity, bs.TotalAssets, 100),
		models.RatioInterestCoverage: finmath.Ratio(is.EBIT, is.InterestExpense, 1),

		// Efficiency
		models.RatioAssetTurnover:          finmath.Ratio(is.Revenue, bs.TotalAssets, 1),
		models.RatioReceivablesTurnover:    finmath.Ratio(is.Revenue, bs.Receivables, 1),
		models.RatioWorkingCapitalTurnover: finmath.Ratio(is.Revenue, bs.CurrentAssets-bs.ShortTermDebt, 1),
	}

	if is.Revenue != 0 {
		cogs, _ := COGS(s)
		values[models.RatioInventoryTurnover] = finmath.Ratio(cogs, bs.Inventory, 1)
	} else {
		values[models.RatioInventoryTurnover] = 0
	}

	set := models.RatioSet{Year: s.Year, Values: values}
	for _, name := range models.RatioNames {
		if values[name] == 0 {
			set.Unavailable = append(set.Unavailable, name)
		}
	}
	return set
}

// COGS returns cost of goods sold and whether it was approximated from revenue
func COGS(s models.AnnualSnapshot) (float64, bool) {
	if s.Income.GrossProfit > 0 {
		return s.Income.Revenue - s.Income.GrossProfit, false
	}
	return s.Income.Revenue * cogsApproximation, true
}

// COGSApproximated reports whether the inventory turnover of a snapshot rests on the revenue approximation
func COGSApproximated(s models.AnnualSnapshot) bool {
	if s.Income.Revenue == 0 || s.BalanceSheet.Inventory <= 0 {
		return false
	}
	_, approximated := COGS(s)
	return approximated
}

// CalculateSeries computes a RatioSet per snapshot, preserving year order.
// With parallel set each year is computed in its own goroutine.
func CalculateSeries(ctx context.Context, snapshots []models.AnnualSnapshot, parallel bool) ([]models.RatioSet, error) {
	out := make([]models.RatioSet, len(snapshots))
	if !parallel || len(snapshots) < 2 {
		for i, s := range snapshots {
			out[i] = Calculate(s)
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range snapshots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = Calculate(snapshots[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ByYear indexes a ratio series by year
func ByYear(series []models.RatioSet) map[int]models.RatioSet {
	out := make(map[int]models.RatioSet, len(series))
	for _, r := range series {
		out[r.Year] = r
	}
	return out
}
