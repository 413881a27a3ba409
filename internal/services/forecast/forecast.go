// Package forecast projects statement metrics forward by compounding historical growth.
package forecast

import (
	"fmt"
	"math"
	"strings"

	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/finmath"
)

const (
	// Horizon is the number of projected years
	Horizon = 3
	// MinHistory is the fewest historical years that produce a forecast
	MinHistory = 2
	// SampleTransitions bounds the year-over-year changes used for growth sampling
	SampleTransitions = 3

	DefaultGrowthRate = 0.05
	MinGrowthRate     = -0.20
	MaxGrowthRate     = 0.30

	// Inferred from forecast net profit, not modelled separately
	EBITMultiplier            = 1.3
	ProfitBeforeTaxMultiplier = 1.2
)

type metric struct {
	key   string
	value func(s *models.AnnualSnapshot) float64
}

var trackedMetrics = []metric{
	{models.ForecastRevenue, func(s *models.AnnualSnapshot) float64 { return s.Income.Revenue }},
	{models.ForecastGrossProfit, func(s *models.AnnualSnapshot) float64 { return s.Income.GrossProfit }},
	{models.ForecastNetProfit, func(s *models.AnnualSnapshot) float64 { return s.Income.NetProfit }},
	{models.ForecastTotalAssets, func(s *models.AnnualSnapshot) float64 { return s.BalanceSheet.TotalAssets }},
	{models.ForecastEquity, func(s *models.AnnualSnapshot) float64 { return s.BalanceSheet.Equity }},
}

// Forecast projects Horizon years beyond the latest snapshot.
// It returns nil when fewer than MinHistory years are available, which callers must
// treat as insufficient history rather than zero growth.
func Forecast(snapshots []models.AnnualSnapshot) *models.ForecastSet {
	if len(snapshots) < MinHistory {
		return nil
	}

	window := snapshots
	if len(window) > SampleTransitions+1 {
		window = window[len(window)-SampleTransitions-1:]
	}
	latest := &snapshots[len(snapshots)-1]

	set := &models.ForecastSet{
		BaseYear:    latest.Year,
		GrowthRates: make(map[string]float64, len(trackedMetrics)),
	}

	for _, m := range trackedMetrics {
		series := make([]float64, len(window))
		for i := range window {
			series[i] = m.value(&window[i])
		}

		samples := finmath.PositiveGrowthRates(series)
		rate := DefaultGrowthRate
		if len(samples) > 0 {
			rate = finmath.Mean(samples)
		} else {
			set.DefaultedMetrics = append(set.DefaultedMetrics, m.key)
		}
		set.GrowthRates[m.key] = finmath.ClampFloat64(rate, MinGrowthRate, MaxGrowthRate)
	}

	// Operating profit follows net profit at the latest observed ratio
	opRatio := 0.0
	if latest.Income.OperatingProfit > 0 && latest.Income.NetProfit > 0 {
		opRatio = latest.Income.OperatingProfit / latest.Income.NetProfit
	} else {
		set.DefaultedMetrics = append(set.DefaultedMetrics, models.ForecastOperatingProfit)
	}

	project := func(key string, base float64, offset int) float64 {
		return base * math.Pow(1+set.GrowthRates[key], float64(offset+1))
	}

	set.Years = make([]models.ForecastYear, Horizon)
	for i := 0; i < Horizon; i++ {
		netProfit := project(models.ForecastNetProfit, latest.Income.NetProfit, i)
		set.Years[i] = models.ForecastYear{
			Year:            latest.Year + i + 1,
			Revenue:         project(models.ForecastRevenue, latest.Income.Revenue, i),
			GrossProfit:     project(models.ForecastGrossProfit, latest.Income.GrossProfit, i),
			OperatingProfit: netProfit * opRatio,
			ProfitBeforeTax: netProfit * ProfitBeforeTaxMultiplier,
			NetProfit:       netProfit,
			TotalAssets:     project(models.ForecastTotalAssets, latest.BalanceSheet.TotalAssets, i),
			Equity:          project(models.ForecastEquity, latest.BalanceSheet.Equity, i),
			EBIT:            netProfit * EBITMultiplier,
		}
	}

	set.Reasoning = reasoning(set, len(window)-1)
	return set
}

func reasoning(set *models.ForecastSet, sampled int) string {
	parts := make([]string, 0, len(trackedMetrics))
	for _, m := range trackedMetrics {
		parts = append(parts, fmt.Sprintf("%s %+.1f%%", m.key, set.GrowthRates[m.key]*100))
	}
	text := fmt.Sprintf("Compound growth over %d years from %d, sampled over the last %d year-over-year changes: %s",
		Horizon, set.BaseYear, sampled, strings.Join(parts, ", "))
	if len(set.DefaultedMetrics) > 0 {
		text += fmt.Sprintf("; defaulted: %s", strings.Join(set.DefaultedMetrics, ", "))
	}
	return text
}
