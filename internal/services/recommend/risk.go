// Package recommend derives qualitative risk factors and a scored investment rating.
// Output is deterministic: identical inputs yield identical ratings, scores and reason order.
package recommend

import (
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/finmath"
	"github.com/ternarybob/finsight/internal/services/heuristics"
)

const (
	trendYears = 3
	minFactors = 3

	highMultiplier = 1.2
	lowMultiplier  = 0.8

	// Sector D/E assumed when the benchmark has none
	defaultSectorDebtToEquity = 100.0
)

var (
	fillerPositive = []string{
		"Competitive position within the sector.",
		"Long-term growth potential.",
		"Ability to adapt to market changes.",
	}
	fillerNegative = []string{
		"Rising competitive pressure in the sector.",
		"Volatile input costs.",
		"Exchange rate and interest rate risk.",
	}
)

// Input is everything the engine reads for one company
type Input struct {
	CompanyCode string
	Latest      *models.RatioSet
	Snapshots   []models.AnnualSnapshot
	Sector      *models.SectorBenchmark
	Valuation   *models.ValuationMetrics
	Quote       *models.MarketQuote
}

// Engine evaluates risk factors and recommendations
type Engine struct {
	logger arbor.ILogger
}

// NewEngine creates a recommendation engine
func NewEngine(logger arbor.ILogger) *Engine {
	return &Engine{logger: logger}
}

// RiskFactors lists positive and negative factors, each padded to at least three entries.
// Returns nil without ratios.
func (e *Engine) RiskFactors(in Input) *models.RiskFactors {
	if in.Latest == nil {
		return nil
	}

	var positive, negative []string
	flags := &heuristics.Set{}

	if de := in.Latest.Get(models.RatioDebtToEquity); de > 0 {
		sectorDE, ok := in.Sector.Average(string(models.RatioDebtToEquity))
		if !ok {
			sectorDE = defaultSectorDebtToEquity
			flags.Add(heuristics.FlagDefaultBenchmarks)
		}
		switch {
		case de < sectorDE*lowMultiplier:
			positive = append(positive, "Debt to equity below the sector average reduces financial risk.")
		case de > sectorDE*highMultiplier:
			negative = append(negative, "Debt to equity above the sector average increases financial risk.")
		}
	}

	if cr := in.Latest.Get(models.RatioCurrent); cr > 0 {
		switch {
		case cr < 1.0:
			negative = append(negative, "Current ratio below 1.0 signals short-term liquidity risk.")
		case cr > 2.0:
			positive = append(positive, "Strong current ratio, short-term obligations are well covered.")
		}
	}

	if roe := in.Latest.Get(models.RatioROE); roe > 0 {
		if sectorROE, ok := in.Sector.Average(string(models.RatioROE)); ok {
			switch {
			case roe > sectorROE*highMultiplier:
				positive = append(positive, "ROE above the sector average, capital is used efficiently.")
			case roe < sectorROE*lowMultiplier:
				negative = append(negative, "ROE below the sector average, capital efficiency is limited.")
			}
		}
	}

	if roa := in.Latest.Get(models.RatioROA); roa > 0 {
		if sectorROA, ok := in.Sector.Average(string(models.RatioROA)); ok {
			switch {
			case roa > sectorROA*highMultiplier:
				positive = append(positive, "ROA above the sector average, assets are used efficiently.")
			case roa < sectorROA*lowMultiplier:
				negative = append(negative, "ROA below the sector average, asset efficiency is limited.")
			}
		}
	}

	if revenue, profit, ok := trends(in.Snapshots); ok {
		switch {
		case finmath.StrictlyIncreasing(revenue, 1):
			positive = append(positive, "Revenue has grown steadily in recent years.")
		case finmath.StrictlyDecreasing(revenue):
			negative = append(negative, "Revenue has declined continuously in recent years.")
		}
		switch {
		case finmath.StrictlyIncreasing(profit, 1):
			positive = append(positive, "Profit has grown steadily in recent years.")
		case finmath.StrictlyDecreasing(profit):
			negative = append(negative, "Profit has declined continuously in recent years.")
		}
	}

	factors := &models.RiskFactors{}
	var padded bool
	factors.Positive, padded = heuristics.Pad(e.logger, heuristics.FlagPositiveFactorPadded, positive, fillerPositive, minFactors)
	flags.AddIf(padded, heuristics.FlagPositiveFactorPadded)
	factors.Negative, padded = heuristics.Pad(e.logger, heuristics.FlagNegativeFactorPadded, negative, fillerNegative, minFactors)
	flags.AddIf(padded, heuristics.FlagNegativeFactorPadded)
	factors.Heuristics = flags.List()

	return factors
}

// trends returns the revenue and net profit of the last three years,
// or false with less history
func trends(snapshots []models.AnnualSnapshot) (revenue, profit []float64, ok bool) {
	if len(snapshots) < trendYears {
		return nil, nil, false
	}
	recent := snapshots[len(snapshots)-trendYears:]
	revenue = make([]float64, len(recent))
	profit = make([]float64, len(recent))
	for i := range recent {
		revenue[i] = recent[i].Income.Revenue
		profit[i] = recent[i].Income.NetProfit
	}
	return revenue, profit, true
}
