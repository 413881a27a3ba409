package health

import (
	"fmt"
	"strings"

	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/finmath"
)

// Default benchmarks used when the sector has no positive average for a key
var DefaultBenchmarks = map[string]float64{
	string(models.RatioROE):               10,
	string(models.RatioROA):               5,
	string(models.RatioROS):               8,
	string(models.RatioDebtToAssets):      50,
	string(models.RatioDebtToEquity):      100,
	string(models.RatioAssetTurnover):     0.8,
	string(models.RatioInventoryTurnover): 5,
}

// Relative thresholds around a benchmark
const (
	highMultiplier = 1.2
	lowMultiplier  = 0.8
)

type outcome int

const (
	outcomeNeutral outcome = iota
	outcomeGood
	outcomeBad
)

// input is what a rule reads its metric from
type input struct {
	latest    *models.RatioSet
	snapshots []models.AnnualSnapshot
}

// valueFunc extracts a metric, returning false when it cannot be evaluated
type valueFunc func(in *input) (float64, bool)

// rule compares one metric against either a sector benchmark or absolute bands.
// Detail templates take %[1] as the metric value and %[2] as the benchmark.
type rule struct {
	dimension string
	value     valueFunc

	benchmark string  // sector average key, empty for absolute bands
	high, low float64 // benchmark multipliers, or absolute thresholds
	inverted  bool    // lower is better

	good, bad, neutral string
	strength, weakness string
}

func ratio(name models.RatioName) valueFunc {
	return func(in *input) (float64, bool) {
		if !in.latest.Available(name) {
			return 0, false
		}
		return in.latest.Get(name), true
	}
}

// averageGrowth is the mean year-over-year growth in percent over the last three years.
// All three values must be positive.
func averageGrowth(value func(s *models.AnnualSnapshot) float64) valueFunc {
	return func(in *input) (float64, bool) {
		if len(in.snapshots) < growthYears {
			return 0, false
		}
		recent := in.snapshots[len(in.snapshots)-growthYears:]
		series := make([]float64, len(recent))
		for i := range recent {
			series[i] = value(&recent[i])
		}
		if !finmath.AllPositive(series) {
			return 0, false
		}
		return finmath.Mean(finmath.PositiveGrowthRates(series)) * 100, true
	}
}

// growthYears is the history the growth dimension needs
const growthYears = 3

var rules = []rule{
	{
		dimension: models.DimensionProfitability,
		value:     ratio(models.RatioROE),
		benchmark: string(models.RatioROE),
		high:      highMultiplier,
		low:       lowMultiplier,
		good:      "ROE (%[1].2f%%) above sector average (%[2].2f%%)",
		bad:       "ROE (%[1].2f%%) below sector average (%[2].2f%%)",
		neutral:   "ROE (%[1].2f%%) in line with sector average (%[2].2f%%)",
		strength:  "High ROE (%[1].2f%%), efficient use of equity",
		weakness:  "Low ROE (%[1].2f%%), limited return on equity",
	},
	{
		dimension: models.DimensionProfitability,
		value:     ratio(models.RatioROA),
		benchmark: string(models.RatioROA),
		high:      highMultiplier,
		low:       lowMultiplier,
		good:      "ROA (%[1].2f%%) above sector average (%[2].2f%%)",
		bad:       "ROA (%[1].2f%%) below sector average (%[2].2f%%)",
		neutral:   "ROA (%[1].2f%%) in line with sector average (%[2].2f%%)",
		strength:  "High ROA (%[1].2f%%), efficient use of assets",
		weakness:  "Low ROA (%[1].2f%%), limited return on assets",
	},
	{
		dimension: models.DimensionLiquidity,
		value:     ratio(models.RatioCurrent),
		high:      2,
		low:       1,
		good:      "Current ratio (%[1].2f) is strong",
		bad:       "Current ratio (%[1].2f) is below 1.0",
		neutral:   "Current ratio (%[1].2f) is at a safe level",
		strength:  "Good short-term solvency",
		weakness:  "Short-term obligations may be difficult to meet",
	},
	{
		dimension: models.DimensionLiquidity,
		value:     ratio(models.RatioQuick),
		high:      1.5,
		low:       0.8,
		good:      "Quick ratio (%[1].2f) is strong",
		bad:       "Quick ratio (%[1].2f) is below 0.8",
		neutral:   "Quick ratio (%[1].2f) is adequate",
	},
	{
		dimension: models.DimensionLeverage,
		value:     ratio(models.RatioDebtToAssets),
		benchmark: string(models.RatioDebtToAssets),
		high:      highMultiplier,
		low:       lowMultiplier,
		inverted:  true,
		good:      "Debt to assets (%[1].2f%%) below sector average (%[2].2f%%)",
		bad:       "Debt to assets (%[1].2f%%) above sector average (%[2].2f%%)",
		neutral:   "Debt to assets (%[1].2f%%) at a reasonable level",
		strength:  "Conservative capital structure with little debt",
		weakness:  "High debt ratio raises financial risk",
	},
	{
		dimension: models.DimensionEfficiency,
		value:     ratio(models.RatioAssetTurnover),
		benchmark: string(models.RatioAssetTurnover),
		high:      highMultiplier,
		low:       lowMultiplier,
		good:      "Asset turnover (%[1].2fx) above sector average (%[2].2fx)",
		bad:       "Asset turnover (%[1].2fx) below sector average (%[2].2fx)",
		neutral:   "Asset turnover (%[1].2fx) at a reasonable level",
		strength:  "Assets are used efficiently to generate revenue",
		weakness:  "Low efficiency in the use of assets",
	},
	{
		dimension: models.DimensionGrowth,
		value:     averageGrowth(func(s *models.AnnualSnapshot) float64 { return s.Income.Revenue }),
		high:      15,
		low:       0,
		good:      "Strong revenue growth (%[1].2f%% average per year)",
		bad:       "Revenue declining (%[1].2f%% average per year)",
		neutral:   "Stable revenue growth (%[1].2f%% average per year)",
		strength:  "High revenue growth (%[1].2f%% per year)",
		weakness:  "Revenue trending down (%[1].2f%% per year)",
	},
	{
		dimension: models.DimensionGrowth,
		value:     averageGrowth(func(s *models.AnnualSnapshot) float64 { return s.Income.NetProfit }),
		high:      20,
		low:       0,
		good:      "Strong profit growth (%[1].2f%% average per year)",
		bad:       "Profit declining (%[1].2f%% average per year)",
		neutral:   "Stable profit growth (%[1].2f%% average per year)",
		strength:  "High profit growth (%[1].2f%% per year)",
		weakness:  "Profit trending down (%[1].2f%% per year)",
	},
}

// thresholds resolves the high and low cut-offs of a rule and the benchmark used
func (r *rule) thresholds(bench *models.SectorBenchmark) (high, low, reference float64, defaulted bool) {
	if r.benchmark == "" {
		return r.high, r.low, 0, false
	}
	reference, ok := bench.Average(r.benchmark)
	if !ok {
		reference = DefaultBenchmarks[r.benchmark]
		defaulted = true
	}
	return reference * r.high, reference * r.low, reference, defaulted
}

func (r *rule) classify(value, high, low float64) outcome {
	if r.inverted {
		switch {
		case value < low:
			return outcomeGood
		case value > high:
			return outcomeBad
		}
		return outcomeNeutral
	}
	switch {
	case value > high:
		return outcomeGood
	case value < low:
		return outcomeBad
	}
	return outcomeNeutral
}

func format(template string, value, reference float64) string {
	if !strings.Contains(template, "%") {
		return template
	}
	return fmt.Sprintf(template, value, reference)
}
