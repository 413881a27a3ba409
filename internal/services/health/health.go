// Package health scores the financial health of a company across five dimensions
// and derives management recommendations from the result.
package health

import (
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/heuristics"
)

const (
	maxListed = 5
	minListed = 3
)

var dimensionOrder = []string{
	models.DimensionProfitability,
	models.DimensionLiquidity,
	models.DimensionLeverage,
	models.DimensionEfficiency,
	models.DimensionGrowth,
}

var fillerStrengths = []string{
	"Stable business position",
	"Ability to adapt to market volatility",
	"Long-term development potential",
}

var fillerWeaknesses = []string{
	"Competitive pressure from industry peers",
	"Exposure to macroeconomic volatility",
	"Needs continued innovation to stay competitive",
}

// Scorer evaluates the health rule table
type Scorer struct {
	logger arbor.ILogger
}

// NewScorer creates a health scorer
func NewScorer(logger arbor.ILogger) *Scorer {
	return &Scorer{logger: logger}
}

// Assess scores the latest ratios and the snapshot trend against the sector benchmark.
// A nil benchmark, or one without a positive value for a key, falls back to DefaultBenchmarks.
// Returns nil when there is nothing to assess.
func (s *Scorer) Assess(latest *models.RatioSet, snapshots []models.AnnualSnapshot, bench *models.SectorBenchmark) *models.HealthAssessment {
	if latest == nil || len(snapshots) == 0 {
		return nil
	}

	in := &input{latest: latest, snapshots: snapshots}
	flags := &heuristics.Set{}

	scores := make(map[string]*models.DimensionScore, len(dimensionOrder))
	for _, name := range dimensionOrder {
		scores[name] = &models.DimensionScore{Name: name, Details: []string{}}
	}

	var strengths, weaknesses []string
	for i := range rules {
		r := &rules[i]
		value, ok := r.value(in)
		if !ok {
			continue
		}

		high, low, reference, defaulted := r.thresholds(bench)
		flags.AddIf(defaulted, heuristics.FlagDefaultBenchmarks)

		dim := scores[r.dimension]
		dim.Evaluated = true

		switch r.classify(value, high, low) {
		case outcomeGood:
			dim.Score++
			dim.Details = append(dim.Details, format(r.good, value, reference))
			if r.strength != "" {
				strengths = append(strengths, format(r.strength, value, reference))
			}
		case outcomeBad:
			dim.Score--
			dim.Details = append(dim.Details, format(r.bad, value, reference))
			if r.weakness != "" {
				weaknesses = append(weaknesses, format(r.weakness, value, reference))
			}
		default:
			dim.Details = append(dim.Details, format(r.neutral, value, reference))
		}
	}

	assessment := &models.HealthAssessment{
		Year:       latest.Year,
		Dimensions: make([]models.DimensionScore, 0, len(dimensionOrder)),
	}
	for _, name := range dimensionOrder {
		dim := scores[name]
		if !dim.Evaluated {
			dim.Details = append(dim.Details, notEvaluated(name))
		}
		assessment.OverallScore += dim.Score
		assessment.Dimensions = append(assessment.Dimensions, *dim)
	}
	assessment.OverallRating = Rate(assessment.OverallScore)

	var padded bool
	assessment.Strengths, padded = heuristics.Pad(s.logger, heuristics.FlagStrengthsPadded,
		heuristics.Truncate(strengths, maxListed), fillerStrengths, minListed)
	flags.AddIf(padded, heuristics.FlagStrengthsPadded)

	assessment.Weaknesses, padded = heuristics.Pad(s.logger, heuristics.FlagWeaknessesPadded,
		heuristics.Truncate(weaknesses, maxListed), fillerWeaknesses, minListed)
	flags.AddIf(padded, heuristics.FlagWeaknessesPadded)

	assessment.Summary = summarize(assessment, latest)
	assessment.Heuristics = flags.List()

	if s.logger != nil {
		s.logger.Debug().
			Int("year", assessment.Year).
			Int("score", assessment.OverallScore).
			Str("rating", string(assessment.OverallRating)).
			Msg("Health assessment scored")
	}
	return assessment
}

// Rate maps an overall score to its rating band
func Rate(score int) models.HealthRating {
	switch {
	case score >= 4:
		return models.HealthExcellent
	case score >= 2:
		return models.HealthGood
	case score >= 0:
		return models.HealthAverage
	case score >= -2:
		return models.HealthNeedsImprovement
	default:
		return models.HealthWeak
	}
}

func notEvaluated(dimension string) string {
	if dimension == models.DimensionGrowth {
		return fmt.Sprintf("Growth not assessed: needs %d years of positive revenue or profit", growthYears)
	}
	return fmt.Sprintf("%s not assessed: required ratios unavailable", strings.ToUpper(dimension[:1])+dimension[1:])
}

// verdict picks the sentence fragment matching a dimension score
func verdict(dim models.DimensionScore, positive, negative, neutral string) string {
	switch {
	case dim.Score > 0:
		return positive
	case dim.Score < 0:
		return negative
	}
	return neutral
}

func summarize(a *models.HealthAssessment, latest *models.RatioSet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall financial health is rated %s (score %d).\n",
		strings.ToUpper(string(a.OverallRating)), a.OverallScore)

	fmt.Fprintf(&b, "Profitability: ROE of %.2f%% and ROA of %.2f%% are %s.\n",
		latest.Get(models.RatioROE), latest.Get(models.RatioROA),
		verdict(a.Dimension(models.DimensionProfitability),
			"well above the sector average",
			"below the sector average",
			"in line with the sector average"))

	fmt.Fprintf(&b, "Liquidity: with a current ratio of %.2fx the company %s.\n",
		latest.Get(models.RatioCurrent),
		verdict(a.Dimension(models.DimensionLiquidity),
			"meets its short-term obligations comfortably",
			"may struggle to meet its short-term obligations",
			"meets its short-term obligations at a reasonable level"))

	fmt.Fprintf(&b, "Capital structure: with debt to assets of %.2f%% the company %s.\n",
		latest.Get(models.RatioDebtToAssets),
		verdict(a.Dimension(models.DimensionLeverage),
			"has a conservative capital structure with low debt",
			"carries high debt that raises financial risk",
			"keeps its capital structure at a reasonable level"))

	fmt.Fprintf(&b, "Efficiency: the company %s.\n",
		verdict(a.Dimension(models.DimensionEfficiency),
			"uses its assets efficiently to generate revenue",
			"uses its assets with low efficiency",
			"operates at average efficiency"))

	growth := a.Dimension(models.DimensionGrowth)
	if growth.Evaluated {
		fmt.Fprintf(&b, "Growth: the company %s.",
			verdict(growth,
				"is on a strong growth trend",
				"faces declining revenue or profit",
				"maintains stable growth"))
	} else {
		b.WriteString("Growth: there is not enough history to assess the growth trend.")
	}

	return b.String()
}
