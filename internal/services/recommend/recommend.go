package recommend

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/finmath"
	"github.com/ternarybob/finsight/internal/services/heuristics"
)

const (
	minReasons = 3

	// Sector multiples assumed when the benchmark has none
	defaultSectorPE = 15.0
	defaultSectorPB = 1.5

	// Growth steps must beat the prior year by this factor
	growthFactor = 1.05
)

var fillerReasons = []string{
	"Valuation is reasonable relative to growth prospects",
	"Sound financial structure",
	"Long-term development potential",
}

// targetMultipliers adjust the current price per rating
var targetMultipliers = map[models.RecommendationRating]decimal.Decimal{
	models.RatingBuy:        decimal.RequireFromString("1.15"),
	models.RatingAccumulate: decimal.RequireFromString("1.10"),
	models.RatingNeutral:    decimal.RequireFromString("1.05"),
	models.RatingReduce:     decimal.RequireFromString("0.90"),
	models.RatingSell:       decimal.RequireFromString("0.85"),
}

// Recommend scores profitability, growth, valuation and health and maps the sum to a rating.
// The target price is only available when the input carries a positive market price.
// Returns nil without ratios.
func (e *Engine) Recommend(in Input) *models.Recommendation {
	if in.Latest == nil {
		return nil
	}

	var reasons []string
	flags := &heuristics.Set{}
	scores := models.RecommendationScores{}

	// Profitability against the sector, only when both sides are positive
	roe := in.Latest.Get(models.RatioROE)
	if sectorROE, ok := in.Sector.Average(string(models.RatioROE)); ok && roe > 0 {
		switch {
		case roe > sectorROE*highMultiplier:
			scores.Profitability++
			reasons = append(reasons, fmt.Sprintf("ROE (%.2f%%) above the sector average (%.2f%%)", roe, sectorROE))
		case roe < sectorROE*lowMultiplier:
			scores.Profitability--
		}
	}
	roa := in.Latest.Get(models.RatioROA)
	if sectorROA, ok := in.Sector.Average(string(models.RatioROA)); ok && roa > 0 {
		switch {
		case roa > sectorROA*highMultiplier:
			scores.Profitability++
			reasons = append(reasons, fmt.Sprintf("ROA (%.2f%%) above the sector average (%.2f%%)", roa, sectorROA))
		case roa < sectorROA*lowMultiplier:
			scores.Profitability--
		}
	}

	// Growth trend
	if revenue, profit, ok := trends(in.Snapshots); ok {
		switch {
		case finmath.StrictlyIncreasing(revenue, growthFactor):
			scores.Growth++
			reasons = append(reasons, "Revenue shows a steady growth trend")
		case finmath.StrictlyDecreasing(revenue):
			scores.Growth--
		}
		switch {
		case finmath.StrictlyIncreasing(profit, growthFactor):
			scores.Growth++
			reasons = append(reasons, "Profit shows a steady growth trend")
		case finmath.StrictlyDecreasing(profit):
			scores.Growth--
		}
	}

	// Valuation needs market multiples
	if in.Quote != nil {
		if pe := in.Quote.PE; pe > 0 {
			sectorPE := in.Sector.AverageOr(models.BenchmarkPE, defaultSectorPE)
			switch {
			case pe < sectorPE*lowMultiplier:
				scores.Valuation++
				reasons = append(reasons, fmt.Sprintf("P/E (%.2f) below the sector average (%.2f)", pe, sectorPE))
			case pe > sectorPE*highMultiplier:
				scores.Valuation--
			}
		}
		if pb := in.Quote.PB; pb > 0 {
			sectorPB := in.Sector.AverageOr(models.BenchmarkPB, defaultSectorPB)
			switch {
			case pb < sectorPB*lowMultiplier:
				scores.Valuation++
				reasons = append(reasons, fmt.Sprintf("P/B (%.2f) below the sector average (%.2f)", pb, sectorPB))
			case pb > sectorPB*highMultiplier:
				scores.Valuation--
			}
		}
	}

	// Leverage and liquidity
	if de := in.Latest.Get(models.RatioDebtToEquity); de > 0 {
		sectorDE, ok := in.Sector.Average(string(models.RatioDebtToEquity))
		if !ok {
			sectorDE = defaultSectorDebtToEquity
			flags.Add(heuristics.FlagDefaultBenchmarks)
		}
		switch {
		case de < sectorDE*lowMultiplier:
			scores.Health++
			reasons = append(reasons, "Low debt to equity reduces financial risk")
		case de > sectorDE*highMultiplier:
			scores.Health--
		}
	}
	if cr := in.Latest.Get(models.RatioCurrent); cr > 0 {
		switch {
		case cr > 1.5:
			scores.Health++
			reasons = append(reasons, fmt.Sprintf("Healthy current ratio (%.2f)", cr))
		case cr < 1.0:
			scores.Health--
		}
	}

	rec := &models.Recommendation{
		SubScores: scores,
		Score:     scores.Total(),
	}
	rec.Rating = Rate(rec.Score)

	if in.Quote != nil && in.Quote.Price > 0 {
		rec.TargetPrice = TargetPrice(in.Quote.Price, rec.Rating)
		rec.TargetPriceAvailable = true
	} else {
		flags.Add(heuristics.FlagTargetPriceMissing)
	}

	var padded bool
	rec.Reasons, padded = heuristics.Pad(e.logger, heuristics.FlagReasonsPadded, reasons, fillerReasons, minReasons)
	flags.AddIf(padded, heuristics.FlagReasonsPadded)

	rec.Conclusion = conclusion(in.CompanyCode, rec)
	rec.Heuristics = flags.List()

	if e.logger != nil {
		e.logger.Debug().
			Str("company", in.CompanyCode).
			Int("score", rec.Score).
			Str("rating", string(rec.Rating)).
			Msg("Recommendation scored")
	}
	return rec
}

// Rate maps an overall score to a rating
func Rate(score int) models.RecommendationRating {
	switch {
	case score >= 3:
		return models.RatingBuy
	case score >= 1:
		return models.RatingAccumulate
	case score > -1:
		return models.RatingNeutral
	case score >= -3:
		return models.RatingReduce
	default:
		return models.RatingSell
	}
}

// TargetPrice applies the rating adjustment to a price, rounded to two decimals
func TargetPrice(price float64, rating models.RecommendationRating) float64 {
	multiplier, ok := targetMultipliers[rating]
	if !ok {
		multiplier = targetMultipliers[models.RatingNeutral]
	}
	target, _ := decimal.NewFromFloat(price).Mul(multiplier).Round(2).Float64()
	return target
}

var ratingOutlook = map[models.RecommendationRating]string{
	models.RatingBuy:        "has financial ratios well above the sector average, with high ROE and ROA and a positive growth trend",
	models.RatingAccumulate: "has good financial ratios and growth potential",
	models.RatingNeutral:    "has financial ratios around the sector average",
	models.RatingReduce:     "has some weak financial ratios that carry risk",
	models.RatingSell:       "has weak financial ratios and high risk",
}

func conclusion(code string, rec *models.Recommendation) string {
	text := fmt.Sprintf("%s %s. Recommendation: %s", code, ratingOutlook[rec.Rating], strings.ToUpper(string(rec.Rating)))
	if rec.TargetPriceAvailable {
		return text + " with a target price of " + decimal.NewFromFloat(rec.TargetPrice).StringFixed(2) + "."
	}
	return text + "; no target price without a market price."
}
