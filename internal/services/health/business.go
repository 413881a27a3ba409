package health

import (
	"strings"

	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/heuristics"
)

const minActions = 2

// actions lists the recommendations raised when a dimension scores below zero
type actions struct {
	strategic, operational, financial []string
}

var weakDimensionActions = map[string]actions{
	models.DimensionProfitability: {
		strategic:   []string{"Review pricing and product strategy to improve margins"},
		operational: []string{"Run a cost reduction programme and streamline operations"},
		financial:   []string{"Reassess underperforming investments and restructure the portfolio"},
	},
	models.DimensionLiquidity: {
		strategic:   []string{"Restructure short-term debt into long-term debt to improve liquidity"},
		operational: []string{"Tighten working capital management and the cash conversion cycle"},
		financial:   []string{"Strengthen control of inventory and receivables to release cash"},
	},
	models.DimensionLeverage: {
		strategic: []string{"Plan a gradual reduction of the debt ratio to improve the capital structure"},
		financial: []string{"Consider raising equity through share issuance or retained profits"},
	},
	models.DimensionEfficiency: {
		operational: []string{
			"Review the asset base and dispose of unproductive assets",
			"Improve production and supply chain processes to raise asset utilisation",
		},
	},
	models.DimensionGrowth: {
		strategic: []string{
			"Diversify products and expand into new markets to accelerate growth",
			"Invest in research and innovation to create new growth drivers",
		},
	},
}

var (
	fillerStrategic = []string{
		"Focus on market segments with higher margins",
		"Build a sustainable strategy on the company's competitive advantages",
	}
	fillerOperational = []string{
		"Apply technology to automate and optimise internal processes",
		"Improve cost management and operating efficiency",
	}
	fillerFinancial = []string{
		"Optimise the capital structure to balance risk and return",
		"Improve cash flow management and long-term financial planning",
	}
)

// keyFixes names the urgent fix for a weak dimension, in summary order
var keyFixes = []struct {
	dimension string
	text      string
}{
	{models.DimensionLiquidity, "improve liquidity"},
	{models.DimensionLeverage, "reduce the debt ratio"},
	{models.DimensionProfitability, "raise profitability"},
}

// Recommend derives business recommendations from a health assessment.
// Returns nil when there is no assessment.
func (s *Scorer) Recommend(a *models.HealthAssessment) *models.BusinessRecommendations {
	if a == nil {
		return nil
	}

	recs := &models.BusinessRecommendations{}
	for _, name := range dimensionOrder {
		if a.Dimension(name).Score >= 0 {
			continue
		}
		act := weakDimensionActions[name]
		recs.Strategic = append(recs.Strategic, act.strategic...)
		recs.Operational = append(recs.Operational, act.operational...)
		recs.Financial = append(recs.Financial, act.financial...)
	}

	flags := &heuristics.Set{}
	var padded bool
	recs.Strategic, padded = heuristics.Pad(s.logger, heuristics.FlagStrategicPadded, recs.Strategic, fillerStrategic, minActions)
	flags.AddIf(padded, heuristics.FlagStrategicPadded)
	recs.Operational, padded = heuristics.Pad(s.logger, heuristics.FlagOperationalPadded, recs.Operational, fillerOperational, minActions)
	flags.AddIf(padded, heuristics.FlagOperationalPadded)
	recs.Financial, padded = heuristics.Pad(s.logger, heuristics.FlagFinancialPadded, recs.Financial, fillerFinancial, minActions)
	flags.AddIf(padded, heuristics.FlagFinancialPadded)

	recs.Priority = Priority(a.OverallScore)
	recs.Summary = businessSummary(a, recs.Priority)
	recs.Heuristics = flags.List()
	return recs
}

// Priority maps an overall health score to the urgency of action
func Priority(score int) string {
	switch {
	case score <= -3:
		return models.PriorityHigh
	case score <= 0:
		return models.PriorityMediumHigh
	case score <= 3:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

func businessSummary(a *models.HealthAssessment, priority string) string {
	if priority == models.PriorityHigh || priority == models.PriorityMediumHigh {
		var fixes []string
		for _, k := range keyFixes {
			if a.Dimension(k.dimension).Score < 0 {
				fixes = append(fixes, k.text)
			}
		}

		text := "A comprehensive plan to improve financial performance is needed. "
		if len(fixes) > 0 {
			text = "Act now to " + strings.Join(fixes, ", ") + ". "
		}
		return text + "These issues should be resolved early to secure stability and future development."
	}

	text := "Focus on maintaining current financial stability and driving growth. "
	if a.Dimension(models.DimensionGrowth).Score <= 0 {
		text += "Prioritise revenue growth strategies and market expansion. "
	} else {
		text += "Keep exploiting growth opportunities and optimising operations. "
	}
	return text + "Small improvements in cost management and capital efficiency can bring significant benefits."
}
