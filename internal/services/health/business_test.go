package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/heuristics"
)

func assessment(score int, dims map[string]int) *models.HealthAssessment {
	a := &models.HealthAssessment{OverallScore: score}
	for _, name := range dimensionOrder {
		a.Dimensions = append(a.Dimensions, models.DimensionScore{Name: name, Score: dims[name], Evaluated: true})
	}
	return a
}

func TestRecommend_WeakDimensions(t *testing.T) {
	a := assessment(-4, map[string]int{
		models.DimensionLiquidity: -2,
		models.DimensionLeverage:  -1,
		models.DimensionGrowth:    -1,
	})

	recs := NewScorer(nil).Recommend(a)
	require.NotNil(t, recs)

	assert.Equal(t, models.PriorityHigh, recs.Priority)
	assert.Len(t, recs.Strategic, 4)
	assert.Equal(t, "Restructure short-term debt into long-term debt to improve liquidity", recs.Strategic[0])
	assert.Len(t, recs.Financial, 2)
	assert.NotContains(t, recs.Heuristics, heuristics.FlagStrategicPadded)
	assert.NotContains(t, recs.Heuristics, heuristics.FlagFinancialPadded)
	// Liquidity contributes one operational action, padded with one filler
	assert.Equal(t, fillerOperational[0], recs.Operational[1])
	assert.Contains(t, recs.Heuristics, heuristics.FlagOperationalPadded)
	assert.Equal(t, "Act now to improve liquidity, reduce the debt ratio. "+
		"These issues should be resolved early to secure stability and future development.", recs.Summary)
}

func TestRecommend_HealthyCompany(t *testing.T) {
	recs := NewScorer(nil).Recommend(assessment(5, map[string]int{
		models.DimensionProfitability: 2,
		models.DimensionGrowth:        2,
		models.DimensionLiquidity:     1,
	}))
	require.NotNil(t, recs)

	assert.Equal(t, models.PriorityLow, recs.Priority)
	assert.Equal(t, fillerStrategic, recs.Strategic)
	assert.Equal(t, fillerOperational, recs.Operational)
	assert.Equal(t, fillerFinancial, recs.Financial)
	assert.Len(t, recs.Heuristics, 3)
	assert.Contains(t, recs.Summary, "Keep exploiting growth opportunities")
}

func TestRecommend_MediumHighWithoutKeyFixes(t *testing.T) {
	recs := NewScorer(nil).Recommend(assessment(-1, map[string]int{models.DimensionEfficiency: -1}))
	require.NotNil(t, recs)

	assert.Equal(t, models.PriorityMediumHigh, recs.Priority)
	assert.Len(t, recs.Operational, 2)
	assert.Contains(t, recs.Summary, "A comprehensive plan")
}

func TestPriority(t *testing.T) {
	assert.Equal(t, models.PriorityHigh, Priority(-3))
	assert.Equal(t, models.PriorityMediumHigh, Priority(-2))
	assert.Equal(t, models.PriorityMediumHigh, Priority(0))
	assert.Equal(t, models.PriorityMedium, Priority(3))
	assert.Equal(t, models.PriorityLow, Priority(4))
	assert.Nil(t, NewScorer(nil).Recommend(nil))
}
