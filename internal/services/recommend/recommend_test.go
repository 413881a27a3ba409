package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/heuristics"
)

func ratios(values map[models.RatioName]float64) *models.RatioSet {
	return &models.RatioSet{Year: 2023, Values: values}
}

func history(revenue, profit []float64) []models.AnnualSnapshot {
	out := make([]models.AnnualSnapshot, len(revenue))
	for i := range revenue {
		out[i] = models.AnnualSnapshot{Year: 2021 + i, Income: models.IncomeFacts{Revenue: revenue[i], NetProfit: profit[i]}}
	}
	return out
}

func sector() *models.SectorBenchmark {
	return &models.SectorBenchmark{
		Sector: "Retail",
		Averages: map[string]float64{
			"ROE":            10,
			"ROA":            5,
			"Debt_to_Equity": 100,
			"PE":             12,
			"PB":             2,
		},
	}
}

func strongInput() Input {
	return Input{
		CompanyCode: "ABC",
		Latest: ratios(map[models.RatioName]float64{
			models.RatioROE:          13,
			models.RatioROA:          6.5,
			models.RatioDebtToEquity: 60,
			models.RatioCurrent:      1.8,
		}),
		Snapshots: history([]float64{100, 110, 125}, []float64{10, 11, 13}),
		Sector:    sector(),
		Quote:     &models.MarketQuote{CompanyCode: "ABC", Price: 25000},
	}
}

func TestRecommend_StrongCompany(t *testing.T) {
	rec := NewEngine(arbor.NewLogger()).Recommend(strongInput())
	require.NotNil(t, rec)

	assert.Equal(t, models.RecommendationScores{Profitability: 2, Growth: 2, Valuation: 0, Health: 2}, rec.SubScores)
	assert.Equal(t, 6, rec.Score)
	assert.Equal(t, models.RatingBuy, rec.Rating)
	assert.True(t, rec.TargetPriceAvailable)
	assert.Equal(t, 28750.0, rec.TargetPrice)
	assert.Len(t, rec.Reasons, 6)
	assert.Equal(t, "ROE (13.00%) above the sector average (10.00%)", rec.Reasons[0])
	assert.Contains(t, rec.Conclusion, "BUY with a target price of 28750.00")
	assert.NotContains(t, rec.Heuristics, heuristics.FlagReasonsPadded)
}

func TestRecommend_Deterministic(t *testing.T) {
	engine := NewEngine(nil)
	first := engine.Recommend(strongInput())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, engine.Recommend(strongInput()))
	}
}

func TestRecommend_NoPrice(t *testing.T) {
	in := strongInput()
	in.Quote = nil

	rec := NewEngine(nil).Recommend(in)
	require.NotNil(t, rec)
	assert.False(t, rec.TargetPriceAvailable)
	assert.Equal(t, 0.0, rec.TargetPrice)
	assert.Equal(t, 0, rec.SubScores.Valuation)
	assert.Contains(t, rec.Heuristics, heuristics.FlagTargetPriceMissing)
	assert.Contains(t, rec.Conclusion, "no target price")
}

func TestRecommend_Valuation(t *testing.T) {
	tests := []struct {
		name  string
		quote *models.MarketQuote
		bench *models.SectorBenchmark
		want  int
	}{
		{name: "cheap on both multiples", quote: &models.MarketQuote{Price: 10, PE: 8, PB: 1}, bench: sector(), want: 2},
		{name: "expensive on both multiples", quote: &models.MarketQuote{Price: 10, PE: 20, PB: 3}, bench: sector(), want: -2},
		{name: "default sector multiples", quote: &models.MarketQuote{Price: 10, PE: 11, PB: 1.1}, bench: nil, want: 2},
		{name: "multiples missing", quote: &models.MarketQuote{Price: 10}, bench: sector(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := strongInput()
			in.Quote = tt.quote
			in.Sector = tt.bench
			rec := NewEngine(nil).Recommend(in)
			require.NotNil(t, rec)
			assert.Equal(t, tt.want, rec.SubScores.Valuation)
		})
	}
}

func TestRecommend_WeakCompany(t *testing.T) {
	in := Input{
		CompanyCode: "XYZ",
		Latest: ratios(map[models.RatioName]float64{
			models.RatioROE:          4,
			models.RatioROA:          2,
			models.RatioDebtToEquity: 250,
			models.RatioCurrent:      0.7,
		}),
		Snapshots: history([]float64{100, 90, 80}, []float64{10, 8, 5}),
		Sector:    sector(),
		Quote:     &models.MarketQuote{Price: 100},
	}

	rec := NewEngine(nil).Recommend(in)
	require.NotNil(t, rec)
	assert.Equal(t, -6, rec.Score)
	assert.Equal(t, models.RatingSell, rec.Rating)
	assert.Equal(t, 85.0, rec.TargetPrice)
	assert.Equal(t, fillerReasons, rec.Reasons)
	assert.Contains(t, rec.Heuristics, heuristics.FlagReasonsPadded)
}

func TestRecommend_NoSectorProfitability(t *testing.T) {
	in := strongInput()
	in.Sector = nil

	rec := NewEngine(nil).Recommend(in)
	require.NotNil(t, rec)
	assert.Equal(t, 0, rec.SubScores.Profitability)
	assert.Equal(t, 2, rec.SubScores.Health)
	assert.Contains(t, rec.Heuristics, heuristics.FlagDefaultBenchmarks)
}

func TestRate(t *testing.T) {
	tests := []struct {
		score int
		want  models.RecommendationRating
	}{
		{5, models.RatingBuy},
		{3, models.RatingBuy},
		{2, models.RatingAccumulate},
		{1, models.RatingAccumulate},
		{0, models.RatingNeutral},
		{-1, models.RatingReduce},
		{-3, models.RatingReduce},
		{-4, models.RatingSell},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Rate(tt.score), "score %d", tt.score)
	}
}

func TestTargetPrice(t *testing.T) {
	assert.Equal(t, 115.0, TargetPrice(100, models.RatingBuy))
	assert.Equal(t, 110.0, TargetPrice(100, models.RatingAccumulate))
	assert.Equal(t, 105.0, TargetPrice(100, models.RatingNeutral))
	assert.Equal(t, 90.0, TargetPrice(100, models.RatingReduce))
	assert.Equal(t, 85.0, TargetPrice(100, models.RatingSell))
	assert.Equal(t, 11.36, TargetPrice(10.33, models.RatingAccumulate))
}

func TestNilRatios(t *testing.T) {
	assert.Nil(t, NewEngine(nil).Recommend(Input{}))
	assert.Nil(t, NewEngine(nil).RiskFactors(Input{}))
}
