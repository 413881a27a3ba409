package models

// RiskFactors are the qualitative positive and negative factors of a company
type RiskFactors struct {
	Positive   []string `json:"positive"`
	Negative   []string `json:"negative"`
	Heuristics []string `json:"heuristics,omitempty"`
}

// RecommendationRating is the categorical investment verdict
type RecommendationRating string

const (
	RatingBuy        RecommendationRating = "Buy"
	RatingAccumulate RecommendationRating = "Accumulate"
	RatingNeutral    RecommendationRating = "Neutral"
	RatingReduce     RecommendationRating = "Reduce"
	RatingSell       RecommendationRating = "Sell"
)

// RecommendationScores are the per-dimension contributions to the overall score
type RecommendationScores struct {
	Profitability int `json:"profitability"`
	Growth        int `json:"growth"`
	Valuation     int `json:"valuation"`
	Health        int `json:"health"`
}

// Total returns the overall score
func (s RecommendationScores) Total() int {
	return s.Profitability + s.Growth + s.Valuation + s.Health
}

// Recommendation is a scored rating with a target price heuristic.
// TargetPrice is meaningless when TargetPriceAvailable is false.
type Recommendation struct {
	Rating               RecommendationRating `json:"rating"`
	Score                int                  `json:"score"`
	SubScores            RecommendationScores `json:"sub_scores"`
	TargetPrice          float64              `json:"target_price"`
	TargetPriceAvailable bool                 `json:"target_price_available"`
	Reasons              []string             `json:"reasons"`
	Conclusion           string               `json:"conclusion"`
	Heuristics           []string             `json:"heuristics,omitempty"`
}
