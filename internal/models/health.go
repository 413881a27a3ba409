package models

// Health dimensions
const (
	DimensionProfitability = "profitability"
	DimensionLiquidity     = "liquidity"
	DimensionLeverage      = "leverage"
	DimensionEfficiency    = "efficiency"
	DimensionGrowth        = "growth"
)

// HealthRating is the categorical overall health verdict
type HealthRating string

const (
	HealthExcellent        HealthRating = "Excellent"
	HealthGood             HealthRating = "Good"
	HealthAverage          HealthRating = "Average"
	HealthNeedsImprovement HealthRating = "Needs Improvement"
	HealthWeak             HealthRating = "Weak"
)

// DimensionScore is the score of one health dimension.
// Evaluated is false when the dimension could not be scored, e.g. growth with too little history.
type DimensionScore struct {
	Name      string   `json:"name"`
	Score     int      `json:"score"`
	Evaluated bool     `json:"evaluated"`
	Details   []string `json:"details"`
}

// HealthAssessment scores five dimensions against sector benchmarks
type HealthAssessment struct {
	Year          int              `json:"year"`
	Dimensions    []DimensionScore `json:"dimensions"`
	OverallScore  int              `json:"overall_score"`
	OverallRating HealthRating     `json:"overall_rating"`
	Strengths     []string         `json:"strengths"`
	Weaknesses    []string         `json:"weaknesses"`
	Summary       string           `json:"summary"`
	Heuristics    []string         `json:"heuristics,omitempty"`
}

// Dimension returns the named dimension score, or a zero value when absent
func (h *HealthAssessment) Dimension(name string) DimensionScore {
	if h == nil {
		return DimensionScore{Name: name}
	}
	for _, d := range h.Dimensions {
		if d.Name == name {
			return d
		}
	}
	return DimensionScore{Name: name}
}

// Business recommendation priorities
const (
	PriorityHigh       = "High"
	PriorityMediumHigh = "Medium-High"
	PriorityMedium     = "Medium"
	PriorityLow        = "Low"
)

// BusinessRecommendations are management actions derived from a health assessment
type BusinessRecommendations struct {
	Strategic   []string `json:"strategic"`
	Operational []string `json:"operational"`
	Financial   []string `json:"financial"`
	Priority    string   `json:"priority"`
	Summary     string   `json:"summary"`
	Heuristics  []string `json:"heuristics,omitempty"`
}
