package models

import "time"

// Report is the full financial analysis of one company.
// Nil sections were not computable from the available history.
type Report struct {
	ID                      string                   `json:"id"`
	Company                 Company                  `json:"company"`
	GeneratedAt             time.Time                `json:"generated_at"`
	Years                   []int                    `json:"years"`
	Snapshots               []AnnualSnapshot         `json:"snapshots"`
	Ratios                  []RatioSet               `json:"ratios"`
	Sector                  *SectorBenchmark         `json:"sector,omitempty"`
	SectorComparison        map[RatioName]float64    `json:"sector_comparison,omitempty"`
	Forecast                *ForecastSet             `json:"forecast"`
	Health                  *HealthAssessment        `json:"health"`
	BusinessRecommendations *BusinessRecommendations `json:"business_recommendations"`
	Valuation               *ValuationMetrics        `json:"valuation"`
	RiskFactors             *RiskFactors             `json:"risk_factors"`
	Recommendation          *Recommendation          `json:"recommendation"`
	Heuristics              []string                 `json:"heuristics,omitempty"`
}

// LatestRatios returns the ratio set of the most recent year, or nil
func (r *Report) LatestRatios() *RatioSet {
	if r == nil || len(r.Ratios) == 0 {
		return nil
	}
	return &r.Ratios[len(r.Ratios)-1]
}

// ReportOptions carry the caller-supplied market inputs of a report request.
// A zero Price with no stored quote leaves the target price unavailable.
type ReportOptions struct {
	Price    float64
	PE       float64
	PB       float64
	MaxYears int
}

// Quote merges the options over a stored quote. Returns nil when neither carries data.
func (o ReportOptions) Quote(companyCode string, stored *MarketQuote) *MarketQuote {
	var q MarketQuote
	if stored != nil {
		q = *stored
	}
	q.CompanyCode = companyCode
	if o.Price > 0 {
		q.Price = o.Price
	}
	if o.PE > 0 {
		q.PE = o.PE
	}
	if o.PB > 0 {
		q.PB = o.PB
	}
	if q.Price <= 0 && q.PE <= 0 && q.PB <= 0 {
		return nil
	}
	return &q
}
