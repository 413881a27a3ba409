package models

// Forecast metric keys
const (
	ForecastRevenue         = "revenue"
	ForecastGrossProfit     = "gross_profit"
	ForecastOperatingProfit = "operating_profit"
	ForecastNetProfit       = "net_profit"
	ForecastTotalAssets     = "total_assets"
	ForecastEquity          = "equity"
)

// ForecastYear is the projection for one future year
type ForecastYear struct {
	Year            int     `json:"year"`
	Revenue         float64 `json:"revenue"`
	GrossProfit     float64 `json:"gross_profit"`
	OperatingProfit float64 `json:"operating_profit"`
	ProfitBeforeTax float64 `json:"profit_before_tax"`
	NetProfit       float64 `json:"net_profit"`
	TotalAssets     float64 `json:"total_assets"`
	Equity          float64 `json:"equity"`
	EBIT            float64 `json:"ebit"`
}

// ForecastSet is a compound-growth projection from the latest historical year.
// GrowthRates are fractions after clamping; DefaultedMetrics fell back to the default rate
// or, for operating profit, could not be projected.
type ForecastSet struct {
	BaseYear         int                `json:"base_year"`
	GrowthRates      map[string]float64 `json:"growth_rates"`
	Years            []ForecastYear     `json:"years"`
	DefaultedMetrics []string           `json:"defaulted_metrics,omitempty"`
	Reasoning        string             `json:"reasoning"`
}
