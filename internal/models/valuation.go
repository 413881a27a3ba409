package models

// Z-score zones
const (
	ZoneSafe     = "safe zone"
	ZoneGrey     = "grey zone"
	ZoneDistress = "distress zone"
)

// DuPont is the three-factor ROE decomposition.
// ProfitMargin is a percentage; ROE% = ProfitMargin * AssetTurnover * EquityMultiplier.
type DuPont struct {
	ProfitMargin     float64 `json:"profit_margin"`
	AssetTurnover    float64 `json:"asset_turnover"`
	EquityMultiplier float64 `json:"equity_multiplier"`
}

// ValuationMetrics are statement-only structural and valuation measures
type ValuationMetrics struct {
	Year                      int     `json:"year"`
	TotalAssets               float64 `json:"total_assets"`
	Equity                    float64 `json:"equity"`
	Liabilities               float64 `json:"liabilities"`
	DebtRatio                 float64 `json:"debt_ratio"`
	DebtToEquity              float64 `json:"debt_to_equity"`
	ROE                       float64 `json:"roe"`
	ROA                       float64 `json:"roa"`
	AssetTurnover             float64 `json:"asset_turnover"`
	ProfitMargin              float64 `json:"profit_margin"`
	OperatingMargin           float64 `json:"operating_margin"`
	DuPont                    DuPont  `json:"dupont_analysis"`
	ZScore                    float64 `json:"z_score"`
	FinancialStrength         string  `json:"financial_strength"`
	SustainableGrowthRate     float64 `json:"sustainable_growth_rate"`
	EconomicValueAdded        float64 `json:"economic_value_added"`
	RetainedEarningsEstimated bool    `json:"retained_earnings_estimated"`
	EBITFromOperatingProfit   bool    `json:"ebit_from_operating_profit"`
}
