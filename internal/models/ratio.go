package models

// RatioName identifies one ratio in the fixed ratio vocabulary
type RatioName string

// Profitability ratios (percent)
const (
	RatioROA               RatioName = "ROA"
	RatioROE               RatioName = "ROE"
	RatioROS               RatioName = "ROS"
	RatioGrossProfitMargin RatioName = "Gross_Profit_Margin"
	RatioEBITMargin        RatioName = "EBIT_Margin"
	RatioEBITDAMargin      RatioName = "EBITDA_Margin"
)

// Liquidity ratios
const (
	RatioCurrent           RatioName = "Current_Ratio"
	RatioQuick             RatioName = "Quick_Ratio"
	RatioOperatingCashFlow RatioName = "Operating_Cash_Flow_Ratio"
)

// Leverage ratios
const (
	RatioDebtToEquity     RatioName = "Debt_to_Equity"
	RatioDebtToAssets     RatioName = "Debt_to_Assets"
	RatioEquityToAssets   RatioName = "Equity_to_Assets"
	RatioInterestCoverage RatioName = "Interest_Coverage"
)

// Efficiency ratios
const (
	RatioAssetTurnover          RatioName = "Asset_Turnover"
	RatioInventoryTurnover      RatioName = "Inventory_Turnover"
	RatioReceivablesTurnover    RatioName = "Receivables_Turnover"
	RatioWorkingCapitalTurnover RatioName = "Working_Capital_Turnover"
)

// RatioNames is the full ratio vocabulary in report order
var RatioNames = []RatioName{
	RatioROA, RatioROE, RatioROS, RatioGrossProfitMargin, RatioEBITMargin, RatioEBITDAMargin,
	RatioCurrent, RatioQuick, RatioOperatingCashFlow,
	RatioDebtToEquity, RatioDebtToAssets, RatioEquityToAssets, RatioInterestCoverage,
	RatioAssetTurnover, RatioInventoryTurnover, RatioReceivablesTurnover, RatioWorkingCapitalTurnover,
}

// RatioSet holds every ratio of the vocabulary for one company-year.
// A value of 0 is the not-computable sentinel; such ratios are also listed in Unavailable.
type RatioSet struct {
	Year        int                   `json:"year"`
	Values      map[RatioName]float64 `json:"values"`
	Unavailable []RatioName           `json:"unavailable,omitempty"`
}

// Get returns a ratio value, 0 when it was not computable
func (r *RatioSet) Get(name RatioName) float64 {
	if r == nil || r.Values == nil {
		return 0
	}
	return r.Values[name]
}

// Available reports whether a ratio was computed from real inputs
func (r *RatioSet) Available(name RatioName) bool {
	if r == nil {
		return false
	}
	for _, n := range r.Unavailable {
		if n == name {
			return false
		}
	}
	_, ok := r.Values[name]
	return ok
}
