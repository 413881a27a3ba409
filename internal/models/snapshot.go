package models

import "sort"

// BalanceSheetFacts are the balance sheet values of an annual snapshot
type BalanceSheetFacts struct {
	TotalAssets      float64 `json:"total_assets"`
	CurrentAssets    float64 `json:"current_assets"`
	NonCurrentAssets float64 `json:"non_current_assets"`
	Liabilities      float64 `json:"liabilities"`
	Equity           float64 `json:"equity"`
	Inventory        float64 `json:"inventory"`
	ShortTermDebt    float64 `json:"short_term_debt"`
	Receivables      float64 `json:"receivables"`
	Cash             float64 `json:"cash"`
	RetainedEarnings float64 `json:"retained_earnings"`
}

// IncomeFacts are the income statement values of an annual snapshot, with derived EBIT and EBITDA
type IncomeFacts struct {
	Revenue         float64 `json:"revenue"`
	GrossProfit     float64 `json:"gross_profit"`
	OperatingProfit float64 `json:"operating_profit"`
	ProfitBeforeTax float64 `json:"profit_before_tax"`
	NetProfit       float64 `json:"net_profit"`
	InterestExpense float64 `json:"interest_expense"`
	EBIT            float64 `json:"ebit"`
	EBITDA          float64 `json:"ebitda"`
}

// CashFlowFacts are the cash flow statement values of an annual snapshot
type CashFlowFacts struct {
	OperatingCashFlow float64 `json:"operating_cash_flow"`
	InvestingCashFlow float64 `json:"investing_cash_flow"`
	FinancingCashFlow float64 `json:"financing_cash_flow"`
	NetCashFlow       float64 `json:"net_cash_flow"`
	Depreciation      float64 `json:"depreciation"`
}

// AnnualSnapshot is the single representative statement set for one company-year.
// Fields listed in Missing were not reported and hold 0, meaning unknown-or-zero.
type AnnualSnapshot struct {
	CompanyCode  string                `json:"company_code"`
	Year         int                   `json:"year"`
	BalanceSheet BalanceSheetFacts     `json:"balance_sheet"`
	Income       IncomeFacts           `json:"income_statement"`
	CashFlow     CashFlowFacts         `json:"cash_flow"`
	Sources      []StatementType       `json:"sources"`
	Quarters     map[StatementType]int `json:"quarters"`
	Missing      []string              `json:"missing,omitempty"`
	EBITKnown    bool                  `json:"ebit_known"`
}

// IsReported reports whether a line item was present in the source statements
func (s *AnnualSnapshot) IsReported(item string) bool {
	i := sort.SearchStrings(s.Missing, item)
	return !(i < len(s.Missing) && s.Missing[i] == item)
}

// HasStatement reports whether the snapshot includes data from the given statement type
func (s *AnnualSnapshot) HasStatement(t StatementType) bool {
	for _, src := range s.Sources {
		if src == t {
			return true
		}
	}
	return false
}

// Years returns the years of a snapshot series in order
func Years(snapshots []AnnualSnapshot) []int {
	years := make([]int, len(snapshots))
	for i, s := range snapshots {
		years[i] = s.Year
	}
	return years
}
