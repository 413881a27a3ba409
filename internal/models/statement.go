package models

import (
	"fmt"
	"strings"
	"time"
)

// StatementType identifies which financial statement a record was reported on
type StatementType string

const (
	StatementBalanceSheet StatementType = "balance_sheet"
	StatementIncome       StatementType = "income_statement"
	StatementCashFlow     StatementType = "cash_flow"
)

// StatementTypes lists the statement types in normalization order
var StatementTypes = []StatementType{StatementBalanceSheet, StatementIncome, StatementCashFlow}

// Canonical line item keys.
// Balance sheet
const (
	ItemTotalAssets      = "total_assets"
	ItemCurrentAssets    = "current_assets"
	ItemNonCurrentAssets = "non_current_assets"
	ItemLiabilities      = "liabilities"
	ItemEquity           = "equity"
	ItemInventory        = "inventory"
	ItemShortTermDebt    = "short_term_debt"
	ItemReceivables      = "receivables"
	ItemCash             = "cash"
	ItemRetainedEarnings = "retained_earnings"
)

// Income statement
const (
	ItemRevenue         = "revenue"
	ItemGrossProfit     = "gross_profit"
	ItemOperatingProfit = "operating_profit"
	ItemProfitBeforeTax = "profit_before_tax"
	ItemNetProfit       = "net_profit"
	ItemInterestExpense = "interest_expense"
)

// Cash flow statement
const (
	ItemOperatingCashFlow = "operating_cash_flow"
	ItemInvestingCashFlow = "investing_cash_flow"
	ItemFinancingCashFlow = "financing_cash_flow"
	ItemNetCashFlow       = "net_cash_flow"
	ItemDepreciation      = "depreciation"
)

// StatementItems maps each statement type to the line items read from it
var StatementItems = map[StatementType][]string{
	StatementBalanceSheet: {
		ItemTotalAssets, ItemCurrentAssets, ItemNonCurrentAssets, ItemLiabilities, ItemEquity,
		ItemInventory, ItemShortTermDebt, ItemReceivables, ItemCash, ItemRetainedEarnings,
	},
	StatementIncome: {
		ItemRevenue, ItemGrossProfit, ItemOperatingProfit, ItemProfitBeforeTax, ItemNetProfit, ItemInterestExpense,
	},
	StatementCashFlow: {
		ItemOperatingCashFlow, ItemInvestingCashFlow, ItemFinancingCashFlow, ItemNetCashFlow, ItemDepreciation,
	},
}

// StatementRecord is one reported period of one statement for one company.
// A line item missing from Items was not reported for the period.
type StatementRecord struct {
	ID          string             `json:"id"`
	CompanyCode string             `json:"company_code" validate:"required"`
	Statement   StatementType      `json:"statement" validate:"required,oneof=balance_sheet income_statement cash_flow"`
	Year        int                `json:"year" validate:"required,min=1900,max=2200"`
	Quarter     int                `json:"quarter" validate:"min=0,max=4"` // 0 for annual-only filings
	Revision    int                `json:"revision" validate:"min=0"`
	Items       map[string]float64 `json:"items"`
	ImportedAt  time.Time          `json:"imported_at"`
}

// Value returns the reported value for a line item and whether it was present
func (r *StatementRecord) Value(item string) (float64, bool) {
	if r.Items == nil {
		return 0, false
	}
	v, ok := r.Items[item]
	return v, ok
}

// StatementKey builds the storage key for a statement row.
// Rows sharing company, statement, year, quarter and revision replace each other.
func StatementKey(companyCode string, statement StatementType, year, quarter, revision int) string {
	return fmt.Sprintf("%s|%s|%04d|q%d|r%d", NormalizeCompanyCode(companyCode), statement, year, quarter, revision)
}

// NormalizeCompanyCode upper-cases and trims a ticker style company code
func NormalizeCompanyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
