package models

import "time"

// ImportBundle is the on-disk and over-the-wire format of a statement import.
// Item values are decoded leniently: numbers, numeric strings with thousand
// separators, anything else is treated as not reported.
type ImportBundle struct {
	Company    Company           `json:"company" yaml:"company"`
	Statements []ImportStatement `json:"statements" yaml:"statements" validate:"dive"`
	Benchmarks []SectorBenchmark `json:"benchmarks,omitempty" yaml:"benchmarks" validate:"dive"`
	Quote      *MarketQuote      `json:"quote,omitempty" yaml:"quote"`
}

// ImportStatement is one statement period of a bundle
type ImportStatement struct {
	Statement StatementType          `json:"statement" yaml:"statement" validate:"required,oneof=balance_sheet income_statement cash_flow"`
	Year      int                    `json:"year" yaml:"year" validate:"required,min=1900,max=2200"`
	Quarter   int                    `json:"quarter" yaml:"quarter" validate:"min=0,max=4"`
	Revision  int                    `json:"revision" yaml:"revision" validate:"min=0"`
	Items     map[string]interface{} `json:"items" yaml:"items"`
}

// ImportResult summarizes one import
type ImportResult struct {
	ID          string    `json:"id"`
	CompanyCode string    `json:"company_code"`
	Statements  int       `json:"statements"`
	Skipped     []string  `json:"skipped,omitempty"` // item keys dropped as non-numeric
	Benchmarks  int       `json:"benchmarks"`
	Quote       bool      `json:"quote"`
	Source      string    `json:"source,omitempty"`
	ImportedAt  time.Time `json:"imported_at"`
}
