// Package normalize turns raw per-period statement rows into one annual snapshot per company-year.
// All functions are pure and perform no I/O.
package normalize

import (
	"sort"

	"github.com/ternarybob/finsight/internal/models"
)

type yearKey struct {
	year      int
	statement models.StatementType
}

// Normalize selects, per year and statement type, the row with the highest quarter and
// flattens the three statements into AnnualSnapshots ordered by year.
//
// Duplicate rows for the same (year, quarter, statement) resolve deterministically:
// the highest Revision wins, then the latest ImportedAt, then the row seen last.
// Rows belonging to other companies are ignored. No rows yields an empty series.
func Normalize(companyCode string, records []models.StatementRecord) []models.AnnualSnapshot {
	code := models.NormalizeCompanyCode(companyCode)

	selected := make(map[yearKey]*models.StatementRecord)
	years := make(map[int]bool)

	for i := range records {
		rec := &records[i]
		if models.NormalizeCompanyCode(rec.CompanyCode) != code {
			continue
		}
		key := yearKey{year: rec.Year, statement: rec.Statement}
		if current, ok := selected[key]; !ok || supersedes(rec, current) {
			selected[key] = rec
		}
		years[rec.Year] = true
	}

	if len(years) == 0 {
		return []models.AnnualSnapshot{}
	}

	ordered := make([]int, 0, len(years))
	for y := range years {
		ordered = append(ordered, y)
	}
	sort.Ints(ordered)

	snapshots := make([]models.AnnualSnapshot, 0, len(ordered))
	for _, year := range ordered {
		snapshots = append(snapshots, buildSnapshot(code, year, selected))
	}
	return snapshots
}

// supersedes reports whether candidate replaces current as the representative row
func supersedes(candidate, current *models.StatementRecord) bool {
	if candidate.Quarter != current.Quarter {
		return candidate.Quarter > current.Quarter
	}
	if candidate.Revision != current.Revision {
		return candidate.Revision > current.Revision
	}
	if !candidate.ImportedAt.Equal(current.ImportedAt) {
		return candidate.ImportedAt.After(current.ImportedAt)
	}
	// Later in input order wins
	return true
}

func buildSnapshot(code string, year int, selected map[yearKey]*models.StatementRecord) models.AnnualSnapshot {
	snap := models.AnnualSnapshot{
		CompanyCode: code,
		Year:        year,
		Quarters:    make(map[models.StatementType]int),
	}
	missing := []string{}

	read := func(t models.StatementType) func(item string) float64 {
		rec := selected[yearKey{year: year, statement: t}]
		if rec != nil {
			snap.Sources = append(snap.Sources, t)
			snap.Quarters[t] = rec.Quarter
		}
		return func(item string) float64 {
			if rec == nil {
				missing = append(missing, item)
				return 0
			}
			v, ok := rec.Value(item)
			if !ok {
				missing = append(missing, item)
				return 0
			}
			return v
		}
	}

	bs := read(models.StatementBalanceSheet)
	snap.BalanceSheet = models.BalanceSheetFacts{
		TotalAssets:      bs(models.ItemTotalAssets),
		CurrentAssets:    bs(models.ItemCurrentAssets),
		NonCurrentAssets: bs(models.ItemNonCurrentAssets),
		Liabilities:      bs(models.ItemLiabilities),
		Equity:           bs(models.ItemEquity),
		Inventory:        bs(models.ItemInventory),
		ShortTermDebt:    bs(models.ItemShortTermDebt),
		Receivables:      bs(models.ItemReceivables),
		Cash:             bs(models.ItemCash),
		RetainedEarnings: bs(models.ItemRetainedEarnings),
	}

	is := read(models.StatementIncome)
	snap.Income = models.IncomeFacts{
		Revenue:         is(models.ItemRevenue),
		GrossProfit:     is(models.ItemGrossProfit),
		OperatingProfit: is(models.ItemOperatingProfit),
		ProfitBeforeTax: is(models.ItemProfitBeforeTax),
		NetProfit:       is(models.ItemNetProfit),
		InterestExpense: is(models.ItemInterestExpense),
	}

	cf := read(models.StatementCashFlow)
	snap.CashFlow = models.CashFlowFacts{
		OperatingCashFlow: cf(models.ItemOperatingCashFlow),
		InvestingCashFlow: cf(models.ItemInvestingCashFlow),
		FinancingCashFlow: cf(models.ItemFinancingCashFlow),
		NetCashFlow:       cf(models.ItemNetCashFlow),
		Depreciation:      cf(models.ItemDepreciation),
	}

	deriveEarnings(&snap)

	sort.Strings(missing)
	if len(missing) > 0 {
		snap.Missing = missing
	}
	return snap
}

// deriveEarnings fills EBIT and EBITDA.
// EBIT stays 0 and unknown when both profit before tax and interest are zero.
func deriveEarnings(snap *models.AnnualSnapshot) {
	pbt := snap.Income.ProfitBeforeTax
	interest := snap.Income.InterestExpense
	if pbt != 0 || interest != 0 {
		snap.Income.EBIT = pbt + interest
		snap.EBITKnown = true
	}
	snap.Income.EBITDA = snap.Income.EBIT + snap.CashFlow.Depreciation
}

// Window keeps the most recent maxYears snapshots. A non-positive maxYears keeps all.
func Window(snapshots []models.AnnualSnapshot, maxYears int) []models.AnnualSnapshot {
	if maxYears <= 0 || len(snapshots) <= maxYears {
		return snapshots
	}
	return snapshots[len(snapshots)-maxYears:]
}

// Latest returns the most recent snapshot, or nil for an empty series
func Latest(snapshots []models.AnnualSnapshot) *models.AnnualSnapshot {
	if len(snapshots) == 0 {
		return nil
	}
	return &snapshots[len(snapshots)-1]
}

// Series extracts one value per snapshot in year order
func Series(snapshots []models.AnnualSnapshot, value func(s *models.AnnualSnapshot) float64) []float64 {
	out := make([]float64, len(snapshots))
	for i := range snapshots {
		out[i] = value(&snapshots[i])
	}
	return out
}
