package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/finmath"
	"github.com/ternarybob/finsight/internal/services/normalize"
	"github.com/ternarybob/finsight/internal/services/ratios"
)

var (
	// ErrSectorNotFound is returned for a sector with no stored companies and no benchmark
	ErrSectorNotFound = errors.New("sector not found")
	// ErrYearNotFound is returned when a company has no statements for the requested year
	ErrYearNotFound = errors.New("year not found")
	// ErrInvalidComparison is returned for an empty or oversized comparison request
	ErrInvalidComparison = errors.New("invalid comparison")
)

const (
	// TopSectorCompanies bounds the ranking of a sector analysis
	TopSectorCompanies = 10
	// MaxCompareEntities bounds the companies plus sectors of one comparison
	MaxCompareEntities = 5
)

// Statements returns the snapshot of one year, built from that year's latest-quarter statements
func (s *Service) Statements(ctx context.Context, companyCode string, year int) (*models.AnnualSnapshot, error) {
	code := models.NormalizeCompanyCode(companyCode)

	rows, err := s.loadStatements(ctx, code)
	if err != nil {
		return nil, err
	}

	snapshots := normalize.Normalize(code, rows)
	for i := range snapshots {
		if snapshots[i].Year == year {
			return &snapshots[i], nil
		}
	}
	return nil, fmt.Errorf("%s %d: %w", code, year, ErrYearNotFound)
}

// Compare returns the latest snapshot and ratios of each company and the published
// benchmark of each sector. Duplicates are dropped; order follows the request.
func (s *Service) Compare(ctx context.Context, companyCodes, sectors []string) (*models.Comparison, error) {
	codes := unique(companyCodes, models.NormalizeCompanyCode)
	names := unique(sectors, strings.TrimSpace)

	switch n := len(codes) + len(names); {
	case n == 0:
		return nil, fmt.Errorf("no companies or sectors given: %w", ErrInvalidComparison)
	case n > MaxCompareEntities:
		return nil, fmt.Errorf("%d entries exceed the limit of %d: %w", n, MaxCompareEntities, ErrInvalidComparison)
	}

	out := &models.Comparison{
		Companies: make([]models.CompanyComparison, 0, len(codes)),
		Sectors:   make([]models.SectorBenchmark, 0, len(names)),
	}

	for _, code := range codes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := s.loadStatements(ctx, code)
		if err != nil {
			return nil, err
		}
		company, err := s.company(ctx, code)
		if err != nil {
			return nil, err
		}

		snapshots := normalize.Normalize(code, rows)
		latest := normalize.Latest(snapshots)
		if latest == nil {
			return nil, fmt.Errorf("%s: %w", code, ErrCompanyNotFound)
		}

		out.Companies = append(out.Companies, models.CompanyComparison{
			Company:       *company,
			Year:          latest.Year,
			Snapshot:      *latest,
			Ratios:        ratios.Calculate(*latest),
			RevenueGrowth: revenueGrowth(snapshots),
		})
	}

	for _, name := range names {
		var bench *models.SectorBenchmark
		if s.benchmarks != nil {
			bench = s.benchmarks.Get(name)
		}
		if bench == nil {
			return nil, fmt.Errorf("%s: %w", name, ErrSectorNotFound)
		}
		out.Sectors = append(out.Sectors, bench.Clone())
	}

	s.logger.Debug().
		Int("companies", len(out.Companies)).
		Int("sectors", len(out.Sectors)).
		Msg("Comparison built")

	return out, nil
}

// Sector counts the stored companies of a sector and ranks those with statements by
// latest-year ROE, keeping the top TopSectorCompanies.
func (s *Service) Sector(ctx context.Context, sector string) (*models.SectorAnalysis, error) {
	name := strings.TrimSpace(sector)
	if name == "" {
		return nil, fmt.Errorf("sector is required: %w", ErrSectorNotFound)
	}

	companies, err := s.storage.CompanyStorage().ListCompaniesBySector(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies for sector %s: %w", name, err)
	}

	var bench *models.SectorBenchmark
	if s.benchmarks != nil {
		bench = s.benchmarks.Get(name)
	}
	if len(companies) == 0 && bench == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrSectorNotFound)
	}

	analysis := &models.SectorAnalysis{
		Sector:       name,
		CompanyCount: len(companies),
		Benchmark:    bench,
		TopCompanies: make([]models.SectorCompany, 0, len(companies)),
	}

	for _, company := range companies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := s.storage.StatementStorage().GetStatements(ctx, company.Code)
		if err != nil {
			return nil, fmt.Errorf("failed to load statements for %s: %w", company.Code, err)
		}

		snapshots := normalize.Normalize(company.Code, rows)
		latest := normalize.Latest(snapshots)
		if latest == nil {
			continue
		}

		set := ratios.Calculate(*latest)
		analysis.TopCompanies = append(analysis.TopCompanies, models.SectorCompany{
			Code:          company.Code,
			Name:          company.Name,
			Year:          latest.Year,
			ROE:           set.Get(models.RatioROE),
			ROA:           set.Get(models.RatioROA),
			ROS:           set.Get(models.RatioROS),
			RevenueGrowth: revenueGrowth(snapshots),
		})
	}

	top := analysis.TopCompanies
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].ROE != top[j].ROE {
			return top[i].ROE > top[j].ROE
		}
		return top[i].Code < top[j].Code
	})
	if len(top) > TopSectorCompanies {
		analysis.TopCompanies = top[:TopSectorCompanies]
	}

	return analysis, nil
}

// revenueGrowth is the latest year-over-year revenue growth in percent, 0 when either year is not positive
func revenueGrowth(snapshots []models.AnnualSnapshot) float64 {
	revenue := finmath.Tail(normalize.Series(snapshots, func(s *models.AnnualSnapshot) float64 {
		return s.Income.Revenue
	}), 2)
	rates := finmath.PositiveGrowthRates(revenue)
	if len(rates) == 0 {
		return 0
	}
	return rates[0] * 100
}

func unique(values []string, clean func(string) string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = clean(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
