package interfaces

import (
	"context"

	"github.com/ternarybob/finsight/internal/models"
)

// ReportService generates financial analysis reports for stored companies
type ReportService interface {
	// Generate returns report.ErrCompanyNotFound when the company has no statement rows
	Generate(ctx context.Context, companyCode string, opts models.ReportOptions) (*models.Report, error)

	// Ratios returns the per-year ratio series of a company
	Ratios(ctx context.Context, companyCode string) ([]models.RatioSet, error)

	// Statements returns the latest-quarter snapshot of one year
	Statements(ctx context.Context, companyCode string, year int) (*models.AnnualSnapshot, error)

	// Compare lines up the latest figures of companies and sector benchmarks
	Compare(ctx context.Context, companyCodes, sectors []string) (*models.Comparison, error)

	// Sector counts the companies of a sector and ranks them by ROE
	Sector(ctx context.Context, sector string) (*models.SectorAnalysis, error)
}

// BenchmarkService publishes the sector benchmark table
type BenchmarkService interface {
	// Get returns the benchmark for a sector, or nil
	Get(sector string) *models.SectorBenchmark

	// All returns every published benchmark ordered by sector
	All() []models.SectorBenchmark

	// Load publishes the stored benchmarks
	Load(ctx context.Context) error

	// Refresh derives sector averages from stored companies, persists and publishes them
	Refresh(ctx context.Context) error
}

// ImportService loads statement bundles into storage
type ImportService interface {
	ImportFile(ctx context.Context, path string) (*models.ImportResult, error)
	ImportBundle(ctx context.Context, bundle *models.ImportBundle) (*models.ImportResult, error)
}
