package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/interfaces"
	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/normalize"
	"github.com/ternarybob/finsight/internal/services/ratios"
)

// ErrCompanyNotFound is returned when a company has no statement rows
var ErrCompanyNotFound = errors.New("company not found")

// Service generates reports for stored companies
type Service struct {
	engine     *Engine
	storage    interfaces.StorageManager
	benchmarks interfaces.BenchmarkService
	logger     arbor.ILogger
}

// NewService creates a storage-backed report service
func NewService(engine *Engine, storage interfaces.StorageManager, benchmarks interfaces.BenchmarkService, logger arbor.ILogger) *Service {
	return &Service{
		engine:     engine,
		storage:    storage,
		benchmarks: benchmarks,
		logger:     logger,
	}
}

// Generate loads the company, its statements, stored quote and sector benchmark,
// then runs the analysis
func (s *Service) Generate(ctx context.Context, companyCode string, opts models.ReportOptions) (*models.Report, error) {
	code := models.NormalizeCompanyCode(companyCode)

	rows, err := s.loadStatements(ctx, code)
	if err != nil {
		return nil, err
	}

	company, err := s.company(ctx, code)
	if err != nil {
		return nil, err
	}

	stored, err := s.storage.QuoteStorage().GetQuote(ctx, code)
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return nil, fmt.Errorf("failed to load quote for %s: %w", code, err)
	}

	var sector *models.SectorBenchmark
	if name := company.SectorName(); name != "" && s.benchmarks != nil {
		sector = s.benchmarks.Get(name)
		if sector == nil {
			s.logger.Debug().Str("company", code).Str("sector", name).Msg("No published benchmark for sector")
		}
	}

	start := time.Now()
	report, err := s.engine.Analyze(ctx, Input{
		Company:    *company,
		Statements: rows,
		Sector:     sector,
		Quote:      opts.Quote(code, stored),
		MaxYears:   opts.MaxYears,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("company", code).
		Str("report_id", report.ID).
		Int("years", len(report.Years)).
		Dur("duration", time.Since(start)).
		Msg("Report generated")

	return report, nil
}

// Ratios returns the per-year ratio series of a company, limited to the configured window
func (s *Service) Ratios(ctx context.Context, companyCode string) ([]models.RatioSet, error) {
	code := models.NormalizeCompanyCode(companyCode)

	rows, err := s.loadStatements(ctx, code)
	if err != nil {
		return nil, err
	}

	snapshots := normalize.Window(normalize.Normalize(code, rows), s.engine.maxYears)
	return ratios.CalculateSeries(ctx, snapshots, s.engine.parallel)
}

// company returns the stored descriptor, or one carrying only the code
func (s *Service) company(ctx context.Context, code string) (*models.Company, error) {
	company, err := s.storage.CompanyStorage().GetCompany(ctx, code)
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		return &models.Company{Code: code}, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load company %s: %w", code, err)
	}
	return company, nil
}

func (s *Service) loadStatements(ctx context.Context, code string) ([]models.StatementRecord, error) {
	if code == "" {
		return nil, fmt.Errorf("company code is required: %w", ErrCompanyNotFound)
	}

	rows, err := s.storage.StatementStorage().GetStatements(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load statements for %s: %w", code, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", code, ErrCompanyNotFound)
	}
	return rows, nil
}
