// Package importer loads statement bundles into storage.
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/common"
	"github.com/ternarybob/finsight/internal/interfaces"
	"github.com/ternarybob/finsight/internal/models"
)

// ErrEmptyBundle is returned for a bundle with nothing to import
var ErrEmptyBundle = errors.New("bundle has no statements, benchmarks or quote")

// Service validates bundles and writes them to storage
type Service struct {
	storage    interfaces.StorageManager
	benchmarks interfaces.BenchmarkService
	validate   *validator.Validate
	logger     arbor.ILogger
}

// NewService creates an importer. Imported benchmarks are republished through
// benchmarks when it is non-nil.
func NewService(storage interfaces.StorageManager, benchmarks interfaces.BenchmarkService, logger arbor.ILogger) *Service {
	return &Service{
		storage:    storage,
		benchmarks: benchmarks,
		validate:   validator.New(),
		logger:     logger,
	}
}

// ImportFile reads, parses and imports a bundle file. The format follows the extension.
func (s *Service) ImportFile(ctx context.Context, path string) (*models.ImportResult, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle %s: %w", path, err)
	}

	bundle, err := ParseBundle(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	result, err := s.ImportBundle(ctx, bundle)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	result.Source = path
	return result, nil
}

// ImportBundle validates a bundle and saves its company, statements, benchmarks and quote.
// Nothing is written when validation fails.
func (s *Service) ImportBundle(ctx context.Context, bundle *models.ImportBundle) (*models.ImportResult, error) {
	if bundle == nil {
		return nil, ErrEmptyBundle
	}

	code := models.NormalizeCompanyCode(bundle.Company.Code)
	hasCompany := code != ""
	if !hasCompany && len(bundle.Statements) == 0 && bundle.Quote == nil && len(bundle.Benchmarks) > 0 {
		// Benchmark-only bundle
		if err := s.validate.Var(bundle.Benchmarks, "dive"); err != nil {
			return nil, fmt.Errorf("invalid bundle: %w", err)
		}
	} else if err := s.validate.Struct(bundle); err != nil {
		return nil, fmt.Errorf("invalid bundle: %w", err)
	}
	if len(bundle.Statements) == 0 && len(bundle.Benchmarks) == 0 && bundle.Quote == nil {
		return nil, ErrEmptyBundle
	}

	now := time.Now()
	result := &models.ImportResult{
		ID:          common.NewImportID(),
		CompanyCode: code,
		ImportedAt:  now,
	}

	records := make([]*models.StatementRecord, 0, len(bundle.Statements))
	for _, st := range bundle.Statements {
		record, skipped := toRecord(code, st)
		if err := s.validate.Struct(record); err != nil {
			return nil, fmt.Errorf("invalid statement %s %d: %w", st.Statement, st.Year, err)
		}
		record.ImportedAt = now
		records = append(records, record)
		result.Skipped = append(result.Skipped, skipped...)
	}
	sort.Strings(result.Skipped)

	if hasCompany {
		company := bundle.Company
		company.Code = code
		company.UpdatedAt = now
		if err := s.storage.CompanyStorage().SaveCompany(ctx, &company); err != nil {
			return nil, fmt.Errorf("failed to save company %s: %w", code, err)
		}
	}

	if len(records) > 0 {
		if err := s.storage.StatementStorage().SaveStatements(ctx, records); err != nil {
			return nil, fmt.Errorf("failed to save statements for %s: %w", code, err)
		}
		result.Statements = len(records)
	}

	for i := range bundle.Benchmarks {
		bench := bundle.Benchmarks[i].Clone()
		if bench.Source == "" {
			bench.Source = models.BenchmarkSourceImported
		}
		bench.UpdatedAt = now
		if err := s.storage.BenchmarkStorage().SaveBenchmark(ctx, &bench); err != nil {
			return nil, fmt.Errorf("failed to save benchmark %s: %w", bench.Sector, err)
		}
		result.Benchmarks++
	}

	if result.Benchmarks > 0 && s.benchmarks != nil {
		// Stored rows are the source of truth; a failed republish waits for the next load
		if err := s.benchmarks.Load(ctx); err != nil {
			s.logger.Warn().
				Err(err).
				Int("benchmarks", result.Benchmarks).
				Msg("Failed to republish sector benchmarks after import")
		}
	}

	if bundle.Quote != nil {
		quote := *bundle.Quote
		quote.CompanyCode = code
		if quote.AsOf.IsZero() {
			quote.AsOf = now
		}
		if err := s.storage.QuoteStorage().SaveQuote(ctx, &quote); err != nil {
			return nil, fmt.Errorf("failed to save quote for %s: %w", code, err)
		}
		result.Quote = true
	}

	s.logger.Info().
		Str("import_id", result.ID).
		Str("company", code).
		Int("statements", result.Statements).
		Int("benchmarks", result.Benchmarks).
		Int("skipped_items", len(result.Skipped)).
		Msg("Bundle imported")

	return result, nil
}
