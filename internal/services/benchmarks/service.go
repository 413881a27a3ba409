package benchmarks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/common"
	"github.com/ternarybob/finsight/internal/interfaces"
	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/normalize"
	"github.com/ternarybob/finsight/internal/services/ratios"
)

// Service publishes the sector benchmark table.
// Readers always observe a complete table; Refresh builds a new one and swaps it in.
type Service struct {
	table     atomic.Pointer[Table]
	storage   interfaces.StorageManager
	config    common.BenchmarksConfig
	logger    arbor.ILogger
	refreshMu sync.Mutex
}

// NewService creates a benchmark service with an empty table
func NewService(storage interfaces.StorageManager, config common.BenchmarksConfig, logger arbor.ILogger) *Service {
	s := &Service{
		storage: storage,
		config:  config,
		logger:  logger,
	}
	s.table.Store(NewTable(nil))
	return s
}

// Table returns the current snapshot
func (s *Service) Table() *Table {
	return s.table.Load()
}

// Get returns the published benchmark of a sector, or nil
func (s *Service) Get(sector string) *models.SectorBenchmark {
	return s.table.Load().Get(sector)
}

// All returns every published benchmark ordered by sector
func (s *Service) All() []models.SectorBenchmark {
	return s.table.Load().All()
}

// Publish replaces the table with one built from benchmarks
func (s *Service) Publish(benchmarks []models.SectorBenchmark) {
	s.table.Store(NewTable(benchmarks))
}

// Load publishes the stored benchmarks
func (s *Service) Load(ctx context.Context) error {
	stored, err := s.storage.BenchmarkStorage().ListBenchmarks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load benchmarks: %w", err)
	}

	benchmarks := make([]models.SectorBenchmark, 0, len(stored))
	for _, b := range stored {
		benchmarks = append(benchmarks, *b)
	}
	s.Publish(benchmarks)

	s.logger.Info().Int("sectors", len(benchmarks)).Msg("Sector benchmarks loaded")
	return nil
}

// Refresh derives sector averages from the latest ratios of every stored company,
// merges them over stored benchmarks, persists them and publishes the new table.
// With derivation disabled it only reloads the stored benchmarks.
func (s *Service) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	if !s.config.Derive {
		return s.Load(ctx)
	}

	start := time.Now()
	bySector, err := s.latestRatiosBySector(ctx)
	if err != nil {
		return err
	}

	sectors := make([]string, 0, len(bySector))
	for sector := range bySector {
		sectors = append(sectors, sector)
	}
	sort.Strings(sectors)

	benchStore := s.storage.BenchmarkStorage()
	for _, sector := range sectors {
		if err := ctx.Err(); err != nil {
			return err
		}

		derived := CalculateSectorAverages(sector, bySector[sector])

		stored, err := benchStore.GetBenchmark(ctx, sector)
		if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
			return fmt.Errorf("failed to read benchmark %s: %w", sector, err)
		}

		merged := Merge(stored, derived)
		if err := benchStore.SaveBenchmark(ctx, &merged); err != nil {
			return fmt.Errorf("failed to save benchmark %s: %w", sector, err)
		}
	}

	if err := s.Load(ctx); err != nil {
		return err
	}

	s.logger.Info().
		Int("derived_sectors", len(sectors)).
		Dur("duration", time.Since(start)).
		Msg("Sector benchmarks refreshed")
	return nil
}

// latestRatiosBySector computes the latest-year ratios of every company with a sector
func (s *Service) latestRatiosBySector(ctx context.Context) (map[string][]models.RatioSet, error) {
	companies, err := s.storage.CompanyStorage().ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	out := make(map[string][]models.RatioSet)
	for _, company := range companies {
		sector := company.SectorName()
		if sector == "" {
			continue
		}

		rows, err := s.storage.StatementStorage().GetStatements(ctx, company.Code)
		if err != nil {
			return nil, fmt.Errorf("failed to load statements for %s: %w", company.Code, err)
		}

		latest := normalize.Latest(normalize.Normalize(company.Code, rows))
		if latest == nil {
			s.logger.Debug().Str("company", company.Code).Msg("No statements, skipped in sector averages")
			continue
		}
		out[sector] = append(out[sector], ratios.Calculate(*latest))
	}
	return out, nil
}
