package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/finsight/internal/interfaces"
	"github.com/ternarybob/finsight/internal/models"
)

// BenchmarkStorage implements the BenchmarkStorage interface for Badger
type BenchmarkStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewBenchmarkStorage creates a new BenchmarkStorage instance
func NewBenchmarkStorage(db *BadgerDB, logger arbor.ILogger) interfaces.BenchmarkStorage {
	return &BenchmarkStorage{
		db:     db,
		logger: logger,
	}
}

func (s *BenchmarkStorage) SaveBenchmark(ctx context.Context, benchmark *models.SectorBenchmark) error {
	if benchmark.Sector == "" {
		return fmt.Errorf("benchmark sector is required")
	}
	if benchmark.UpdatedAt.IsZero() {
		benchmark.UpdatedAt = time.Now()
	}
	if err := s.db.Store().Upsert(benchmark.Sector, benchmark); err != nil {
		return fmt.Errorf("failed to save benchmark: %w", err)
	}
	return nil
}

func (s *BenchmarkStorage) GetBenchmark(ctx context.Context, sector string) (*models.SectorBenchmark, error) {
	var benchmark models.SectorBenchmark
	if err := s.db.Store().Get(sector, &benchmark); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, fmt.Errorf("benchmark %s: %w", sector, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get benchmark: %w", err)
	}
	return &benchmark, nil
}

func (s *BenchmarkStorage) ListBenchmarks(ctx context.Context) ([]*models.SectorBenchmark, error) {
	var benchmarks []models.SectorBenchmark
	if err := s.db.Store().Find(&benchmarks, badgerhold.Where("Sector").Ne("").SortBy("Sector")); err != nil {
		return nil, fmt.Errorf("failed to list benchmarks: %w", err)
	}
	return toPointers(benchmarks), nil
}

func (s *BenchmarkStorage) DeleteBenchmark(ctx context.Context, sector string) error {
	if err := s.db.Store().Delete(sector, &models.SectorBenchmark{}); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete benchmark: %w", err)
	}
	return nil
}
