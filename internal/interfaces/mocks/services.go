package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ternarybob/finsight/internal/models"
)

// BenchmarkService is a mock implementation of interfaces.BenchmarkService
type BenchmarkService struct {
	mock.Mock
}

func (m *BenchmarkService) Get(sector string) *models.SectorBenchmark {
	args := m.Called(sector)
	if b, ok := args.Get(0).(*models.SectorBenchmark); ok {
		return b
	}
	return nil
}

func (m *BenchmarkService) All() []models.SectorBenchmark {
	args := m.Called()
	if all, ok := args.Get(0).([]models.SectorBenchmark); ok {
		return all
	}
	return nil
}

func (m *BenchmarkService) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *BenchmarkService) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// ReportService is a mock implementation of interfaces.ReportService
type ReportService struct {
	mock.Mock
}

func (m *ReportService) Generate(ctx context.Context, companyCode string, opts models.ReportOptions) (*models.Report, error) {
	args := m.Called(ctx, companyCode, opts)
	if r, ok := args.Get(0).(*models.Report); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReportService) Ratios(ctx context.Context, companyCode string) ([]models.RatioSet, error) {
	args := m.Called(ctx, companyCode)
	if series, ok := args.Get(0).([]models.RatioSet); ok {
		return series, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReportService) Statements(ctx context.Context, companyCode string, year int) (*models.AnnualSnapshot, error) {
	args := m.Called(ctx, companyCode, year)
	if snap, ok := args.Get(0).(*models.AnnualSnapshot); ok {
		return snap, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReportService) Compare(ctx context.Context, companyCodes, sectors []string) (*models.Comparison, error) {
	args := m.Called(ctx, companyCodes, sectors)
	if c, ok := args.Get(0).(*models.Comparison); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReportService) Sector(ctx context.Context, sector string) (*models.SectorAnalysis, error) {
	args := m.Called(ctx, sector)
	if a, ok := args.Get(0).(*models.SectorAnalysis); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

// ImportService is a mock implementation of interfaces.ImportService
type ImportService struct {
	mock.Mock
}

func (m *ImportService) ImportFile(ctx context.Context, path string) (*models.ImportResult, error) {
	args := m.Called(ctx, path)
	if r, ok := args.Get(0).(*models.ImportResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ImportService) ImportBundle(ctx context.Context, bundle *models.ImportBundle) (*models.ImportResult, error) {
	args := m.Called(ctx, bundle)
	if r, ok := args.Get(0).(*models.ImportResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
