// Package mocks provides testify mocks of the storage and service interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ternarybob/finsight/internal/interfaces"
	"github.com/ternarybob/finsight/internal/models"
)

// StorageManager is a mock implementation of interfaces.StorageManager
// wired to the individual storage mocks
type StorageManager struct {
	Companies  *CompanyStorage
	Statements *StatementStorage
	Benchmarks *BenchmarkStorage
	Quotes     *QuoteStorage
}

// NewStorageManager creates a manager with fresh storage mocks
func NewStorageManager() *StorageManager {
	return &StorageManager{
		Companies:  &CompanyStorage{},
		Statements: &StatementStorage{},
		Benchmarks: &BenchmarkStorage{},
		Quotes:     &QuoteStorage{},
	}
}

func (m *StorageManager) CompanyStorage() interfaces.CompanyStorage     { return m.Companies }
func (m *StorageManager) StatementStorage() interfaces.StatementStorage { return m.Statements }
func (m *StorageManager) BenchmarkStorage() interfaces.BenchmarkStorage { return m.Benchmarks }
func (m *StorageManager) QuoteStorage() interfaces.QuoteStorage         { return m.Quotes }
func (m *StorageManager) DB() interface{}                               { return nil }
func (m *StorageManager) Close() error                                  { return nil }

// CompanyStorage is a mock implementation of interfaces.CompanyStorage
type CompanyStorage struct {
	mock.Mock
}

func (m *CompanyStorage) SaveCompany(ctx context.Context, company *models.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *CompanyStorage) GetCompany(ctx context.Context, code string) (*models.Company, error) {
	args := m.Called(ctx, code)
	if company, ok := args.Get(0).(*models.Company); ok {
		return company, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CompanyStorage) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	args := m.Called(ctx)
	if companies, ok := args.Get(0).([]*models.Company); ok {
		return companies, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CompanyStorage) ListCompaniesBySector(ctx context.Context, sector string) ([]*models.Company, error) {
	args := m.Called(ctx, sector)
	if companies, ok := args.Get(0).([]*models.Company); ok {
		return companies, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CompanyStorage) DeleteCompany(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// StatementStorage is a mock implementation of interfaces.StatementStorage
type StatementStorage struct {
	mock.Mock
}

func (m *StatementStorage) SaveStatements(ctx context.Context, records []*models.StatementRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *StatementStorage) GetStatements(ctx context.Context, companyCode string) ([]models.StatementRecord, error) {
	args := m.Called(ctx, companyCode)
	if records, ok := args.Get(0).([]models.StatementRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StatementStorage) CountStatements(ctx context.Context, companyCode string) (int, error) {
	args := m.Called(ctx, companyCode)
	return args.Int(0), args.Error(1)
}

func (m *StatementStorage) ListCompanyCodes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if codes, ok := args.Get(0).([]string); ok {
		return codes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StatementStorage) DeleteStatements(ctx context.Context, companyCode string) error {
	args := m.Called(ctx, companyCode)
	return args.Error(0)
}

// BenchmarkStorage is a mock implementation of interfaces.BenchmarkStorage
type BenchmarkStorage struct {
	mock.Mock
}

func (m *BenchmarkStorage) SaveBenchmark(ctx context.Context, benchmark *models.SectorBenchmark) error {
	args := m.Called(ctx, benchmark)
	return args.Error(0)
}

func (m *BenchmarkStorage) GetBenchmark(ctx context.Context, sector string) (*models.SectorBenchmark, error) {
	args := m.Called(ctx, sector)
	if benchmark, ok := args.Get(0).(*models.SectorBenchmark); ok {
		return benchmark, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BenchmarkStorage) ListBenchmarks(ctx context.Context) ([]*models.SectorBenchmark, error) {
	args := m.Called(ctx)
	if benchmarks, ok := args.Get(0).([]*models.SectorBenchmark); ok {
		return benchmarks, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BenchmarkStorage) DeleteBenchmark(ctx context.Context, sector string) error {
	args := m.Called(ctx, sector)
	return args.Error(0)
}

// QuoteStorage is a mock implementation of interfaces.QuoteStorage
type QuoteStorage struct {
	mock.Mock
}

func (m *QuoteStorage) SaveQuote(ctx context.Context, quote *models.MarketQuote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *QuoteStorage) GetQuote(ctx context.Context, companyCode string) (*models.MarketQuote, error) {
	args := m.Called(ctx, companyCode)
	if quote, ok := args.Get(0).(*models.MarketQuote); ok {
		return quote, args.Error(1)
	}
	return nil, args.Error(1)
}
