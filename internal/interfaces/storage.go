package interfaces

import (
	"context"
	"errors"

	"github.com/ternarybob/finsight/internal/models"
)

// ErrNotFound is returned by storage lookups when no record matches
var ErrNotFound = errors.New("not found")

// CompanyStorage - interface for company descriptor persistence
type CompanyStorage interface {
	SaveCompany(ctx context.Context, company *models.Company) error
	GetCompany(ctx context.Context, code string) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]*models.Company, error)
	ListCompaniesBySector(ctx context.Context, sector string) ([]*models.Company, error)
	DeleteCompany(ctx context.Context, code string) error
}

// StatementStorage - interface for raw statement row persistence.
// Rows are keyed by models.StatementKey; saving a row with an existing key replaces it.
type StatementStorage interface {
	SaveStatements(ctx context.Context, records []*models.StatementRecord) error
	GetStatements(ctx context.Context, companyCode string) ([]models.StatementRecord, error)
	CountStatements(ctx context.Context, companyCode string) (int, error)
	ListCompanyCodes(ctx context.Context) ([]string, error)
	DeleteStatements(ctx context.Context, companyCode string) error
}

// BenchmarkStorage - interface for sector benchmark persistence
type BenchmarkStorage interface {
	SaveBenchmark(ctx context.Context, benchmark *models.SectorBenchmark) error
	GetBenchmark(ctx context.Context, sector string) (*models.SectorBenchmark, error)
	ListBenchmarks(ctx context.Context) ([]*models.SectorBenchmark, error)
	DeleteBenchmark(ctx context.Context, sector string) error
}

// QuoteStorage - interface for caller-supplied market quotes
type QuoteStorage interface {
	SaveQuote(ctx context.Context, quote *models.MarketQuote) error
	GetQuote(ctx context.Context, companyCode string) (*models.MarketQuote, error)
}

// StorageManager - interface for managing all storage backends
type StorageManager interface {
	CompanyStorage() CompanyStorage
	StatementStorage() StatementStorage
	BenchmarkStorage() BenchmarkStorage
	QuoteStorage() QuoteStorage
	DB() interface{}
	Close() error
}
