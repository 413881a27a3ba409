package badger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/finsight/internal/interfaces"
	"github.com/ternarybob/finsight/internal/models"
)

// StatementStorage implements the StatementStorage interface for Badger
type StatementStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewStatementStorage creates a new StatementStorage instance
func NewStatementStorage(db *BadgerDB, logger arbor.ILogger) interfaces.StatementStorage {
	return &StatementStorage{
		db:     db,
		logger: logger,
	}
}

// SaveStatements upserts all rows in a single transaction
func (s *StatementStorage) SaveStatements(ctx context.Context, records []*models.StatementRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	err := s.db.Store().Badger().Update(func(tx *badger.Txn) error {
		for _, rec := range records {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec.CompanyCode = models.NormalizeCompanyCode(rec.CompanyCode)
			rec.ID = models.StatementKey(rec.CompanyCode, rec.Statement, rec.Year, rec.Quarter, rec.Revision)
			if rec.ImportedAt.IsZero() {
				rec.ImportedAt = now
			}
			if err := s.db.Store().TxUpsert(tx, rec.ID, rec); err != nil {
				return fmt.Errorf("upsert %s: %w", rec.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save statements: %w", err)
	}

	s.logger.Debug().Int("count", len(records)).Msg("Statements saved")
	return nil
}

// GetStatements returns every row of a company ordered by year, quarter, statement and revision
func (s *StatementStorage) GetStatements(ctx context.Context, companyCode string) ([]models.StatementRecord, error) {
	var records []models.StatementRecord
	query := badgerhold.Where("CompanyCode").Eq(models.NormalizeCompanyCode(companyCode)).SortBy("Year", "Quarter")
	if err := s.db.Store().Find(&records, query); err != nil {
		return nil, fmt.Errorf("failed to get statements: %w", err)
	}
	// Stable order so duplicate resolution never depends on storage iteration
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Quarter != b.Quarter {
			return a.Quarter < b.Quarter
		}
		if a.Statement != b.Statement {
			return a.Statement < b.Statement
		}
		return a.Revision < b.Revision
	})
	return records, nil
}

func (s *StatementStorage) CountStatements(ctx context.Context, companyCode string) (int, error) {
	count, err := s.db.Store().Count(&models.StatementRecord{},
		badgerhold.Where("CompanyCode").Eq(models.NormalizeCompanyCode(companyCode)))
	if err != nil {
		return 0, fmt.Errorf("failed to count statements: %w", err)
	}
	return int(count), nil
}

// ListCompanyCodes returns the distinct company codes with stored rows
func (s *StatementStorage) ListCompanyCodes(ctx context.Context) ([]string, error) {
	groups, err := s.db.Store().FindAggregate(&models.StatementRecord{}, nil, "CompanyCode")
	if err != nil {
		return nil, fmt.Errorf("failed to list statement companies: %w", err)
	}

	codes := make([]string, 0, len(groups))
	for _, g := range groups {
		var code string
		g.Group(&code)
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

func (s *StatementStorage) DeleteStatements(ctx context.Context, companyCode string) error {
	query := badgerhold.Where("CompanyCode").Eq(models.NormalizeCompanyCode(companyCode))
	if err := s.db.Store().DeleteMatching(&models.StatementRecord{}, query); err != nil {
		return fmt.Errorf("failed to delete statements: %w", err)
	}
	return nil
}
