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

// CompanyStorage implements the CompanyStorage interface for Badger
type CompanyStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewCompanyStorage creates a new CompanyStorage instance
func NewCompanyStorage(db *BadgerDB, logger arbor.ILogger) interfaces.CompanyStorage {
	return &CompanyStorage{
		db:     db,
		logger: logger,
	}
}

func (s *CompanyStorage) SaveCompany(ctx context.Context, company *models.Company) error {
	company.Code = models.NormalizeCompanyCode(company.Code)
	if company.Code == "" {
		return fmt.Errorf("company code is required")
	}
	if company.UpdatedAt.IsZero() {
		company.UpdatedAt = time.Now()
	}
	if err := s.db.Store().Upsert(company.Code, company); err != nil {
		return fmt.Errorf("failed to save company: %w", err)
	}
	return nil
}

func (s *CompanyStorage) GetCompany(ctx context.Context, code string) (*models.Company, error) {
	var company models.Company
	if err := s.db.Store().Get(models.NormalizeCompanyCode(code), &company); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, fmt.Errorf("company %s: %w", code, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

func (s *CompanyStorage) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	var companies []models.Company
	if err := s.db.Store().Find(&companies, badgerhold.Where("Code").Ne("").SortBy("Code")); err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return toPointers(companies), nil
}

func (s *CompanyStorage) ListCompaniesBySector(ctx context.Context, sector string) ([]*models.Company, error) {
	var companies []models.Company
	query := badgerhold.Where("Sector").Eq(sector).Or(badgerhold.Where("Sector").Eq("").And("ICBLevel3").Eq(sector))
	if err := s.db.Store().Find(&companies, query.SortBy("Code")); err != nil {
		return nil, fmt.Errorf("failed to list companies for sector %s: %w", sector, err)
	}
	return toPointers(companies), nil
}

func (s *CompanyStorage) DeleteCompany(ctx context.Context, code string) error {
	if err := s.db.Store().Delete(models.NormalizeCompanyCode(code), &models.Company{}); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

func toPointers[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
