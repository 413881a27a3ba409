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

// QuoteStorage implements the QuoteStorage interface for Badger
type QuoteStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewQuoteStorage creates a new QuoteStorage instance
func NewQuoteStorage(db *BadgerDB, logger arbor.ILogger) interfaces.QuoteStorage {
	return &QuoteStorage{
		db:     db,
		logger: logger,
	}
}

// SaveQuote stores the latest quote of a company, replacing any previous one
func (s *QuoteStorage) SaveQuote(ctx context.Context, quote *models.MarketQuote) error {
	quote.CompanyCode = models.NormalizeCompanyCode(quote.CompanyCode)
	if quote.CompanyCode == "" {
		return fmt.Errorf("quote company code is required")
	}
	if quote.AsOf.IsZero() {
		quote.AsOf = time.Now()
	}
	if err := s.db.Store().Upsert(quote.CompanyCode, quote); err != nil {
		return fmt.Errorf("failed to save quote: %w", err)
	}
	return nil
}

func (s *QuoteStorage) GetQuote(ctx context.Context, companyCode string) (*models.MarketQuote, error) {
	var quote models.MarketQuote
	if err := s.db.Store().Get(models.NormalizeCompanyCode(companyCode), &quote); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, fmt.Errorf("quote %s: %w", companyCode, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return &quote, nil
}
