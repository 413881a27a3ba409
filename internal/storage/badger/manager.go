package badger

import (
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/common"
	"github.com/ternarybob/finsight/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger
type Manager struct {
	db        *BadgerDB
	company   interfaces.CompanyStorage
	statement interfaces.StatementStorage
	benchmark interfaces.BenchmarkStorage
	quote     interfaces.QuoteStorage
	logger    arbor.ILogger
}

// NewManager creates a new Badger storage manager
func NewManager(logger arbor.ILogger, config *common.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, config)
	if err != nil {
		return nil, err
	}

	manager := newManager(db, logger)
	logger.Info().Str("path", config.Path).Msg("Badger storage manager initialized")
	return manager, nil
}

func newManager(db *BadgerDB, logger arbor.ILogger) *Manager {
	return &Manager{
		db:        db,
		company:   NewCompanyStorage(db, logger),
		statement: NewStatementStorage(db, logger),
		benchmark: NewBenchmarkStorage(db, logger),
		quote:     NewQuoteStorage(db, logger),
		logger:    logger,
	}
}

// CompanyStorage returns the Company storage interface
func (m *Manager) CompanyStorage() interfaces.CompanyStorage {
	return m.company
}

// StatementStorage returns the Statement storage interface
func (m *Manager) StatementStorage() interfaces.StatementStorage {
	return m.statement
}

// BenchmarkStorage returns the Benchmark storage interface
func (m *Manager) BenchmarkStorage() interfaces.BenchmarkStorage {
	return m.benchmark
}

// QuoteStorage returns the Quote storage interface
func (m *Manager) QuoteStorage() interfaces.QuoteStorage {
	return m.quote
}

// DB returns the underlying database connection
func (m *Manager) DB() interface{} {
	if m.db != nil {
		return m.db.Store()
	}
	return nil
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
