package badger

import (
	"fmt"
	"os"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/finsight/internal/common"
)

// MemoryPath as storage.badger.path keeps the whole store in memory
const MemoryPath = ":memory:"

// BadgerDB owns the badgerhold store shared by the company, statement, benchmark and quote stores
type BadgerDB struct {
	store  *badgerhold.Store
	logger arbor.ILogger
	path   string
}

// NewBadgerDB opens the store at config.Path. With ResetOnStartup the directory is
// wiped first, so every run starts from an empty statement history.
func NewBadgerDB(logger arbor.ILogger, config *common.BadgerConfig) (*BadgerDB, error) {
	options := badgerhold.DefaultOptions
	options.Logger = nil // badger's internal logger is noisy; open/close are logged here

	inMemory := config.Path == MemoryPath
	if inMemory {
		options.InMemory = true
	} else {
		if err := prepareDir(logger, config); err != nil {
			return nil, err
		}
		options.Dir = config.Path
		options.ValueDir = config.Path
	}

	store, err := badgerhold.Open(options)
	if err != nil {
		logger.Error().Err(err).Str("path", config.Path).Msg("Failed to open statement store")
		return nil, fmt.Errorf("failed to open badger store at %s: %w", config.Path, err)
	}

	logger.Debug().
		Str("path", config.Path).
		Bool("in_memory", inMemory).
		Msg("Statement store opened")

	return &BadgerDB{
		store:  store,
		logger: logger,
		path:   config.Path,
	}, nil
}

func prepareDir(logger arbor.ILogger, config *common.BadgerConfig) error {
	if config.ResetOnStartup {
		if err := os.RemoveAll(config.Path); err != nil {
			return fmt.Errorf("failed to reset store at %s: %w", config.Path, err)
		}
		logger.Info().Str("path", config.Path).Msg("Statement store reset (reset_on_startup)")
	}
	if err := os.MkdirAll(config.Path, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory %s: %w", config.Path, err)
	}
	return nil
}

// Store returns the underlying badgerhold store
func (b *BadgerDB) Store() *badgerhold.Store {
	return b.store
}

// Close closes the store. Closing twice is a no-op.
func (b *BadgerDB) Close() error {
	if b.store == nil {
		return nil
	}
	err := b.store.Close()
	b.store = nil
	if b.logger != nil {
		b.logger.Debug().Str("path", b.path).Msg("Statement store closed")
	}
	return err
}
