package factory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skinai/skinai-backend/internal/adapters/store"
	"github.com/skinai/skinai-backend/internal/config"
	"github.com/skinai/skinai-backend/internal/core"
	"go.uber.org/zap"
)

// StoreFactory creates account repositories based on configuration
type StoreFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewStoreFactory creates a new store factory
func NewStoreFactory(cfg *config.Config, logger *zap.Logger) *StoreFactory {
	return &StoreFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateAccountRepository creates an account repository based on the
// configuration
func (f *StoreFactory) CreateAccountRepository() (core.AccountRepository, error) {
	storeCfg := f.cfg.GetStore()

	switch storeCfg.Type {
	case "memory":
		return store.NewMemoryStore(f.logger), nil
	case "sqlite":
		// Ensure directory exists
		if dir := filepath.Dir(storeCfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
			}
		}
		return store.NewSQLiteStore(storeCfg.SQLitePath, f.logger)
	case "mysql":
		return store.NewMySQLStore(storeCfg.MySQLDSN, f.logger)
	case "postgres":
		return store.NewPostgresStore(context.Background(), storeCfg.PostgresDSN, f.logger)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", storeCfg.Type)
	}
}
