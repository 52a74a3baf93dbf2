package factory

import (
	"github.com/skinai/skinai-backend/internal/adapters/artifact"
	"github.com/skinai/skinai-backend/internal/config"
	"github.com/skinai/skinai-backend/internal/core"
	"go.uber.org/zap"
)

// CatalogFactory loads the static product catalog.
type CatalogFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewCatalogFactory creates a new catalog factory
func NewCatalogFactory(cfg *config.Config, logger *zap.Logger) *CatalogFactory {
	return &CatalogFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateCatalog loads the product catalog, or nil when its file is
// missing; recommendation requests then fail with a catalog-not-loaded
// error.
func (f *CatalogFactory) CreateCatalog() *core.Catalog {
	path := f.cfg.GetCatalog().Path
	catalog, err := artifact.LoadCatalog(path)
	if err != nil {
		f.logger.Warn("Product catalog not loaded",
			zap.String("path", path),
			zap.Error(err))
		return nil
	}
	f.logger.Info("Product catalog loaded",
		zap.String("path", path),
		zap.Int("products", len(catalog.Products)))
	return catalog
}
