package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/skinai/skinai-backend/internal/adapters/httpapi"
	"github.com/skinai/skinai-backend/internal/config"
	"github.com/skinai/skinai-backend/internal/core"
	"github.com/skinai/skinai-backend/internal/factory"
	"github.com/skinai/skinai-backend/internal/logging"
	"github.com/skinai/skinai-backend/internal/ports"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewModelFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCatalogFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewStoreFactory); err != nil {
		return nil, err
	}

	// Register loaded artifacts
	if err := container.Provide(func(f *factory.ModelFactory) *core.LabelEncoderTable {
		return f.CreateLabelEncoders()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.ModelFactory) *core.FeatureSpec {
		return f.CreateFeatureSpec()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.ModelFactory) core.SkinTypeModel {
		return f.CreateSkinTypeModel()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.ModelFactory) core.RoutineModel {
		return f.CreateRoutineModel()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.CatalogFactory) *core.Catalog {
		return f.CreateCatalog()
	}); err != nil {
		return nil, err
	}

	// Register account repository
	if err := container.Provide(func(f *factory.StoreFactory) (core.AccountRepository, error) {
		return f.CreateAccountRepository()
	}); err != nil {
		return nil, err
	}

	// Register core services
	if err := container.Provide(core.NewFeatureEncoder); err != nil {
		return nil, err
	}
	if err := container.Provide(core.NewSkinTypeService); err != nil {
		return nil, err
	}
	if err := container.Provide(core.NewRoutineService); err != nil {
		return nil, err
	}
	if err := container.Provide(core.NewRecommenderService); err != nil {
		return nil, err
	}
	if err := container.Provide(core.NewAccountService); err != nil {
		return nil, err
	}

	// Register HTTP server
	if err := container.Provide(httpapi.NewHandler); err != nil {
		return nil, err
	}
	if err := container.Provide(func(cfg *config.Config, handler *httpapi.Handler, logger *zap.Logger) ports.Server {
		return httpapi.NewServer(cfg.GetServer().ListenAddress, handler, logger)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
