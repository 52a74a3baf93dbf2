package factory

import (
	"github.com/skinai/skinai-backend/internal/adapters/artifact"
	"github.com/skinai/skinai-backend/internal/adapters/lgbm"
	"github.com/skinai/skinai-backend/internal/config"
	"github.com/skinai/skinai-backend/internal/core"
	"go.uber.org/zap"
)

// ModelFactory loads the pre-trained model artifacts. A missing artifact
// is tolerated: the server still starts and the affected endpoints answer
// with a model-not-loaded error.
type ModelFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewModelFactory creates a new model factory
func NewModelFactory(cfg *config.Config, logger *zap.Logger) *ModelFactory {
	return &ModelFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateLabelEncoders loads the fitted label encoder table. A missing
// artifact degrades to an empty table; categorical features then fall
// through the numeric-or-zero path.
func (f *ModelFactory) CreateLabelEncoders() *core.LabelEncoderTable {
	path := f.cfg.GetModels().LabelEncodersPath
	table, err := artifact.LoadLabelEncoders(path)
	if err != nil {
		f.logger.Warn("Skin label encoders not found",
			zap.String("path", path),
			zap.Error(err))
		return core.NewLabelEncoderTable(nil)
	}
	f.logger.Info("Skin label encoders loaded", zap.String("path", path))
	return table
}

// CreateFeatureSpec loads the ordered skin type feature columns, falling
// back to the built-in column list when the artifact is missing.
func (f *ModelFactory) CreateFeatureSpec() *core.FeatureSpec {
	path := f.cfg.GetModels().FeatureColumnsPath
	columns, err := artifact.LoadFeatureColumns(path)
	if err != nil {
		f.logger.Warn("Skin feature columns not found, using fallback",
			zap.String("path", path),
			zap.Error(err))
		return core.NewFeatureSpec(core.FallbackFeatureColumns)
	}
	f.logger.Info("Skin feature columns loaded",
		zap.String("path", path),
		zap.Int("columns", len(columns)))
	return core.NewFeatureSpec(columns)
}

// CreateSkinTypeModel loads the skin type classifier, or nil when its
// artifact is missing.
func (f *ModelFactory) CreateSkinTypeModel() core.SkinTypeModel {
	path := f.cfg.GetModels().SkinTypePath
	model, err := lgbm.NewSkinTypeModel(path, f.logger)
	if err != nil {
		f.logger.Warn("Skin type model not loaded",
			zap.String("path", path),
			zap.Error(err))
		return nil
	}
	return model
}

// CreateRoutineModel loads the multi-label routine model, or nil when its
// artifacts are missing. The trained feature column list is optional; the
// loaded model is normalized into one shape either way.
func (f *ModelFactory) CreateRoutineModel() core.RoutineModel {
	models := f.cfg.GetModels()

	columns, err := artifact.LoadFeatureColumns(models.RoutineFeatureColumnsPath)
	if err != nil {
		f.logger.Warn("Routine feature columns not found, alignment disabled",
			zap.String("path", models.RoutineFeatureColumnsPath),
			zap.Error(err))
		columns = nil
	}

	model, err := lgbm.NewRoutineModel(models.RoutineDir, columns, f.logger)
	if err != nil {
		f.logger.Warn("Skincare routine model not loaded",
			zap.String("dir", models.RoutineDir),
			zap.Error(err))
		return nil
	}
	return model
}
