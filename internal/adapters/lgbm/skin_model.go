package lgbm

import (
	"fmt"

	"github.com/dmitryikh/leaves"
	"go.uber.org/zap"
)

// SkinTypeModel is a LightGBM implementation of the core.SkinTypeModel
// interface, backed by a single multiclass ensemble.
type SkinTypeModel struct {
	ensemble *leaves.Ensemble
	logger   *zap.Logger
}

// NewSkinTypeModel loads a skin type classifier from a LightGBM text dump.
func NewSkinTypeModel(path string, logger *zap.Logger) (*SkinTypeModel, error) {
	ensemble, err := leaves.LGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load skin type model: %w", err)
	}

	logger.Info("Skin type model loaded",
		zap.String("path", path),
		zap.Int("features", ensemble.NFeatures()),
		zap.Int("classes", ensemble.NRawOutputGroups()))

	return &SkinTypeModel{
		ensemble: ensemble,
		logger:   logger,
	}, nil
}

// PredictClass runs the ensemble on a single feature vector and returns
// the predicted class code.
func (m *SkinTypeModel) PredictClass(features []float64) (int, error) {
	if len(features) != m.ensemble.NFeatures() {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d",
			len(features), m.ensemble.NFeatures())
	}

	groups := m.ensemble.NRawOutputGroups()
	if groups <= 1 {
		// Single-output model: the prediction is the class code itself.
		return int(m.ensemble.PredictSingle(features, 0)), nil
	}

	scores := make([]float64, groups)
	if err := m.ensemble.Predict(features, 0, scores); err != nil {
		return 0, fmt.Errorf("skin type prediction failed: %w", err)
	}

	best := 0
	for i, score := range scores {
		if score > scores[best] {
			best = i
		}
	}
	return best, nil
}
