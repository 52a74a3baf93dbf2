package lgbm

import (
	"fmt"
	"path/filepath"

	"github.com/dmitryikh/leaves"
	"go.uber.org/zap"

	"github.com/skinai/skinai-backend/internal/core"
)

// slotThreshold converts a per-slot probability into a binary decision.
const slotThreshold = 0.5

// RoutineModel is a LightGBM implementation of the core.RoutineModel
// interface. The multi-label model is one binary ensemble per routine
// slot, loaded from a directory of LightGBM text dumps named after the
// slots.
type RoutineModel struct {
	ensembles []*leaves.Ensemble
	columns   []string
	logger    *zap.Logger
}

// NewRoutineModel loads the per-slot ensembles. columns is the one-hot
// feature column list saved at training time; nil when the artifact did
// not carry one.
func NewRoutineModel(dir string, columns []string, logger *zap.Logger) (*RoutineModel, error) {
	ensembles := make([]*leaves.Ensemble, 0, len(core.RoutineSlots))
	for _, slot := range core.RoutineSlots {
		path := filepath.Join(dir, slot+".txt")
		ensemble, err := leaves.LGEnsembleFromFile(path, true)
		if err != nil {
			return nil, fmt.Errorf("failed to load routine model for %s: %w", slot, err)
		}
		ensembles = append(ensembles, ensemble)
	}

	logger.Info("Skincare routine model loaded",
		zap.String("dir", dir),
		zap.Int("slots", len(ensembles)),
		zap.Int("feature_columns", len(columns)))

	return &RoutineModel{
		ensembles: ensembles,
		columns:   columns,
		logger:    logger,
	}, nil
}

// FeatureColumns returns the trained one-hot column list, or nil.
func (m *RoutineModel) FeatureColumns() []string {
	return m.columns
}

// PredictSlots runs every slot ensemble on the aligned row and thresholds
// the probabilities into binary outputs, in core.RoutineSlots order.
func (m *RoutineModel) PredictSlots(row []float64) ([]int, error) {
	out := make([]int, len(m.ensembles))
	for i, ensemble := range m.ensembles {
		if len(row) != ensemble.NFeatures() {
			return nil, fmt.Errorf("aligned row has %d columns, %s model expects %d",
				len(row), core.RoutineSlots[i], ensemble.NFeatures())
		}
		if ensemble.PredictSingle(row, 0) >= slotThreshold {
			out[i] = 1
		}
	}
	return out, nil
}
