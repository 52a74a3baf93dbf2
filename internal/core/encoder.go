package core

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// FeatureEncoder maps raw request attributes to the fixed-order numeric
// vector the skin type model was trained on.
type FeatureEncoder struct {
	spec     *FeatureSpec
	encoders *LabelEncoderTable
	logger   *zap.Logger
}

// NewFeatureEncoder creates a new feature encoder.
func NewFeatureEncoder(spec *FeatureSpec, encoders *LabelEncoderTable, logger *zap.Logger) *FeatureEncoder {
	return &FeatureEncoder{
		spec:     spec,
		encoders: encoders,
		logger:   logger,
	}
}

// Encode produces the feature vector for a raw attribute mapping. The
// output always matches the spec's column order and length. Unseen
// categorical values degrade to a parsed numeric value or code 0 and never
// fail; a non-coercible numeric value is a ValidationError.
func (e *FeatureEncoder) Encode(attrs Attributes) ([]float64, error) {
	row := make([]float64, 0, len(e.spec.Columns))
	for _, col := range e.spec.Columns {
		val, ok := attrs[col]
		if !ok || val == nil {
			if def, ok := e.spec.Defaults[col]; ok {
				val = def
			} else {
				val = 0
			}
		}

		if e.encoders.Has(col) {
			row = append(row, e.encodeCategorical(col, val))
			continue
		}

		num, err := toFloat(val)
		if err != nil {
			return nil, Validationf("invalid value for %s: %v", col, val)
		}
		row = append(row, num)
	}
	return row, nil
}

// encodeCategorical looks up the fitted code for a value. Unseen values
// fall back to the value itself when numeric, then to code 0.
func (e *FeatureEncoder) encodeCategorical(col string, val any) float64 {
	enc, _ := e.encoders.Column(col)
	if code, ok := enc.Encode(toString(val)); ok {
		return float64(code)
	}
	if num, err := toFloat(val); err == nil {
		return float64(int(num))
	}
	e.logger.Debug("Unseen categorical value, using code 0",
		zap.String("column", col),
		zap.Any("value", val))
	return 0
}

// toFloat coerces a decoded JSON value to a float64.
func toFloat(val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to float", val)
	}
}

// toString renders a decoded JSON value the way its categorical code was
// keyed at training time. Whole floats print without a decimal point.
func toString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
