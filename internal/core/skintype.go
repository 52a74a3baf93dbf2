package core

import (
	"strconv"

	"go.uber.org/zap"
)

// skinTypeColumn is the label encoder entry used to decode predicted class
// codes into skin type names.
const skinTypeColumn = "Skin_Type"

// defaultSkinType is the safe fallback used by internal callers when the
// classifier is unavailable or fails.
const defaultSkinType = "Normal"

// SkinTypeService wraps the pre-trained skin type classifier.
type SkinTypeService struct {
	model    SkinTypeModel
	encoder  *FeatureEncoder
	encoders *LabelEncoderTable
	logger   *zap.Logger
}

// NewSkinTypeService creates a new skin type classification service. The
// model may be nil when its artifact was missing at startup; predictions
// then fail with ErrSkinModelNotLoaded.
func NewSkinTypeService(model SkinTypeModel, encoder *FeatureEncoder, encoders *LabelEncoderTable, logger *zap.Logger) *SkinTypeService {
	return &SkinTypeService{
		model:    model,
		encoder:  encoder,
		encoders: encoders,
		logger:   logger,
	}
}

// Predict classifies a raw attribute mapping into a skin type code and its
// human-readable label. An undecodable class code degrades to the code
// itself stringified, never an error.
func (s *SkinTypeService) Predict(attrs Attributes) (*SkinTypePrediction, error) {
	if s.model == nil {
		return nil, ErrSkinModelNotLoaded
	}

	features, err := s.encoder.Encode(attrs)
	if err != nil {
		return nil, err
	}

	code, err := s.model.PredictClass(features)
	if err != nil {
		return nil, err
	}

	label := strconv.Itoa(code)
	if enc, ok := s.encoders.Column(skinTypeColumn); ok {
		if name, ok := enc.Decode(code); ok {
			label = name
		} else {
			s.logger.Warn("Predicted skin type code has no label",
				zap.Int("code", code))
		}
	}

	return &SkinTypePrediction{Prediction: code, SkinType: label}, nil
}

// PredictSafe is the never-failing variant used internally by the routine
// path. Any failure yields the default prediction (code 0, "Normal").
func (s *SkinTypeService) PredictSafe(attrs Attributes) *SkinTypePrediction {
	pred, err := s.Predict(attrs)
	if err != nil {
		s.logger.Warn("Internal skin type prediction failed, using default",
			zap.String("skin_type", defaultSkinType),
			zap.Error(err))
		return &SkinTypePrediction{Prediction: 0, SkinType: defaultSkinType}
	}
	return pred
}
