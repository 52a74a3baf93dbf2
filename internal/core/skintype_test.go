package core

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

// stubSkinModel simulates the pre-trained classifier for testing.
type stubSkinModel struct {
	code        int
	err         error
	gotFeatures []float64
}

func (m *stubSkinModel) PredictClass(features []float64) (int, error) {
	m.gotFeatures = features
	return m.code, m.err
}

func newTestSkinTypeService(model SkinTypeModel) *SkinTypeService {
	encoders := testEncoderTable()
	encoder := NewFeatureEncoder(NewFeatureSpec(FallbackFeatureColumns), encoders, zap.NewNop())
	return NewSkinTypeService(model, encoder, encoders, zap.NewNop())
}

func TestSkinTypePredict(t *testing.T) {
	t.Run("decodes the class code to its label", func(t *testing.T) {
		svc := newTestSkinTypeService(&stubSkinModel{code: 3})
		pred, err := svc.Predict(Attributes{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pred.Prediction != 3 {
			t.Errorf("Prediction = %d, want 3", pred.Prediction)
		}
		if pred.SkinType != "Oily" {
			t.Errorf("SkinType = %q, want Oily", pred.SkinType)
		}
	})

	t.Run("drifted class code falls back to its stringified form", func(t *testing.T) {
		svc := newTestSkinTypeService(&stubSkinModel{code: 42})
		pred, err := svc.Predict(Attributes{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pred.SkinType != "42" {
			t.Errorf("SkinType = %q, want \"42\"", pred.SkinType)
		}
	})

	t.Run("missing model fails with the sentinel", func(t *testing.T) {
		svc := newTestSkinTypeService(nil)
		_, err := svc.Predict(Attributes{})
		if !errors.Is(err, ErrSkinModelNotLoaded) {
			t.Errorf("err = %v, want ErrSkinModelNotLoaded", err)
		}
	})

	t.Run("encoder output is passed through unchanged", func(t *testing.T) {
		model := &stubSkinModel{}
		svc := newTestSkinTypeService(model)
		if _, err := svc.Predict(Attributes{"Age": float64(31)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(model.gotFeatures) != len(FallbackFeatureColumns) {
			t.Fatalf("model saw %d features, want %d", len(model.gotFeatures), len(FallbackFeatureColumns))
		}
		if model.gotFeatures[0] != 31 {
			t.Errorf("Age feature = %v, want 31", model.gotFeatures[0])
		}
	})

	t.Run("validation errors surface", func(t *testing.T) {
		svc := newTestSkinTypeService(&stubSkinModel{})
		_, err := svc.Predict(Attributes{"Age": "oops"})
		if !IsValidation(err) {
			t.Errorf("expected a ValidationError, got %v", err)
		}
	})
}

func TestSkinTypePredictSafe(t *testing.T) {
	t.Run("returns the prediction when the model works", func(t *testing.T) {
		svc := newTestSkinTypeService(&stubSkinModel{code: 1})
		pred := svc.PredictSafe(Attributes{})
		if pred.SkinType != "Dry" {
			t.Errorf("SkinType = %q, want Dry", pred.SkinType)
		}
	})

	t.Run("any failure yields the safe default", func(t *testing.T) {
		for name, svc := range map[string]*SkinTypeService{
			"missing model": newTestSkinTypeService(nil),
			"model error":   newTestSkinTypeService(&stubSkinModel{err: errors.New("boom")}),
		} {
			pred := svc.PredictSafe(Attributes{})
			if pred.Prediction != 0 || pred.SkinType != "Normal" {
				t.Errorf("%s: got (%d, %q), want (0, Normal)", name, pred.Prediction, pred.SkinType)
			}
		}
	})
}
