package core

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// concernColumn is the request field the treatment lookup is keyed by.
const concernColumn = "Common_Concern"

// concernTreatments is the fixed treatment table keyed by lower-cased
// concern. Unknown or missing concerns map to the "none" entry.
var concernTreatments = map[string]string{
	"wrinkles":     "Gentle Hydrating Cleanser AM, Vitamin C Serum AM, Hyaluronic Moisturizer AM, SPF 30 AM, Retinol Serum PM, Peptide Night Cream PM",
	"acne":         "Oil-Free Salicylic Acid Cleanser AM, Niacinamide Serum AM, Lightweight Gel Moisturizer AM, SPF 30 AM, Benzoyl Peroxide Spot PM, Adapalene PM",
	"dark_circles": "Gentle Hydrating Cleanser AM, Caffeine Eye Cream AM, Lightweight Moisturizer AM, SPF 30 AM, Niacinamide Eye Cream PM, Lightweight Gel PM",
	"dark_spots":   "Gentle Hydrating Cleanser AM, Vitamin C Serum AM, Kojic Acid/Niacinamide/Alpha Arbutin PM, SPF 30 AM",
	"none":         "Gentle Cleanser AM, Hydrating Serum AM, Moisturizer AM, SPF 30 AM, Night Serum PM, Night Cream PM",
}

// TreatmentFor returns the treatment recommendation for a stated concern.
func TreatmentFor(concern string) string {
	if t, ok := concernTreatments[strings.ToLower(concern)]; ok {
		return t
	}
	return concernTreatments["none"]
}

// RoutineService wraps the pre-trained multi-label routine model and
// decodes its output into a structured AM/PM routine.
type RoutineService struct {
	model    RoutineModel
	skinType *SkinTypeService
	logger   *zap.Logger
}

// NewRoutineService creates a new routine analysis service. The model may
// be nil when its artifact was missing at startup.
func NewRoutineService(model RoutineModel, skinType *SkinTypeService, logger *zap.Logger) *RoutineService {
	return &RoutineService{
		model:    model,
		skinType: skinType,
		logger:   logger,
	}
}

// Analyze predicts the skincare routine for a raw attribute mapping and
// attaches the concern-based treatment recommendation. The result is
// all-or-nothing: any failure after the model check surfaces as an error
// and no partial routine is returned.
func (s *RoutineService) Analyze(attrs Attributes) (*Routine, error) {
	if s.model == nil {
		return nil, ErrRoutineModelNotLoaded
	}

	data := make(Attributes, len(attrs)+1)
	for k, v := range attrs {
		data[k] = v
	}

	// Predict skin type when the caller omitted it. This never fails the
	// outer call.
	switch st := data["Skin_Type"].(type) {
	case nil:
		data["Skin_Type"] = s.skinType.PredictSafe(data).SkinType
	case string:
		if st == "" {
			data["Skin_Type"] = s.skinType.PredictSafe(data).SkinType
		}
	}

	row, err := s.buildRow(data)
	if err != nil {
		return nil, err
	}

	preds, err := s.model.PredictSlots(row)
	if err != nil {
		return nil, err
	}
	if len(preds) != len(RoutineSlots) {
		return nil, fmt.Errorf("routine model returned %d outputs, expected %d", len(preds), len(RoutineSlots))
	}

	morning := []string{}
	night := []string{}
	for i, slot := range RoutineSlots {
		if preds[i] == 0 {
			continue
		}
		if step, ok := strings.CutPrefix(slot, "morning_"); ok {
			morning = append(morning, step)
		} else {
			night = append(night, strings.TrimPrefix(slot, "night_"))
		}
	}

	concern := ""
	if v, ok := data[concernColumn]; ok {
		concern = toString(v)
	}

	return &Routine{
		Morning:   morning,
		Night:     night,
		Treatment: TreatmentFor(concern),
	}, nil
}

// buildRow one-hot expands the attribute mapping the way the training
// pipeline did and aligns the result to the trained feature column list.
// Every string value becomes its own binary column named "<column>_<value>";
// numeric values keep their column. Alignment fills missing columns with 0
// and drops extras. The trained column list is an opaque contract from the
// loaded artifact; when absent the expanded columns are used in sorted
// order.
func (s *RoutineService) buildRow(data Attributes) ([]float64, error) {
	expanded := make(map[string]float64, len(data))
	for col, val := range data {
		switch v := val.(type) {
		case string:
			expanded[col+"_"+v] = 1
		default:
			num, err := toFloat(val)
			if err != nil {
				return nil, Validationf("invalid value for %s: %v", col, val)
			}
			expanded[col] = num
		}
	}

	columns := s.model.FeatureColumns()
	if columns == nil {
		columns = make([]string, 0, len(expanded))
		for col := range expanded {
			columns = append(columns, col)
		}
		sort.Strings(columns)
	}

	row := make([]float64, len(columns))
	for i, col := range columns {
		row[i] = expanded[col]
	}
	return row, nil
}
