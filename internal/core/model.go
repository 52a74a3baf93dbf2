package core

import (
	"time"
)

// Attributes is the raw attribute mapping carried by a prediction request.
// Values arrive as decoded JSON: numbers as float64, everything else as
// strings or bools.
type Attributes map[string]any

// FeatureSpec is the ordered schema of model input features fixed at
// training time. The encoder output vector must match Columns in length
// and order exactly.
type FeatureSpec struct {
	Columns  []string
	Defaults map[string]any
}

// FallbackFeatureColumns is the skin type feature order used when the
// feature columns artifact is missing.
var FallbackFeatureColumns = []string{
	"Age", "Gender", "Humidity", "Hydration_Level", "Oil_Level", "Sensitivity", "Temperature",
}

// DefaultFeatureValues returns the per-feature defaults applied when a
// request omits a field. Features without an entry default to 0.
func DefaultFeatureValues() map[string]any {
	return map[string]any{
		"Age":             25,
		"Gender":          "Female",
		"Humidity":        50,
		"Temperature":     25,
		"Hydration_Level": "Medium",
		"Oil_Level":       "Medium",
		"Sensitivity":     "Medium",
	}
}

// NewFeatureSpec creates a feature spec from an ordered column list.
func NewFeatureSpec(columns []string) *FeatureSpec {
	return &FeatureSpec{
		Columns:  columns,
		Defaults: DefaultFeatureValues(),
	}
}

// SkinTypePrediction is the result of a skin type classification.
type SkinTypePrediction struct {
	Prediction int    `json:"prediction"`
	SkinType   string `json:"skin_type"`
}

// RoutineSlots is the fixed ordered list of routine steps the multi-label
// model predicts, one binary output per slot.
var RoutineSlots = []string{
	"morning_cleanser",
	"morning_toner",
	"morning_serum",
	"morning_moisturizer",
	"morning_sunscreen",
	"morning_exfoliator",
	"morning_mask",
	"night_cleanser",
	"night_toner",
	"night_serum",
	"night_moisturizer",
	"night_exfoliator",
	"night_mask",
}

// Routine is the structured AM/PM skincare routine returned to the caller.
type Routine struct {
	Morning   []string `json:"Morning_Routine"`
	Night     []string `json:"Night_Routine"`
	Treatment string   `json:"Treatment_Recommendation"`
}

// Product is a single catalog entry. AllergenFlags maps a normalized
// allergen column name to its raw cell value ("1" marks the allergen as
// present).
type Product struct {
	Brand         string
	Type          string
	Name          string
	Link          string
	Ingredients   []string
	AllergenFlags map[string]string
}

// Catalog holds the static product table, loaded once at startup and
// immutable for the process lifetime.
type Catalog struct {
	Products []Product
}

// Recommendation is one chosen product for a requested product type.
type Recommendation struct {
	Brand       string `json:"Brand"`
	ProductType string `json:"ProductType"`
	ProductName string `json:"ProductName"`
	ProductLink string `json:"ProductLink"`
}

// UnavailableNotice reports that no safe product could be recommended for
// a product type, or that the preferred brand had no safe match.
type UnavailableNotice struct {
	ProductType       string   `json:"ProductType"`
	Brand             string   `json:"Brand"`
	Msg               string   `json:"Msg"`
	AlternativeBrands []string `json:"AlternativeBrands"`
}

// RecommendationResult is the full response of a recommendation request.
type RecommendationResult struct {
	Recommendations []Recommendation    `json:"recommendations"`
	Unavailable     []UnavailableNotice `json:"unavailable"`
}

// Account is a persisted user record. Allergies is stored as a JSON array
// string.
type Account struct {
	ID        int64
	Username  string
	Password  string
	Name      string
	Age       int
	Gender    string
	Location  string
	SkinTone  string
	Allergies string
	CreatedAt time.Time
}

// Profile is the user-visible view of an account.
type Profile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Location  string `json:"location"`
	SkinTone  string `json:"skin_tone"`
	Allergies string `json:"allergies"`
	CreatedAt string `json:"created_at"`
}

// Profile returns the account without its password hash.
func (a *Account) Profile() Profile {
	return Profile{
		ID:        a.ID,
		Username:  a.Username,
		Name:      a.Name,
		Age:       a.Age,
		Gender:    a.Gender,
		Location:  a.Location,
		SkinTone:  a.SkinTone,
		Allergies: a.Allergies,
		CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
