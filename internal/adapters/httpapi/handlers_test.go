package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skinai/skinai-backend/internal/adapters/store"
	"github.com/skinai/skinai-backend/internal/core"
)

// stubSkinModel simulates the skin type classifier.
type stubSkinModel struct {
	code int
	err  error
}

func (m *stubSkinModel) PredictClass(features []float64) (int, error) {
	return m.code, m.err
}

// stubRoutineModel simulates the multi-label routine model.
type stubRoutineModel struct {
	preds []int
}

func (m *stubRoutineModel) FeatureColumns() []string { return nil }

func (m *stubRoutineModel) PredictSlots(row []float64) ([]int, error) {
	return m.preds, nil
}

func testEncoderTable() *core.LabelEncoderTable {
	return core.NewLabelEncoderTable(map[string]map[string]int{
		"Gender":          {"Female": 0, "Male": 1},
		"Hydration_Level": {"High": 0, "Low": 1, "Medium": 2},
		"Oil_Level":       {"High": 0, "Low": 1, "Medium": 2},
		"Sensitivity":     {"High": 0, "Low": 1, "Medium": 2},
		"Skin_Type":       {"Combination": 0, "Dry": 1, "Normal": 2, "Oily": 3, "Sensitive": 4},
	})
}

func testCatalog() *core.Catalog {
	return &core.Catalog{Products: []core.Product{
		{
			Brand:       "Mamaearth",
			Type:        "Cleanser",
			Name:        "Vitamin C Face Wash",
			Link:        "https://example.com/1",
			Ingredients: []string{"Niacinamide", "Vitamin C"},
		},
		{
			Brand:       "Dot & Key",
			Type:        "Cleanser",
			Name:        "Gentle Gel Cleanser",
			Link:        "https://example.com/2",
			Ingredients: []string{"Glycerin", "Green Tea"},
		},
	}}
}

func newTestEngine(t *testing.T, skinModel core.SkinTypeModel, routineModel core.RoutineModel, catalog *core.Catalog) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	encoders := testEncoderTable()
	encoder := core.NewFeatureEncoder(core.NewFeatureSpec(core.FallbackFeatureColumns), encoders, logger)
	skinType := core.NewSkinTypeService(skinModel, encoder, encoders, logger)
	routine := core.NewRoutineService(routineModel, skinType, logger)
	recommend := core.NewRecommenderService(catalog, logger)
	accounts := core.NewAccountService(store.NewMemoryStore(logger), logger)

	handler := NewHandler(accounts, skinType, routine, recommend, logger)
	engine := gin.New()
	engine.Use(CORSMiddleware())
	handler.RegisterRoutes(engine)
	return engine
}

func doJSON(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestPredictEndpoint(t *testing.T) {
	t.Run("empty body predicts from defaults", func(t *testing.T) {
		engine := newTestEngine(t, &stubSkinModel{code: 3}, nil, nil)
		w := doJSON(engine, http.MethodPost, "/predict", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var resp struct {
			Prediction int    `json:"prediction"`
			SkinType   string `json:"skin_type"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response: %v", err)
		}
		if resp.Prediction != 3 || resp.SkinType != "Oily" {
			t.Errorf("resp = %+v", resp)
		}
	})

	t.Run("missing model is a 500", func(t *testing.T) {
		engine := newTestEngine(t, nil, nil, nil)
		w := doJSON(engine, http.MethodPost, "/predict", "{}")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "not loaded") {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("bad numeric input is a 400 with the cause", func(t *testing.T) {
		engine := newTestEngine(t, &stubSkinModel{}, nil, nil)
		w := doJSON(engine, http.MethodPost, "/predict", `{"Age": "oops"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Age") {
			t.Errorf("body = %s", w.Body.String())
		}
	})
}

func TestRoutineEndpoint(t *testing.T) {
	t.Run("returns the decoded routine and treatment", func(t *testing.T) {
		preds := make([]int, len(core.RoutineSlots))
		preds[0] = 1 // morning_cleanser
		preds[7] = 1 // night_cleanser
		engine := newTestEngine(t, &stubSkinModel{code: 3}, &stubRoutineModel{preds: preds}, nil)

		w := doJSON(engine, http.MethodPost, "/api/predict_routine_analysis", `{"Common_Concern": "acne"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var resp struct {
			Morning   []string `json:"Morning_Routine"`
			Night     []string `json:"Night_Routine"`
			Treatment string   `json:"Treatment_Recommendation"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response: %v", err)
		}
		if len(resp.Morning) != 1 || resp.Morning[0] != "cleanser" {
			t.Errorf("Morning = %v", resp.Morning)
		}
		if len(resp.Night) != 1 || resp.Night[0] != "cleanser" {
			t.Errorf("Night = %v", resp.Night)
		}
		if !strings.Contains(resp.Treatment, "Salicylic") {
			t.Errorf("Treatment = %q", resp.Treatment)
		}
	})

	t.Run("missing model is a 500", func(t *testing.T) {
		engine := newTestEngine(t, &stubSkinModel{}, nil, nil)
		w := doJSON(engine, http.MethodPost, "/api/predict_routine_analysis", "{}")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d", w.Code)
		}
	})
}

func TestRecommendEndpoint(t *testing.T) {
	t.Run("allergy fallback recommends another brand and reports it", func(t *testing.T) {
		engine := newTestEngine(t, nil, nil, testCatalog())
		body := `{"selected_products": ["Cleanser"], "product_allergies": ["niacinamide"], "brand_preference": "Mamaearth"}`
		w := doJSON(engine, http.MethodPost, "/api/recommend", body)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var resp core.RecommendationResult
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response: %v", err)
		}
		if len(resp.Recommendations) != 1 || resp.Recommendations[0].Brand != "Dot & Key" {
			t.Errorf("recommendations = %+v", resp.Recommendations)
		}
		if len(resp.Unavailable) != 1 || resp.Unavailable[0].Brand != "Mamaearth" {
			t.Errorf("unavailable = %+v", resp.Unavailable)
		}
		found := false
		for _, b := range resp.Unavailable[0].AlternativeBrands {
			if b == "Dot & Key" {
				found = true
			}
		}
		if !found {
			t.Errorf("AlternativeBrands = %v", resp.Unavailable[0].AlternativeBrands)
		}
	})

	t.Run("missing catalog is a 500", func(t *testing.T) {
		engine := newTestEngine(t, nil, nil, nil)
		w := doJSON(engine, http.MethodPost, "/api/recommend", `{"selected_products": ["Cleanser"]}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d", w.Code)
		}
	})
}

func TestAccountEndpoints(t *testing.T) {
	register := `{"username": "asha", "password": "s3cret", "name": "Asha", "age": 24, "gender": "Female", "location": "Pune", "skin_tone": "Medium", "allergies": ["Paraben"]}`

	t.Run("register, login and profile round-trip", func(t *testing.T) {
		engine := newTestEngine(t, nil, nil, nil)

		w := doJSON(engine, http.MethodPost, "/api/register", register)
		if w.Code != http.StatusCreated {
			t.Fatalf("register status = %d, body = %s", w.Code, w.Body.String())
		}

		w = doJSON(engine, http.MethodPost, "/api/login", `{"username": "asha", "password": "s3cret"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
		}
		var login struct {
			Status string `json:"status"`
			User   struct {
				Name      string `json:"name"`
				Allergies string `json:"allergies"`
			} `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
			t.Fatalf("bad response: %v", err)
		}
		if login.Status != "success" || login.User.Name != "Asha" {
			t.Errorf("login = %+v", login)
		}
		if login.User.Allergies != `["Paraben"]` {
			t.Errorf("allergies = %q", login.User.Allergies)
		}

		w = doJSON(engine, http.MethodGet, "/api/profile/asha", "")
		if w.Code != http.StatusOK {
			t.Fatalf("profile status = %d", w.Code)
		}
	})

	t.Run("duplicate registration is a 400", func(t *testing.T) {
		engine := newTestEngine(t, nil, nil, nil)
		if w := doJSON(engine, http.MethodPost, "/api/register", register); w.Code != http.StatusCreated {
			t.Fatalf("first register status = %d", w.Code)
		}
		w := doJSON(engine, http.MethodPost, "/api/register", register)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("second register status = %d", w.Code)
		}
	})

	t.Run("missing credentials are a 400", func(t *testing.T) {
		engine := newTestEngine(t, nil, nil, nil)
		w := doJSON(engine, http.MethodPost, "/api/register", `{"username": "asha"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("bad credentials are a 401", func(t *testing.T) {
		engine := newTestEngine(t, nil, nil, nil)
		if w := doJSON(engine, http.MethodPost, "/api/register", register); w.Code != http.StatusCreated {
			t.Fatalf("register status = %d", w.Code)
		}
		w := doJSON(engine, http.MethodPost, "/api/login", `{"username": "asha", "password": "wrong"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("unknown profile is a 404", func(t *testing.T) {
		engine := newTestEngine(t, nil, nil, nil)
		w := doJSON(engine, http.MethodGet, "/api/profile/nobody", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d", w.Code)
		}
	})
}

func TestLivenessAndCORS(t *testing.T) {
	engine := newTestEngine(t, nil, nil, nil)

	t.Run("liveness text", func(t *testing.T) {
		w := doJSON(engine, http.MethodGet, "/", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "running") {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("preflight is answered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/recommend", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("status = %d", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("CORS header missing")
		}
	})
}
