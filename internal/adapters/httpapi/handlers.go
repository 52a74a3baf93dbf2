package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skinai/skinai-backend/internal/core"
)

// Handler holds the core services behind the HTTP endpoints.
type Handler struct {
	accounts  *core.AccountService
	skinType  *core.SkinTypeService
	routine   *core.RoutineService
	recommend *core.RecommenderService
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(
	accounts *core.AccountService,
	skinType *core.SkinTypeService,
	routine *core.RoutineService,
	recommend *core.RecommenderService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		accounts:  accounts,
		skinType:  skinType,
		routine:   routine,
		recommend: recommend,
		logger:    logger,
	}
}

// RegisterRoutes attaches all endpoints to the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.home)
	r.POST("/predict", h.predictSkinType)

	api := r.Group("/api")
	{
		api.POST("/register", h.register)
		api.POST("/login", h.login)
		api.GET("/profile/:username", h.profile)
		api.POST("/predict_routine_analysis", h.predictRoutine)
		api.POST("/recommend", h.recommendProducts)
	}
}

func (h *Handler) home(c *gin.Context) {
	c.String(http.StatusOK, "API is running!")
}

type registerRequest struct {
	Username  string   `json:"username"`
	Password  string   `json:"password"`
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	Location  string   `json:"location"`
	SkinTone  string   `json:"skin_tone"`
	Allergies []string `json:"allergies"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}

	_, err := h.accounts.Register(c.Request.Context(), core.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		Location:  req.Location,
		SkinTone:  req.SkinTone,
		Allergies: req.Allergies,
	})
	if err != nil {
		switch {
		case errors.Is(err, core.ErrUserExists):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "User already exists"})
		case core.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		default:
			h.logger.Error("Registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "User registered successfully!"})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}

	account, err := h.accounts.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Invalid credentials"})
		case core.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		default:
			h.logger.Error("Login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"message":  "Login successful",
		"username": account.Username,
		"user":     account.Profile(),
	})
}

func (h *Handler) profile(c *gin.Context) {
	account, err := h.accounts.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "User not found"})
			return
		}
		h.logger.Error("Profile lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, account.Profile())
}

// bindAttributes decodes a request body into an attribute mapping. An
// empty body is valid and means "use all defaults".
func bindAttributes(c *gin.Context) (core.Attributes, error) {
	var attrs core.Attributes
	if err := c.ShouldBindJSON(&attrs); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if attrs == nil {
		attrs = core.Attributes{}
	}
	return attrs, nil
}

func (h *Handler) predictSkinType(c *gin.Context) {
	attrs, err := bindAttributes(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	pred, err := h.skinType.Predict(attrs)
	if err != nil {
		if errors.Is(err, core.ErrSkinModelNotLoaded) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Skin type model not loaded"})
			return
		}
		h.logger.Warn("Skin type prediction error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pred)
}

func (h *Handler) predictRoutine(c *gin.Context) {
	attrs, err := bindAttributes(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	routine, err := h.routine.Analyze(attrs)
	if err != nil {
		if errors.Is(err, core.ErrRoutineModelNotLoaded) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Skincare routine model not loaded"})
			return
		}
		h.logger.Warn("Routine analysis error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, routine)
}

type recommendRequest struct {
	ProductAllergies []string `json:"product_allergies"`
	SelectedProducts []string `json:"selected_products"`
	BrandPreference  string   `json:"brand_preference"`
}

func (h *Handler) recommendProducts(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.recommend.Recommend(req.SelectedProducts, req.ProductAllergies, req.BrandPreference)
	if err != nil {
		if errors.Is(err, core.ErrCatalogNotLoaded) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Product catalog not loaded"})
			return
		}
		h.logger.Warn("Recommendation error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
