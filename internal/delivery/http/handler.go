package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipegenie/backend/internal/domain"
	"github.com/recipegenie/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service *usecase.RecommendService
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(service *usecase.RecommendService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

type enhanceRequest struct {
	// A pointer distinguishes a missing recipes key from an empty list.
	Recipes         *[]domain.Recipe   `json:"recipes"`
	UserPreferences domain.Preferences `json:"user_preferences"`
	Ingredients     []any              `json:"ingredients"`
}

type analyzeRequest struct {
	Ingredients *[]any `json:"ingredients"`
}

type preprocessRequest struct {
	Ingredients *[]any `json:"ingredients"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "recipegenie-ai",
		"version": "1.0.0",
	})
}

// EnhanceRecipes ranks the posted recipes against the user's preferences
// and available ingredients.
func (h *Handler) EnhanceRecipes(c *gin.Context) {
	var req enhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No JSON data provided"})
		return
	}
	if req.Recipes == nil {
		_ = c.Error(domain.ErrInvalidRequest)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Missing recipes data."})
		return
	}

	recipes := *req.Recipes
	if len(recipes) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"recipes": []domain.Recipe{},
			"metadata": gin.H{
				"total_count": 0,
				"message":     "No recipes to enhance",
			},
		})
		return
	}

	ranked, metrics := h.service.EnhanceRecipes(c.Request.Context(), recipes, req.UserPreferences, req.Ingredients)

	c.JSON(http.StatusOK, gin.H{
		"recipes": ranked,
		"metadata": gin.H{
			"total_count":     len(ranked),
			"processing_info": metrics,
		},
	})
}

// AnalyzeIngredients classifies the posted ingredient list and suggests
// complementary additions.
func (h *Handler) AnalyzeIngredients(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No JSON data provided"})
		return
	}
	if req.Ingredients == nil {
		_ = c.Error(domain.ErrInvalidRequest)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Missing ingredients data."})
		return
	}

	result := h.service.AnalyzeIngredients(c.Request.Context(), *req.Ingredients)

	c.JSON(http.StatusOK, gin.H{
		"analysis":            result.Analysis,
		"suggested_additions": result.Suggestions,
	})
}

// PreprocessIngredients normalizes the posted ingredient list without
// running the full analysis.
func (h *Handler) PreprocessIngredients(c *gin.Context) {
	var req preprocessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No JSON data provided"})
		return
	}
	if req.Ingredients == nil {
		_ = c.Error(domain.ErrInvalidRequest)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Missing ingredients data."})
		return
	}

	processed := h.service.PreprocessIngredients(*req.Ingredients)

	c.JSON(http.StatusOK, gin.H{
		"ingredients": processed,
		"count":       len(processed),
	})
}
