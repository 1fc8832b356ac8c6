package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recipegenie/backend/config"
	"github.com/recipegenie/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupTestRouter creates a test router with default configuration
func setupTestRouter() *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Cache: config.CacheConfig{
			Type: "memory",
		},
	}

	service := usecase.NewRecommendService(usecase.DefaultVocabulary(), nil, nil, usecase.Config{
		Weights:  usecase.DefaultScoreWeights(),
		CacheTTL: time.Minute,
	}, nil)

	handler := NewHandler(service, nil)
	return SetupRouter(cfg, handler, newTestLogger())
}

func postJSON(router *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response["status"] != "healthy" {
			t.Errorf("status = %v, want healthy", response["status"])
		}
		if response["service"] != "recipegenie-ai" {
			t.Errorf("service = %v, want recipegenie-ai", response["service"])
		}
	})
}

func TestEnhanceRecipesEndpoint(t *testing.T) {
	t.Run("ranks recipes and returns metadata", func(t *testing.T) {
		router := setupTestRouter()

		body := `{
			"recipes": [
				{"id": "1", "title": "Tomato Pasta", "ingredients": ["pasta", "tomatoes", "garlic"], "instructions": "Boil. Mix."},
				{"id": "2", "title": "Beef Stew", "ingredients": ["beef", "carrots"], "instructions": "Simmer."}
			],
			"user_preferences": {"favorites": ["1"]},
			"ingredients": ["2 tomatoes", "garlic"]
		}`
		w := postJSON(router, "/api/v1/recipes/enhance", body)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
		}

		var response struct {
			Recipes []map[string]interface{} `json:"recipes"`
			Meta    map[string]interface{}   `json:"metadata"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if len(response.Recipes) != 2 {
			t.Fatalf("got %d recipes, want 2", len(response.Recipes))
		}
		if response.Recipes[0]["id"] != "1" {
			t.Errorf("top recipe id = %v, want 1", response.Recipes[0]["id"])
		}
		if response.Recipes[0]["ai_rank"] != float64(1) {
			t.Errorf("ai_rank = %v, want 1", response.Recipes[0]["ai_rank"])
		}
		if response.Meta["total_count"] != float64(2) {
			t.Errorf("total_count = %v, want 2", response.Meta["total_count"])
		}
		if _, ok := response.Meta["processing_info"]; !ok {
			t.Error("metadata missing processing_info")
		}
	})

	t.Run("missing recipes key returns 400", func(t *testing.T) {
		router := setupTestRouter()

		w := postJSON(router, "/api/v1/recipes/enhance", `{"ingredients": ["tomato"]}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("empty recipes list returns empty result", func(t *testing.T) {
		router := setupTestRouter()

		w := postJSON(router, "/api/v1/recipes/enhance", `{"recipes": []}`)
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		meta := response["metadata"].(map[string]interface{})
		if meta["total_count"] != float64(0) {
			t.Errorf("total_count = %v, want 0", meta["total_count"])
		}
		if meta["message"] != "No recipes to enhance" {
			t.Errorf("message = %v, want 'No recipes to enhance'", meta["message"])
		}
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		router := setupTestRouter()

		w := postJSON(router, "/api/v1/recipes/enhance", `{not json`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestAnalyzeIngredientsEndpoint(t *testing.T) {
	t.Run("returns analysis and suggestions", func(t *testing.T) {
		router := setupTestRouter()

		w := postJSON(router, "/api/v1/ingredients/analyze", `{"ingredients": ["tomato", "garlic", "pasta", "basil"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
		}

		var response struct {
			Analysis struct {
				SuitableCategories []struct {
					Name       string  `json:"name"`
					MatchScore float64 `json:"match_score"`
				} `json:"suitable_categories"`
				IngredientGroups map[string][]string `json:"ingredient_groups"`
			} `json:"analysis"`
			SuggestedAdditions []string `json:"suggested_additions"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if len(response.Analysis.SuitableCategories) == 0 {
			t.Fatal("expected at least one suitable category")
		}
		if response.Analysis.SuitableCategories[0].Name != "Italian" {
			t.Errorf("top category = %s, want Italian", response.Analysis.SuitableCategories[0].Name)
		}
		if len(response.Analysis.IngredientGroups) == 0 {
			t.Error("expected ingredient groups")
		}
		if len(response.SuggestedAdditions) == 0 {
			t.Error("expected suggested additions")
		}
	})

	t.Run("missing ingredients key returns 400", func(t *testing.T) {
		router := setupTestRouter()

		w := postJSON(router, "/api/v1/ingredients/analyze", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("empty ingredients list returns empty analysis", func(t *testing.T) {
		router := setupTestRouter()

		w := postJSON(router, "/api/v1/ingredients/analyze", `{"ingredients": []}`)
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
	})
}

func TestPreprocessIngredientsEndpoint(t *testing.T) {
	t.Run("normalizes ingredients", func(t *testing.T) {
		router := setupTestRouter()

		w := postJSON(router, "/api/v1/ingredients/preprocess", `{"ingredients": ["3 cups Fresh Chopped Tomatoes", "2 onions"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response struct {
			Ingredients []string `json:"ingredients"`
			Count       int      `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Count != 2 || response.Ingredients[0] != "tomato" || response.Ingredients[1] != "onion" {
			t.Errorf("response = %+v, want [tomato onion]", response)
		}
	})

	t.Run("missing ingredients key returns 400", func(t *testing.T) {
		router := setupTestRouter()

		w := postJSON(router, "/api/v1/ingredients/preprocess", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}
