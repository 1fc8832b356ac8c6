package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/recipegenie/backend/internal/domain"
)

// AnalysisResult bundles the ingredient analysis with the pairing
// suggestions; this is the unit that gets cached.
type AnalysisResult struct {
	Analysis    domain.IngredientAnalysis `json:"analysis"`
	Suggestions []string                  `json:"suggested_additions"`
}

// Config carries the tunable parts of the recommendation service.
type Config struct {
	Weights  ScoreWeights
	CacheTTL time.Duration
}

// RecommendService is the application facade over the recommendation
// pipeline: preprocessing, enrichment, scoring, and ingredient analysis.
type RecommendService struct {
	pre      *Preprocessor
	enricher *Enricher
	scorer   *Scorer
	analyzer *Analyzer
	cache    domain.CacheRepository
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewRecommendService wires the pipeline. cache may be nil to disable
// caching; similarity may be nil to use rule-based matching only.
func NewRecommendService(vocab Vocabulary, cache domain.CacheRepository, similarity domain.SimilarityProvider, cfg Config, logger *zap.Logger) *RecommendService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}

	pre := NewPreprocessor(vocab, logger)
	return &RecommendService{
		pre:      pre,
		enricher: NewEnricher(vocab, pre, logger),
		scorer:   NewScorer(cfg.Weights, similarity, logger),
		analyzer: NewAnalyzer(vocab, logger),
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
		logger:   logger,
	}
}

// PreprocessIngredients normalizes a raw ingredient list.
func (s *RecommendService) PreprocessIngredients(items []any) []string {
	return s.pre.Preprocess(items)
}

// EnhanceRecipes enriches the recipes with derived fields and ranks them
// against the user's preferences and available ingredients. The returned
// metrics describe this run only.
func (s *RecommendService) EnhanceRecipes(ctx context.Context, recipes []domain.Recipe, prefs domain.Preferences, ingredients []any) ([]domain.Recipe, domain.RankMetrics) {
	processed := s.pre.Preprocess(ingredients)
	enriched := s.enricher.Enrich(recipes)
	return s.scorer.ScoreAndRank(enriched, prefs, processed)
}

// AnalyzeIngredients classifies the ingredient list and proposes
// complementary additions. Results are cached per normalized list; any
// cache failure falls through to a fresh computation.
func (s *RecommendService) AnalyzeIngredients(ctx context.Context, items []any) AnalysisResult {
	processed := s.pre.Preprocess(items)

	key := analysisCacheKey(processed)
	if cached, err := s.getCachedAnalysis(ctx, key); err == nil {
		s.logger.Debug("analysis cache hit", zap.String("key", key))
		return cached
	}

	result := AnalysisResult{
		Analysis:    s.analyzer.Analyze(processed),
		Suggestions: s.analyzer.Suggest(processed),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache analysis", zap.String("key", key), zap.Error(err))
		}
	}
	return result
}

func analysisCacheKey(ingredients []string) string {
	sum := xxhash.Sum64String(strings.Join(ingredients, "|"))
	return fmt.Sprintf("analysis:%016x", sum)
}

func (s *RecommendService) getCachedAnalysis(ctx context.Context, key string) (AnalysisResult, error) {
	if s.cache == nil {
		return AnalysisResult{}, domain.ErrCacheMiss
	}

	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return AnalysisResult{}, err
	}

	if result, ok := value.(AnalysisResult); ok {
		return result, nil
	}
	// Cache backends round-trip through JSON, so the stored value usually
	// comes back as a generic map.
	if dataMap, ok := value.(map[string]interface{}); ok {
		return mapToAnalysisResult(dataMap), nil
	}
	return AnalysisResult{}, domain.ErrCacheMiss
}

// mapToAnalysisResult converts a map (from JSON cache) to AnalysisResult
func mapToAnalysisResult(data map[string]interface{}) AnalysisResult {
	result := AnalysisResult{
		Analysis: domain.IngredientAnalysis{
			SuitableCategories: []domain.CategoryMatch{},
			IngredientGroups:   map[string][]string{},
		},
		Suggestions: []string{},
	}

	if analysis, ok := data["analysis"].(map[string]interface{}); ok {
		if cats, ok := analysis["suitable_categories"].([]interface{}); ok {
			for _, c := range cats {
				entry, ok := c.(map[string]interface{})
				if !ok {
					continue
				}
				match := domain.CategoryMatch{}
				if v, ok := entry["name"].(string); ok {
					match.Name = v
				}
				if v, ok := entry["match_score"].(float64); ok {
					match.MatchScore = v
				}
				result.Analysis.SuitableCategories = append(result.Analysis.SuitableCategories, match)
			}
		}
		if groups, ok := analysis["ingredient_groups"].(map[string]interface{}); ok {
			for name, members := range groups {
				list, ok := members.([]interface{})
				if !ok {
					continue
				}
				items := make([]string, 0, len(list))
				for _, m := range list {
					if v, ok := m.(string); ok {
						items = append(items, v)
					}
				}
				result.Analysis.IngredientGroups[name] = items
			}
		}
	}

	if suggestions, ok := data["suggested_additions"].([]interface{}); ok {
		for _, sugg := range suggestions {
			if v, ok := sugg.(string); ok {
				result.Suggestions = append(result.Suggestions, v)
			}
		}
	}

	return result
}
