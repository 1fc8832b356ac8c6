package usecase

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/recipegenie/backend/internal/domain"
)

// ScoreWeights controls the contribution of each ranking signal. The four
// weights sum to 1.0 in the default configuration but are not required to.
type ScoreWeights struct {
	IngredientMatch float64
	UserPreference  float64
	Popularity      float64
	Complexity      float64
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		IngredientMatch: 0.4,
		UserPreference:  0.3,
		Popularity:      0.2,
		Complexity:      0.1,
	}
}

// Scorer ranks recipes by a weighted blend of ingredient availability, user
// preference history, popularity, and complexity. It holds no per-request
// state; every call returns its own metrics.
type Scorer struct {
	weights    ScoreWeights
	similarity domain.SimilarityProvider
	logger     *zap.Logger
}

// NewScorer builds a scorer. similarity may be nil; when set it refines the
// ingredient-match signal.
func NewScorer(weights ScoreWeights, similarity domain.SimilarityProvider, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{weights: weights, similarity: similarity, logger: logger}
}

// ScoreAndRank returns scored copies of the recipes sorted by descending
// relevance, with ai_rank assigned 1..N and ai_relevance_score rounded to 4
// decimals. Ties keep their input order. A signal whose inputs are absent
// contributes nothing for that recipe. On unexpected failure the input is
// returned unranked together with the run metrics.
func (s *Scorer) ScoreAndRank(recipes []domain.Recipe, prefs domain.Preferences, ingredients []string) ([]domain.Recipe, domain.RankMetrics) {
	start := time.Now()
	metrics := domain.RankMetrics{
		LastRunTime: start,
		RecipeCount: len(recipes),
	}

	if len(recipes) == 0 {
		return []domain.Recipe{}, metrics
	}

	ranked, err := s.scoreBatch(recipes, prefs, ingredients)
	metrics.ProcessingSeconds = time.Since(start).Seconds()
	if err != nil {
		s.logger.Warn("scoring failed, returning recipes unranked",
			zap.Int("count", len(recipes)),
			zap.Error(err))
		return recipes, metrics
	}

	s.logger.Info("ranked recipes",
		zap.Int("count", len(recipes)),
		zap.Float64("seconds", metrics.ProcessingSeconds))
	return ranked, metrics
}

func (s *Scorer) scoreBatch(recipes []domain.Recipe, prefs domain.Preferences, ingredients []string) (result []domain.Recipe, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errPanic("score batch", r)
		}
	}()

	scored := make([]domain.Recipe, len(recipes))
	totals := make([]float64, len(recipes))
	for i, recipe := range recipes {
		scored[i] = recipe.Clone()
	}

	s.applyIngredientMatch(scored, totals, ingredients)
	s.applyPreferences(scored, totals, prefs)
	s.applyPopularity(scored, totals)
	s.applyComplexity(scored, totals)

	order := make([]int, len(scored))
	for i := range order {
		order[i] = i
	}
	// Stable sort on the unrounded totals so equal scores keep input order.
	sort.SliceStable(order, func(a, b int) bool {
		return totals[order[a]] > totals[order[b]]
	})

	result = make([]domain.Recipe, len(scored))
	for rank, idx := range order {
		recipe := scored[idx]
		recipe[domain.KeyRank] = rank + 1
		recipe[domain.KeyRelevanceScore] = round4(totals[idx])
		result[rank] = recipe
	}
	return result, nil
}

// applyIngredientMatch scores how much of each recipe's ingredient list the
// user already has. Per-recipe scores are normalized by the batch maximum
// before weighting, so the best-matching recipe always contributes the full
// weight.
func (s *Scorer) applyIngredientMatch(recipes []domain.Recipe, totals []float64, ingredients []string) {
	if len(ingredients) == 0 {
		return
	}

	raw := make([]float64, len(recipes))
	present := make([]bool, len(recipes))
	maxScore := 0.0
	for i, recipe := range recipes {
		recipeIngredients := recipe.Strings("ingredients")
		if recipeIngredients == nil {
			continue
		}
		present[i] = true
		raw[i] = s.ingredientMatchScore(recipeIngredients, ingredients)
		if raw[i] > maxScore {
			maxScore = raw[i]
		}
	}

	for i := range recipes {
		if !present[i] {
			continue
		}
		score := raw[i]
		if maxScore > 0 {
			score = raw[i] / maxScore
		}
		recipes[i][domain.KeyIngredientMatchScore] = score
		totals[i] += score * s.weights.IngredientMatch
	}
}

// ingredientMatchScore is the fraction of recipe ingredients covered by the
// user's ingredients, where a user ingredient covers a recipe ingredient by
// case-insensitive substring containment. A coverage above 0.8 earns a 1.2x
// boost, capped at 1.0. An injected similarity provider can only raise the
// rule-based score.
func (s *Scorer) ingredientMatchScore(recipeIngredients, userIngredients []string) float64 {
	if len(recipeIngredients) == 0 || len(userIngredients) == 0 {
		return 0.0
	}

	userLower := make([]string, len(userIngredients))
	for i, ing := range userIngredients {
		userLower[i] = strings.ToLower(ing)
	}

	matched := 0
	for _, recipeIng := range recipeIngredients {
		recipeLower := strings.ToLower(recipeIng)
		for _, userIng := range userLower {
			if strings.Contains(recipeLower, userIng) {
				matched++
				break
			}
		}
	}

	score := float64(matched) / float64(len(recipeIngredients))
	if score > 0.8 {
		score *= 1.2
	}
	score = minFloat(score, 1.0)

	if s.similarity != nil {
		if sim, err := s.similarity.Similarity(context.Background(), recipeIngredients, userIngredients); err == nil {
			score = math.Max(score, minFloat(sim, 1.0))
		}
	}
	return score
}

// applyPreferences scores favorites, cuisine preferences, dietary
// restrictions, and past ratings. The signal is active only when the
// preferences carry a favorites key; scores are batch-max normalized.
func (s *Scorer) applyPreferences(recipes []domain.Recipe, totals []float64, prefs domain.Preferences) {
	if !prefs.Has("favorites") {
		return
	}

	favorites := make(map[string]struct{})
	for _, fav := range prefs.Strings("favorites") {
		favorites[fav] = struct{}{}
	}
	cuisines := make(map[string]struct{})
	for _, c := range prefs.Strings("cuisine_preferences") {
		cuisines[c] = struct{}{}
	}
	restrictions := prefs.Strings("dietary_restrictions")
	interactions := prefs.Interactions()

	raw := make([]float64, len(recipes))
	maxScore := 0.0
	for i, recipe := range recipes {
		raw[i] = preferenceScore(recipe, favorites, cuisines, restrictions, interactions)
		if raw[i] > maxScore {
			maxScore = raw[i]
		}
	}

	for i := range recipes {
		score := raw[i]
		if maxScore > 0 {
			score = raw[i] / maxScore
		}
		recipes[i][domain.KeyPreferenceScore] = score
		totals[i] += score * s.weights.UserPreference
	}
}

func preferenceScore(recipe domain.Recipe, favorites, cuisines map[string]struct{}, restrictions []string, interactions []domain.Interaction) float64 {
	score := 0.0
	recipeID := recipe.ID()

	if _, ok := favorites[recipeID]; ok {
		score += 1.0
	}

	if len(cuisines) > 0 && recipe.Has("cuisine") {
		if _, ok := cuisines[recipe.String("cuisine")]; ok {
			score += 0.5
		}
	}

	if len(restrictions) > 0 && recipe.Has(domain.KeyTags) {
		tags := make(map[string]struct{})
		for _, tag := range recipe.Strings(domain.KeyTags) {
			tags[strings.ToLower(tag)] = struct{}{}
		}
		for _, restriction := range restrictions {
			if _, hit := tags[strings.ToLower(restriction)]; hit {
				score -= 0.7
			}
		}
	}

	for _, it := range interactions {
		if it.RecipeID == recipeID && it.HasRating {
			score += (it.Rating / 5.0) * 0.8
		}
	}

	return math.Max(score, 0.0)
}

// applyPopularity normalizes popularity by the batch maximum. Only recipes
// carrying the field participate.
func (s *Scorer) applyPopularity(recipes []domain.Recipe, totals []float64) {
	maxPop := 0.0
	for _, recipe := range recipes {
		if pop, ok := recipe.Float("popularity"); ok && pop > maxPop {
			maxPop = pop
		}
	}
	if maxPop <= 0 {
		return
	}

	for i, recipe := range recipes {
		pop, ok := recipe.Float("popularity")
		if !ok {
			continue
		}
		normalized := pop / maxPop
		recipes[i][domain.KeyNormalizedPopularity] = normalized
		totals[i] += normalized * s.weights.Popularity
	}
}

// applyComplexity rewards medium complexity: the transform peaks at 0.5 and
// falls off linearly toward both extremes. Not batch-normalized.
func (s *Scorer) applyComplexity(recipes []domain.Recipe, totals []float64) {
	for i, recipe := range recipes {
		complexity, ok := recipe.Float(domain.KeyComplexity)
		if !ok {
			continue
		}
		transformed := 1 - math.Abs(complexity-0.5)*2
		recipes[i][domain.KeyComplexityScore] = transformed
		totals[i] += transformed * s.weights.Complexity
	}
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
