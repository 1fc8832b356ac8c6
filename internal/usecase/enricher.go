package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/recipegenie/backend/internal/domain"
)

// Splits free-text instructions into sentences for step counting. A trailing
// terminator yields an empty final segment which is counted as a step.
var sentenceSplitRegex = regexp.MustCompile(`[.!?]+`)

// Enricher derives computed fields on recipe records: normalized ingredient
// lists, a complexity score, a cooking-time estimate, generated tags, and a
// deduplication hash. Derived fields never overwrite caller-provided values.
type Enricher struct {
	vocab  Vocabulary
	pre    *Preprocessor
	logger *zap.Logger
}

func NewEnricher(vocab Vocabulary, pre *Preprocessor, logger *zap.Logger) *Enricher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enricher{vocab: vocab, pre: pre, logger: logger}
}

// Enrich returns enriched copies of the given recipes. The originals are
// never mutated. On unexpected failure the input slice is returned as-is so
// a malformed record degrades ranking quality instead of failing the request.
func (e *Enricher) Enrich(recipes []domain.Recipe) []domain.Recipe {
	if len(recipes) == 0 {
		return []domain.Recipe{}
	}

	enriched, err := e.enrichBatch(recipes)
	if err != nil {
		e.logger.Warn("recipe enrichment failed, returning raw records",
			zap.Int("count", len(recipes)),
			zap.Error(err))
		return recipes
	}
	return enriched
}

func (e *Enricher) enrichBatch(recipes []domain.Recipe) (result []domain.Recipe, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errPanic("enrich batch", r)
		}
	}()

	result = make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, e.enrichOne(recipe))
	}
	return result, nil
}

func (e *Enricher) enrichOne(recipe domain.Recipe) domain.Recipe {
	out := recipe.Clone()

	rawIngredients, hasIngredients := recipe.Values("ingredients")
	hasIngredients = hasIngredients && len(rawIngredients) > 0

	if hasIngredients {
		out[domain.KeyNormalizedIngredients] = e.pre.Preprocess(rawIngredients)
	}

	// Complexity combines ingredient count and step count, each scaled with
	// diminishing returns (15 ingredients / 10 steps saturate their half).
	complexity := 0.0
	if hasIngredients {
		complexity += minFloat(float64(len(rawIngredients))/15, 1.0) * 0.5
	}
	if steps := countSteps(recipe); steps > 0 {
		complexity += minFloat(float64(steps)/10, 1.0) * 0.5
	}
	out[domain.KeyComplexity] = minFloat(complexity, 1.0)

	// Estimate cooking time when not provided: 20-60 minutes by complexity.
	if !domain.Truthy(recipe[domain.KeyCookingTimeMinutes]) {
		out[domain.KeyCookingTimeMinutes] = int(20 + complexity*40)
		out[domain.KeyEstimatedTime] = true
	}

	if !domain.Truthy(recipe[domain.KeyTags]) {
		out[domain.KeyTags] = e.generateTags(recipe)
	}

	// Deduplication hash over title plus the raw ingredient text.
	if recipe.Has("title") && hasIngredients {
		parts := make([]string, 0, len(rawIngredients)+1)
		parts = append(parts, recipe.String("title"))
		for _, ing := range rawIngredients {
			parts = append(parts, domain.CoerceString(ing))
		}
		sum := xxhash.Sum64String(parts[0] + strings.Join(parts[1:], " "))
		out[domain.KeyRecipeHash] = strconv.FormatUint(sum, 10)
	}

	return out
}

// countSteps returns the number of instruction steps: the length of a list,
// or the sentence count of a string (trailing terminators count an empty
// final sentence). Zero when instructions are absent or empty.
func countSteps(recipe domain.Recipe) int {
	v, ok := recipe["instructions"]
	if !ok || !domain.Truthy(v) {
		return 0
	}
	if vals, isList := recipe.Values("instructions"); isList {
		return len(vals)
	}
	return len(sentenceSplitRegex.Split(domain.CoerceString(v), -1))
}

// generateTags derives tags from the recipe's cuisine, title, and ingredient
// text. Rules run in a fixed order and each tag appears once.
func (e *Enricher) generateTags(recipe domain.Recipe) []string {
	tags := make([]string, 0, 8)
	seen := make(map[string]struct{}, 8)
	add := func(tag string) {
		if tag == "" {
			return
		}
		if _, dup := seen[tag]; dup {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	// Cuisine field is carried verbatim (trimmed, not lowercased).
	if v, ok := recipe["cuisine"]; ok && domain.Truthy(v) {
		add(strings.TrimSpace(domain.CoerceString(v)))
	}

	haystack := tagHaystack(recipe)

	if !containsAny(haystack, e.vocab.MeatIngredients) {
		add("vegetarian")
		if !containsAny(haystack, e.vocab.AnimalProducts) {
			add("vegan")
		}
	}

	// Meal type and cooking method: first match wins within each family.
	for _, set := range e.vocab.MealTypes {
		if containsAny(haystack, set.Keywords) {
			add(set.Name)
			break
		}
	}

	if containsAny(haystack, e.vocab.DessertKeywords) {
		add("dessert")
	}

	for _, set := range e.vocab.CookingMethods {
		if containsAny(haystack, set.Keywords) {
			add(set.Name)
			break
		}
	}

	// Cuisines are cumulative: every matching cuisine is tagged.
	for _, set := range e.vocab.CuisineKeywords {
		if containsAny(haystack, set.Keywords) {
			add(set.Name)
		}
	}

	return tags
}

// tagHaystack builds the lowercase title-plus-ingredients text the tag rules
// match against.
func tagHaystack(recipe domain.Recipe) string {
	parts := []string{recipe.String("title")}
	if vals, ok := recipe.Values("ingredients"); ok {
		for _, v := range vals {
			parts = append(parts, domain.CoerceString(v))
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func errPanic(op string, r any) error {
	return fmt.Errorf("%s panicked: %v", op, r)
}
