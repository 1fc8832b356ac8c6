package domain

import "fmt"

// Recipe is an open-schema recipe record. Callers control the fields;
// anything beyond the well-known keys (id, title, ingredients, instructions,
// cuisine, tags, popularity, cooking_time_minutes) is carried through
// untouched. All accessors are defensive: a missing or mistyped field is
// never an error, just an absent value.
type Recipe map[string]any

// Derived field keys written by the enrichment and ranking pipeline.
const (
	KeyNormalizedIngredients = "normalized_ingredients"
	KeyComplexity            = "complexity"
	KeyCookingTimeMinutes    = "cooking_time_minutes"
	KeyEstimatedTime         = "estimated_time"
	KeyTags                  = "tags"
	KeyRecipeHash            = "recipe_hash"
	KeyIngredientMatchScore  = "ingredient_match_score"
	KeyPreferenceScore       = "preference_score"
	KeyNormalizedPopularity  = "normalized_popularity"
	KeyComplexityScore       = "complexity_score"
	KeyRelevanceScore        = "ai_relevance_score"
	KeyRank                  = "ai_rank"
)

// Clone returns a shallow copy. The pipeline never mutates a caller's
// record; every derived field is written to a copy.
func (r Recipe) Clone() Recipe {
	out := make(Recipe, len(r)+6)
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Has reports whether the key is present, regardless of its value.
func (r Recipe) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// String returns the field coerced to a string, or "" when absent or nil.
func (r Recipe) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// ID returns the recipe id coerced to a string ("" when absent).
func (r Recipe) ID() string {
	return r.String("id")
}

// Values returns the field as a generic slice. ok is false when the field
// is absent or is not a sequence.
func (r Recipe) Values(key string) ([]any, bool) {
	switch v := r[key].(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// Strings returns the field as a slice of coerced strings (nil when the
// field is absent or not a sequence).
func (r Recipe) Strings(key string) []string {
	vals, ok := r.Values(key)
	if !ok {
		return nil
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = CoerceString(v)
	}
	return out
}

// Float returns the field as a float64. ok is false when the field is
// absent or not numeric. JSON numbers arrive as float64; ints are accepted
// for records built in code.
func (r Recipe) Float(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// CoerceString renders any value as a string the way the scoring pipeline
// compares them. nil becomes "".
func CoerceString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Truthy implements the loose-schema presence rule used across enrichment:
// nil, "", numeric zero, false, and empty sequences/maps all count as absent.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case []any:
		return len(t) > 0
	case []string:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
