package domain

import "time"

// CategoryMatch is one cuisine category scored against the user's
// ingredient list. MatchScore is the fraction of the category's defining
// vocabulary found in the list, in [0,1], rounded to 2 decimals.
type CategoryMatch struct {
	Name       string  `json:"name"`
	MatchScore float64 `json:"match_score"`
}

// IngredientAnalysis is the result of classifying an ingredient list.
type IngredientAnalysis struct {
	SuitableCategories []CategoryMatch     `json:"suitable_categories"`
	IngredientGroups   map[string][]string `json:"ingredient_groups"`
}

// RankMetrics describes one scoring run. It is returned per call rather
// than held on the scorer, so the engine carries no mutable state between
// requests.
type RankMetrics struct {
	LastRunTime       time.Time `json:"last_run_time"`
	RecipeCount       int       `json:"recipe_count"`
	ProcessingSeconds float64   `json:"processing_time_seconds"`
}
