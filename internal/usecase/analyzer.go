package usecase

import (
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/recipegenie/backend/internal/domain"
)

// Analyzer classifies ingredient lists against the cuisine and food-group
// vocabularies and proposes complementary ingredients.
type Analyzer struct {
	vocab  Vocabulary
	logger *zap.Logger
}

func NewAnalyzer(vocab Vocabulary, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{vocab: vocab, logger: logger}
}

// Analyze classifies the ingredients into suitable cuisine categories and
// groups them by food group. An empty list yields empty results, not an
// error.
func (a *Analyzer) Analyze(ingredients []string) domain.IngredientAnalysis {
	if len(ingredients) == 0 {
		return domain.IngredientAnalysis{
			SuitableCategories: []domain.CategoryMatch{},
			IngredientGroups:   map[string][]string{},
		}
	}
	return domain.IngredientAnalysis{
		SuitableCategories: a.classify(ingredients),
		IngredientGroups:   a.group(ingredients),
	}
}

// classify scores each cuisine category by the fraction of its vocabulary
// present in the ingredient list (substring match against any ingredient).
// Categories scoring above 0.15 are returned sorted by descending score;
// ties keep vocabulary order. Scores are rounded to 2 decimals.
func (a *Analyzer) classify(ingredients []string) []domain.CategoryMatch {
	lowered := lowerAll(ingredients)

	matches := make([]domain.CategoryMatch, 0, len(a.vocab.Categories))
	for _, category := range a.vocab.Categories {
		hits := 0
		for _, keyword := range category.Keywords {
			for _, ing := range lowered {
				if strings.Contains(ing, keyword) {
					hits++
					break
				}
			}
		}
		score := float64(hits) / float64(len(category.Keywords))
		matches = append(matches, domain.CategoryMatch{Name: category.Name, MatchScore: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	suitable := make([]domain.CategoryMatch, 0, len(matches))
	for _, m := range matches {
		if m.MatchScore > 0.15 {
			m.MatchScore = math.Round(m.MatchScore*100) / 100
			suitable = append(suitable, m)
		}
	}
	return suitable
}

// group assigns each ingredient to the first food group whose keywords match
// it, or to "Other". Empty groups are omitted. Ingredients keep their
// original casing in the output.
func (a *Analyzer) group(ingredients []string) map[string][]string {
	groups := make(map[string][]string)
	for _, ing := range ingredients {
		lower := strings.ToLower(ing)
		assigned := false
		for _, fg := range a.vocab.FoodGroups {
			if containsAny(lower, fg.Keywords) {
				groups[fg.Name] = append(groups[fg.Name], ing)
				assigned = true
				break
			}
		}
		if !assigned {
			groups["Other"] = append(groups["Other"], ing)
		}
	}
	return groups
}

// Suggest proposes up to 5 complementary ingredients from the pairing table.
// A pair is skipped when it is already contained in any of the user's
// ingredients. Suggestions are ordered by how many pairings proposed them,
// ties by first proposal.
func (a *Analyzer) Suggest(ingredients []string) []string {
	if len(ingredients) == 0 {
		return []string{}
	}

	lowered := lowerAll(ingredients)

	counts := make(map[string]int)
	order := make([]string, 0, 16)
	for _, ing := range lowered {
		for _, pairing := range a.vocab.Pairings {
			if !strings.Contains(ing, pairing.Base) {
				continue
			}
			for _, pair := range pairing.Pairs {
				if containedInAny(pair, lowered) {
					continue
				}
				if _, seen := counts[pair]; !seen {
					order = append(order, pair)
				}
				counts[pair]++
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > 5 {
		order = order[:5]
	}
	return order
}

func containedInAny(needle string, haystacks []string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToLower(s)
	}
	return out
}
