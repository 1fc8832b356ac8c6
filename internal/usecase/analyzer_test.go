package usecase

import (
	"reflect"
	"testing"

	"github.com/recipegenie/backend/internal/domain"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(DefaultVocabulary(), nil)
}

func TestAnalyzeClassifiesCategories(t *testing.T) {
	analyzer := newTestAnalyzer()

	got := analyzer.Analyze([]string{"tomato", "garlic", "pasta", "basil"})

	// 4 of 7 Italian keywords match: 0.5714 rounds to 0.57. No other
	// category clears the 0.15 threshold.
	want := []domain.CategoryMatch{{Name: "Italian", MatchScore: 0.57}}
	if !reflect.DeepEqual(got.SuitableCategories, want) {
		t.Errorf("SuitableCategories = %v, want %v", got.SuitableCategories, want)
	}
}

func TestAnalyzeThreshold(t *testing.T) {
	analyzer := newTestAnalyzer()

	// A single keyword hit scores 1/7, below the 0.15 cutoff.
	got := analyzer.Analyze([]string{"tomato"})
	if len(got.SuitableCategories) != 0 {
		t.Errorf("SuitableCategories = %v, want none below threshold", got.SuitableCategories)
	}
}

func TestAnalyzeGroupsIngredients(t *testing.T) {
	analyzer := newTestAnalyzer()

	got := analyzer.Analyze([]string{
		"chicken breast", "tomato", "apple", "rice", "milk", "salt", "dragon fruit",
	})

	want := map[string][]string{
		"Proteins":   {"chicken breast"},
		"Vegetables": {"tomato"},
		"Fruits":     {"apple"},
		"Grains":     {"rice"},
		"Dairy":      {"milk"},
		"Seasonings": {"salt"},
		"Other":      {"dragon fruit"},
	}
	if !reflect.DeepEqual(got.IngredientGroups, want) {
		t.Errorf("IngredientGroups = %v, want %v", got.IngredientGroups, want)
	}
}

func TestAnalyzeFirstGroupWins(t *testing.T) {
	analyzer := newTestAnalyzer()

	got := analyzer.Analyze([]string{"egg", "lemon pepper"})

	// "egg" is a protein keyword before it would ever reach Dairy;
	// "lemon pepper" hits Vegetables ("pepper") before Fruits ("lemon").
	if !reflect.DeepEqual(got.IngredientGroups["Proteins"], []string{"egg"}) {
		t.Errorf("Proteins = %v, want [egg]", got.IngredientGroups["Proteins"])
	}
	if !reflect.DeepEqual(got.IngredientGroups["Vegetables"], []string{"lemon pepper"}) {
		t.Errorf("Vegetables = %v, want [lemon pepper]", got.IngredientGroups["Vegetables"])
	}
	if _, ok := got.IngredientGroups["Fruits"]; ok {
		t.Error("Fruits group should be omitted when empty")
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	analyzer := newTestAnalyzer()

	got := analyzer.Analyze(nil)
	if len(got.SuitableCategories) != 0 || len(got.IngredientGroups) != 0 {
		t.Errorf("Analyze(nil) = %+v, want empty results", got)
	}
}

func TestSuggest(t *testing.T) {
	analyzer := newTestAnalyzer()

	t.Run("excludes ingredients already present", func(t *testing.T) {
		got := analyzer.Suggest([]string{"tomato", "garlic"})
		want := []string{"basil", "mozzarella", "olive oil", "onion"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Suggest() = %v, want %v", got, want)
		}
	})

	t.Run("orders by pairing frequency then first proposal", func(t *testing.T) {
		got := analyzer.Suggest([]string{"tomato", "beef"})
		// garlic and onion are proposed by both pairings; the rest once.
		want := []string{"garlic", "onion", "basil", "mozzarella", "olive oil"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Suggest() = %v, want %v", got, want)
		}
	})

	t.Run("caps at five suggestions", func(t *testing.T) {
		got := analyzer.Suggest([]string{"chicken", "fish", "potato"})
		if len(got) != 5 {
			t.Errorf("len(Suggest()) = %d, want 5", len(got))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := analyzer.Suggest(nil); len(got) != 0 {
			t.Errorf("Suggest(nil) = %v, want empty", got)
		}
	})
}
