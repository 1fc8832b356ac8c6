package usecase

import "strings"

// Vocabulary bundles every fixed lookup table the engine matches against.
// It is built once at startup and shared read-only across requests; tests
// inject trimmed-down tables through the same value.
type Vocabulary struct {
	// Units are measurement words stripped from ingredient strings
	// (whole-word matches only).
	Units []string

	// Substitutions map plural/variant ingredient forms to canonical ones.
	// Applied by substring containment, in declaration order; more than one
	// may apply to the same string.
	Substitutions []Substitution

	// PrepTerms are preparation adjectives stripped whole-word.
	PrepTerms []string

	// BoilerplatePhrases are trailing recipe phrases stripped verbatim.
	BoilerplatePhrases []string

	// MeatIngredients disqualify the vegetarian tag.
	MeatIngredients []string

	// AnimalProducts disqualify the vegan tag (checked only for vegetarian
	// recipes).
	AnimalProducts []string

	// MealTypes are checked in order; the first matching set wins.
	MealTypes []KeywordSet

	// DessertKeywords are checked independently of meal type.
	DessertKeywords []string

	// CookingMethods are checked in order; the first matching set wins.
	CookingMethods []KeywordSet

	// CuisineKeywords tag every matching cuisine, not just the first.
	CuisineKeywords []KeywordSet

	// Categories define the cuisine classification vocabulary for
	// ingredient analysis.
	Categories []KeywordSet

	// FoodGroups are checked in order; an ingredient joins the first
	// matching group.
	FoodGroups []KeywordSet

	// Pairings propose complementary ingredients for common bases.
	Pairings []Pairing
}

// KeywordSet is a named keyword vocabulary.
type KeywordSet struct {
	Name     string
	Keywords []string
}

// Substitution rewrites From to To wherever From occurs.
type Substitution struct {
	From string
	To   string
}

// Pairing lists ingredients that go well with a base ingredient.
type Pairing struct {
	Base  string
	Pairs []string
}

// DefaultVocabulary returns the built-in tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Units: []string{
			"cup", "cups", "tablespoon", "tablespoons", "tbsp", "teaspoon", "teaspoons", "tsp",
			"ounce", "ounces", "oz", "pound", "pounds", "lb", "lbs", "gram", "grams", "g",
			"kilogram", "kilograms", "kg", "ml", "milliliter", "milliliters", "liter", "liters",
			"pinch", "pinches", "dash", "dashes", "piece", "pieces", "slice", "slices",
			"bunch", "bunches", "clove", "cloves", "sprig", "sprigs", "stalk", "stalks",
		},
		Substitutions: []Substitution{
			{"tomatoes", "tomato"},
			{"onions", "onion"},
			{"potatoes", "potato"},
			{"carrots", "carrot"},
			{"fresh garlic", "garlic"},
			{"minced garlic", "garlic"},
			{"garlic cloves", "garlic"},
			{"olive oil", "oil"},
			{"vegetable oil", "oil"},
			{"canola oil", "oil"},
			{"bell peppers", "bell pepper"},
			{"red pepper", "bell pepper"},
			{"green pepper", "bell pepper"},
		},
		PrepTerms: []string{
			"fresh", "chopped", "diced", "minced", "sliced", "grated", "crushed",
			"peeled", "cubed", "julienned", "frozen", "canned", "dried",
		},
		BoilerplatePhrases: []string{
			"to taste", "as needed", "for serving", "for garnish",
		},
		MeatIngredients: []string{
			"chicken", "beef", "pork", "lamb", "turkey", "fish",
			"salmon", "tuna", "shrimp", "bacon", "ham", "sausage",
		},
		AnimalProducts: []string{
			"milk", "cheese", "cream", "yogurt", "butter",
			"egg", "honey", "mayo", "mayonnaise",
		},
		MealTypes: []KeywordSet{
			{"breakfast", []string{"breakfast", "pancake", "oatmeal", "cereal"}},
			{"lunch", []string{"sandwich", "wrap", "salad"}},
			{"dinner", []string{"dinner", "roast", "steak"}},
		},
		DessertKeywords: []string{
			"dessert", "cake", "cookie", "sweet", "chocolate", "ice cream",
		},
		CookingMethods: []KeywordSet{
			{"grilled", []string{"grill", "grilled", "bbq", "barbecue"}},
			{"baked", []string{"bake", "baked", "roast", "roasted"}},
			{"fried", []string{"fry", "fried", "deep fried"}},
		},
		CuisineKeywords: []KeywordSet{
			{"italian", []string{"pasta", "pizza", "risotto", "italian"}},
			{"mexican", []string{"taco", "burrito", "quesadilla", "mexican", "salsa"}},
			{"asian", []string{"stir fry", "tofu", "soy sauce", "asian"}},
			{"indian", []string{"curry", "masala", "indian"}},
			{"mediterranean", []string{"mediterranean", "greek", "feta", "olive"}},
		},
		Categories: []KeywordSet{
			{"Italian", []string{"pasta", "tomato", "basil", "mozzarella", "parmesan", "olive oil", "garlic"}},
			{"Mexican", []string{"tortilla", "beans", "avocado", "cilantro", "lime", "jalapeno", "corn"}},
			{"Asian", []string{"soy sauce", "ginger", "rice", "sesame oil", "tofu", "fish sauce", "rice vinegar"}},
			{"Mediterranean", []string{"feta", "cucumber", "chickpeas", "lemon", "olive", "tahini", "mint"}},
			{"American", []string{"ground beef", "potato", "corn", "bread", "cheddar", "bacon", "ketchup"}},
			{"Dessert", []string{"sugar", "flour", "vanilla", "chocolate", "butter", "egg", "cream"}},
		},
		FoodGroups: []KeywordSet{
			{"Proteins", []string{"chicken", "beef", "pork", "tofu", "fish", "shrimp", "egg", "beans", "lentils"}},
			{"Vegetables", []string{"onion", "tomato", "lettuce", "carrot", "broccoli", "pepper", "spinach", "zucchini"}},
			{"Fruits", []string{"apple", "banana", "orange", "berries", "mango", "lemon", "lime"}},
			{"Grains", []string{"rice", "pasta", "bread", "quinoa", "oats", "flour", "tortilla"}},
			{"Dairy", []string{"milk", "cheese", "yogurt", "cream", "butter"}},
			{"Seasonings", []string{"salt", "pepper", "garlic", "herb", "spice", "sauce"}},
		},
		Pairings: []Pairing{
			{"tomato", []string{"basil", "mozzarella", "olive oil", "garlic", "onion"}},
			{"chicken", []string{"garlic", "lemon", "rosemary", "thyme", "onion", "potato"}},
			{"beef", []string{"onion", "garlic", "mushroom", "carrot", "potato", "red wine"}},
			{"pasta", []string{"tomato sauce", "garlic", "parmesan", "olive oil", "basil"}},
			{"rice", []string{"soy sauce", "egg", "peas", "carrot", "onion", "garlic"}},
			{"potato", []string{"butter", "cheese", "bacon", "sour cream", "garlic", "rosemary"}},
			{"fish", []string{"lemon", "butter", "garlic", "dill", "olive oil", "capers"}},
		},
	}
}

// containsAny reports whether haystack contains any of the keywords.
func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
