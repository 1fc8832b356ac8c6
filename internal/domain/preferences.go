package domain

// Preferences is the optional user-preference payload. Like Recipe it is an
// open schema: the absence of a key disables the corresponding scoring
// signal rather than producing an error.
type Preferences map[string]any

// Interaction is one entry of the past_interactions sequence.
type Interaction struct {
	RecipeID  string
	Rating    float64
	HasRating bool
}

// Has reports whether the key is present, even with an empty value.
// Key presence (not value truthiness) is what gates scoring signals.
func (p Preferences) Has(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p[key]
	return ok
}

// Strings returns the field coerced to a string slice (nil when absent or
// not a sequence).
func (p Preferences) Strings(key string) []string {
	if p == nil {
		return nil
	}
	return Recipe(p).Strings(key)
}

// Interactions parses past_interactions. Malformed entries are skipped.
func (p Preferences) Interactions() []Interaction {
	if p == nil {
		return nil
	}
	vals, ok := Recipe(p).Values("past_interactions")
	if !ok {
		return nil
	}
	out := make([]Interaction, 0, len(vals))
	for _, v := range vals {
		entry, ok := v.(map[string]any)
		if !ok {
			continue
		}
		it := Interaction{RecipeID: CoerceString(entry["recipe_id"])}
		if rating, ok := Recipe(entry).Float("rating"); ok {
			it.Rating = rating
			it.HasRating = true
		}
		out = append(out, it)
	}
	return out
}
