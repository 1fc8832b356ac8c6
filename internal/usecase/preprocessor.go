package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/recipegenie/backend/internal/domain"
)

// Compiled regex patterns for ingredient preprocessing
var (
	// Punctuation except hyphen is replaced with a space so hyphenated
	// compound words survive as single tokens.
	punctuationRegex = regexp.MustCompile(`[` + regexp.QuoteMeta("!\"#$%&'()*+,./:;<=>?@[\\]^_`{|}~") + `]`)

	// Matches simple fractions, decimals, and integers (in that order, so
	// "3/4" is not consumed as two integers).
	quantityRegex = regexp.MustCompile(`\d+/\d+|\d+\.\d+|\d+`)

	// Multiple spaces cleanup
	multiSpaceRegex = regexp.MustCompile(`\s+`)
)

// asciiFolder decomposes to NFKD and drops combining marks, turning
// "jalapeño" into "jalapeno". Remaining non-ASCII runes are discarded
// afterwards in Clean.
var asciiFolder = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Preprocessor normalizes free-text ingredient strings into canonical
// lowercase tokens with quantities, units, and descriptors removed.
type Preprocessor struct {
	vocab            Vocabulary
	unitPatterns     []*regexp.Regexp
	prepPatterns     []*regexp.Regexp
	boilerplateRegex *regexp.Regexp
	logger           *zap.Logger
}

// NewPreprocessor compiles the vocabulary into matchers. The word-boundary
// patterns guarantee whole-word removal only ("g" never eats "garlic").
func NewPreprocessor(vocab Vocabulary, logger *zap.Logger) *Preprocessor {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Preprocessor{vocab: vocab, logger: logger}

	p.unitPatterns = make([]*regexp.Regexp, 0, len(vocab.Units))
	for _, unit := range vocab.Units {
		p.unitPatterns = append(p.unitPatterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(unit)+`\b`))
	}

	p.prepPatterns = make([]*regexp.Regexp, 0, len(vocab.PrepTerms))
	for _, term := range vocab.PrepTerms {
		p.prepPatterns = append(p.prepPatterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(term)+`\b`))
	}

	if len(vocab.BoilerplatePhrases) > 0 {
		quoted := make([]string, len(vocab.BoilerplatePhrases))
		for i, phrase := range vocab.BoilerplatePhrases {
			quoted[i] = regexp.QuoteMeta(phrase)
		}
		p.boilerplateRegex = regexp.MustCompile(strings.Join(quoted, "|"))
	}

	return p
}

// Clean lowercases, folds diacritics to ASCII, strips punctuation except
// hyphens, and collapses whitespace. Pure and total: any input string yields
// a result, empty input yields "".
func (p *Preprocessor) Clean(text string) string {
	if text == "" {
		return ""
	}

	cleaned := strings.ToLower(text)

	if folded, _, err := transform.String(asciiFolder, cleaned); err == nil {
		cleaned = folded
	}

	// Drop any non-ASCII remnants the fold could not decompose.
	var b strings.Builder
	b.Grow(len(cleaned))
	for _, r := range cleaned {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	cleaned = b.String()

	cleaned = punctuationRegex.ReplaceAllString(cleaned, " ")
	cleaned = multiSpaceRegex.ReplaceAllString(cleaned, " ")

	return strings.TrimSpace(cleaned)
}

// NormalizeIngredient reduces a raw ingredient string to its canonical form.
// The stages run in a fixed order; each operates on the previous output:
// clean, strip quantities, strip units, apply substitutions, strip
// preparation terms, strip boilerplate phrases, collapse whitespace.
// The function is idempotent: normalized output is a fixed point.
func (p *Preprocessor) NormalizeIngredient(raw string) string {
	if raw == "" {
		return ""
	}

	cleaned := p.Clean(raw)

	// Remove quantities (numbers and fractions)
	cleaned = quantityRegex.ReplaceAllString(cleaned, "")

	// Remove measurement units (whole words only)
	for _, pattern := range p.unitPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}

	// Canonicalize known variants; substring containment, declaration
	// order, and multiple substitutions may apply to the same string.
	for _, sub := range p.vocab.Substitutions {
		if strings.Contains(cleaned, sub.From) {
			cleaned = strings.ReplaceAll(cleaned, sub.From, sub.To)
		}
	}

	// Remove preparation adjectives (whole words only)
	for _, pattern := range p.prepPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}

	// Remove "to taste" and similar phrases
	if p.boilerplateRegex != nil {
		cleaned = p.boilerplateRegex.ReplaceAllString(cleaned, "")
	}

	cleaned = multiSpaceRegex.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// Preprocess normalizes a batch of raw ingredient values, dropping results
// of length <= 1 and deduplicating while preserving first-seen order.
// Non-string values are coerced to strings first. If the batch fails
// unexpectedly the original values are returned unprocessed: downstream
// scoring degrades gracefully with raw strings, so failing open beats
// failing the request.
func (p *Preprocessor) Preprocess(items []any) []string {
	if len(items) == 0 {
		return []string{}
	}

	originals := make([]string, len(items))
	for i, item := range items {
		originals[i] = domain.CoerceString(item)
	}

	processed, err := p.preprocessBatch(originals)
	if err != nil {
		p.logger.Warn("ingredient preprocessing failed, returning raw input",
			zap.Int("count", len(originals)),
			zap.Error(err))
		return originals
	}

	return processed
}

// PreprocessStrings is Preprocess for callers that already hold strings.
func (p *Preprocessor) PreprocessStrings(items []string) []string {
	values := make([]any, len(items))
	for i, s := range items {
		values[i] = s
	}
	return p.Preprocess(values)
}

func (p *Preprocessor) preprocessBatch(items []string) (result []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("preprocess batch panicked: %v", r)
		}
	}()

	result = make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, raw := range items {
		normalized := p.NormalizeIngredient(raw)
		// Skip empty or single-character results
		if len(normalized) <= 1 {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	return result, nil
}
