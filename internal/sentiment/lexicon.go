package sentiment

import "strings"

// Lexicon holds the keyword sets used for substring matching.
// A Lexicon is never modified after construction.
type Lexicon struct {
	positive []string
	negative []string
}

var (
	defaultPositive = []string{
		"good", "great", "excellent", "happy", "love", "wonderful", "amazing", "best", "beautiful", "fantastic",
	}
	defaultNegative = []string{
		"bad", "terrible", "awful", "hate", "worst", "poor", "horrible", "sad", "ugly", "disgusting",
	}
)

// NewLexicon builds a lexicon from the given keywords.
// Keywords are lowercased; empty keywords are dropped since they would match any text.
func NewLexicon(positive, negative []string) *Lexicon {
	return &Lexicon{
		positive: normalizeKeywords(positive),
		negative: normalizeKeywords(negative),
	}
}

// DefaultLexicon returns the built-in English keyword sets.
func DefaultLexicon() *Lexicon {
	return NewLexicon(defaultPositive, defaultNegative)
}

// Positive returns a copy of the positive keywords.
func (l *Lexicon) Positive() []string {
	return append([]string(nil), l.positive...)
}

// Negative returns a copy of the negative keywords.
func (l *Lexicon) Negative() []string {
	return append([]string(nil), l.negative...)
}

func normalizeKeywords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}

// countMatches returns how many keywords occur in text. Each keyword counts once.
func countMatches(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}
