// Package sentiment implements the keyword lexicon classifier.
package sentiment

import "strings"

// Sentiment is the outcome of classifying a piece of text.
type Sentiment string

// Classification results.
const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

func (s Sentiment) String() string {
	return string(s)
}

// Classifier maps text to a Sentiment using a Lexicon.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	lexicon *Lexicon
}

// NewClassifier creates a classifier. A nil lexicon selects DefaultLexicon.
func NewClassifier(lexicon *Lexicon) *Classifier {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Classifier{lexicon: lexicon}
}

// Trim removes leading and trailing code points up to and including U+0020.
// This covers ASCII control characters but leaves Unicode spaces such as U+00A0.
func Trim(text string) string {
	return strings.TrimFunc(text, func(r rune) bool { return r <= ' ' })
}

// Normalize trims and lowercases text the way Classify expects it.
func Normalize(text string) string {
	return strings.ToLower(Trim(text))
}

// Classify counts the positive and negative keywords found in text as substrings
// and returns whichever side has more matches. Ties, including no matches at all,
// are Neutral. Blank text is Neutral without scanning.
func (c *Classifier) Classify(text string) Sentiment {
	text = Normalize(text)
	if text == "" {
		return Neutral
	}

	positive := countMatches(text, c.lexicon.positive)
	negative := countMatches(text, c.lexicon.negative)

	switch {
	case positive > negative:
		return Positive
	case negative > positive:
		return Negative
	default:
		return Neutral
	}
}
