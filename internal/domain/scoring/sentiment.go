package scoring

import (
	"strings"

	"github.com/empowerhub/empowerhub-api/internal/domain"
)

// SentimentResult is the outcome of classifying a piece of text: a label and
// a heuristic confidence in [0,1]. It is never persisted as a whole; callers
// store its fields.
type SentimentResult struct {
	Label      domain.Sentiment
	Confidence float64
}

// classifySentiment maps free text to a sentiment label with a fixed
// confidence. It case-folds the text and counts keyword hits from the
// positive and negative sets.
//
// Matching is deliberately substring containment, not word-boundary: a
// keyword counts if it appears anywhere in the folded text, even inside
// another word ("tired" matches "retired"). This mirrors the behavior the
// stored assessments were calibrated against, so it must not be tightened
// without versioning the results.
//
// Ties, including text with no hits at all, classify as NEUTRAL. The
// function is pure and total: every input, empty text included, produces a
// result.
func classifySentiment(text string, params *Params) SentimentResult {
	folded := strings.ToLower(text)

	var positive, negative int
	for _, keyword := range params.PositiveKeywords {
		if strings.Contains(folded, keyword) {
			positive++
		}
	}
	for _, keyword := range params.NegativeKeywords {
		if strings.Contains(folded, keyword) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return SentimentResult{Label: domain.SentimentPositive, Confidence: params.MatchConfidence}
	case negative > positive:
		return SentimentResult{Label: domain.SentimentNegative, Confidence: params.MatchConfidence}
	default:
		return SentimentResult{Label: domain.SentimentNeutral, Confidence: params.NeutralConfidence}
	}
}
