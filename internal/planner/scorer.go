package planner

import (
	"context"
	"math"
	"strings"
	"unicode"
)

// Scorer ranks activity descriptions against the traveler's combined
// interest and style text. Scores are in [0,1]; higher means a better
// match. The planner treats scores as opaque sortable floats, so any
// implementation (embedding similarity, keyword overlap) substitutes.
type Scorer interface {
	ScoreActivities(ctx context.Context, preferenceText string, descriptions []string) ([]float64, error)
}

// KeywordScorer is the default in-process scorer: cosine similarity
// over term-frequency vectors of lowercased tokens. Deterministic and
// dependency-free, so itinerary generation never needs the network.
type KeywordScorer struct{}

var _ Scorer = (*KeywordScorer)(nil)

func NewKeywordScorer() *KeywordScorer { return &KeywordScorer{} }

func (s *KeywordScorer) ScoreActivities(_ context.Context, preferenceText string, descriptions []string) ([]float64, error) {
	prefVec := termFrequency(preferenceText)

	scores := make([]float64, len(descriptions))
	for i, desc := range descriptions {
		scores[i] = cosineSimilarity(prefVec, termFrequency(desc))
	}
	return scores, nil
}

func termFrequency(text string) map[string]float64 {
	freq := make(map[string]float64)
	for _, token := range tokenize(text) {
		freq[token]++
	}
	return freq
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func cosineSimilarity(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for term, wa := range a {
		normA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
