package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordScorerRange(t *testing.T) {
	scorer := NewKeywordScorer()

	descriptions := []string{
		"Wildlife sanctuary with Nilgiri Tahr",
		"Traditional Kerala classical dance",
		"",
	}
	scores, err := scorer.ScoreActivities(context.Background(), "wildlife nature safari", descriptions)
	require.NoError(t, err)
	require.Len(t, scores, len(descriptions))

	for _, s := range scores {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestKeywordScorerPrefersMatchingText(t *testing.T) {
	scorer := NewKeywordScorer()

	scores, err := scorer.ScoreActivities(context.Background(), "wildlife safari",
		[]string{
			"Boat safari to spot wildlife and elephants",
			"Beachside wellness and rejuvenation",
		})
	require.NoError(t, err)
	assert.Greater(t, scores[0], scores[1])
}

func TestKeywordScorerEmptyPreferences(t *testing.T) {
	scorer := NewKeywordScorer()

	scores, err := scorer.ScoreActivities(context.Background(), "", []string{"anything"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, scores[0])
}

func TestKeywordScorerDeterministic(t *testing.T) {
	scorer := NewKeywordScorer()
	descriptions := []string{"tea gardens and cool climate", "backwaters and houseboats"}

	first, err := scorer.ScoreActivities(context.Background(), "tea nature", descriptions)
	require.NoError(t, err)
	second, err := scorer.ScoreActivities(context.Background(), "tea nature", descriptions)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
