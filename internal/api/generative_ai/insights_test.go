package generativeAI

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keralatrips/itinerary-api/internal/types"
)

func TestBuildInsightsPromptMentionsRoute(t *testing.T) {
	itinerary := &types.Itinerary{
		Destination: "Kerala",
		Duration:    5,
		RouteOptimization: types.RouteOptimization{
			Sequence: []string{"Kochi", "Munnar", "Thekkady"},
		},
	}
	prefs := types.TripPreferences{
		TravelStyle: types.TravelStyleBudget,
		Interests:   []string{"nature", "wildlife"},
	}

	prompt := buildInsightsPrompt(itinerary, prefs)
	assert.Contains(t, prompt, "Kochi -> Munnar -> Thekkady")
	assert.Contains(t, prompt, "nature, wildlife")
	assert.Contains(t, prompt, `"route_reasoning"`)
}

func TestParseInsights(t *testing.T) {
	raw := "```json\n" + `{
		"route_reasoning": "A loop through the hills.",
		"best_time_to_visit": "",
		"cultural_highlights": "Kathakali evenings.",
		"personalization_notes": "Heavy on wildlife."
	}` + "\n```"

	fallback := types.TripInsights{
		RouteReasoning:  "template reasoning",
		BestTimeToVisit: "October to March",
	}

	insights, err := parseInsights(raw, fallback)
	require.NoError(t, err)
	assert.Equal(t, "A loop through the hills.", insights.RouteReasoning)
	assert.Equal(t, "October to March", insights.BestTimeToVisit, "empty keys keep the template value")
	assert.Equal(t, "Kathakali evenings.", insights.CulturalHighlights)
}

func TestParseInsightsRejectsGarbage(t *testing.T) {
	_, err := parseInsights("not json at all", types.TripInsights{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid insights JSON"))
}
