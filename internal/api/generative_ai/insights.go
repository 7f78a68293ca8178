package generativeAI

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"

	"github.com/keralatrips/itinerary-api/internal/types"
)

// InsightsEnhancer rewrites the template insight text of a generated
// itinerary with a generative model. The planner output is already
// complete; this only polishes the narrative block, so callers treat
// failures as non-fatal.
type InsightsEnhancer struct {
	ai     *AIClient
	logger *slog.Logger
}

func NewInsightsEnhancer(ai *AIClient, logger *slog.Logger) *InsightsEnhancer {
	return &InsightsEnhancer{ai: ai, logger: logger}
}

func (e *InsightsEnhancer) EnhanceInsights(ctx context.Context, itinerary *types.Itinerary, prefs types.TripPreferences) (*types.TripInsights, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "EnhanceInsights")
	defer span.End()

	prompt := buildInsightsPrompt(itinerary, prefs)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	raw, err := e.ai.GenerateContent(ctx, prompt, config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Generation failed")
		return nil, err
	}

	insights, err := parseInsights(raw, itinerary.Insights)
	if err != nil {
		e.logger.WarnContext(ctx, "Model returned unparseable insights", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Unparseable response")
		return nil, err
	}

	span.SetStatus(codes.Ok, "Insights enhanced")
	return insights, nil
}

func buildInsightsPrompt(itinerary *types.Itinerary, prefs types.TripPreferences) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rewrite the insight text for a %d-day %s trip in a warm, concise travel-guide voice.\n",
		itinerary.Duration, itinerary.Destination)
	fmt.Fprintf(&b, "Travel style: %s. Interests: %s.\n", prefs.TravelStyle, strings.Join(prefs.Interests, ", "))
	fmt.Fprintf(&b, "Route: %s.\n", strings.Join(itinerary.RouteOptimization.Sequence, " -> "))
	b.WriteString("Current insights:\n")
	fmt.Fprintf(&b, "- route_reasoning: %s\n", itinerary.Insights.RouteReasoning)
	fmt.Fprintf(&b, "- best_time_to_visit: %s\n", itinerary.Insights.BestTimeToVisit)
	fmt.Fprintf(&b, "- cultural_highlights: %s\n", itinerary.Insights.CulturalHighlights)
	fmt.Fprintf(&b, "- personalization_notes: %s\n", itinerary.Insights.PersonalizationNotes)
	b.WriteString(`Respond with a single JSON object with the keys "route_reasoning", ` +
		`"best_time_to_visit", "cultural_highlights" and "personalization_notes". ` +
		"Keep every value under 60 words and do not invent places that are not on the route.")
	return b.String()
}

// parseInsights decodes the model response, falling back to the
// original value for any key the model left empty.
func parseInsights(raw string, fallback types.TripInsights) (*types.TripInsights, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var insights types.TripInsights
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &insights); err != nil {
		return nil, fmt.Errorf("invalid insights JSON: %w", err)
	}

	if insights.RouteReasoning == "" {
		insights.RouteReasoning = fallback.RouteReasoning
	}
	if insights.BestTimeToVisit == "" {
		insights.BestTimeToVisit = fallback.BestTimeToVisit
	}
	if insights.CulturalHighlights == "" {
		insights.CulturalHighlights = fallback.CulturalHighlights
	}
	if insights.PersonalizationNotes == "" {
		insights.PersonalizationNotes = fallback.PersonalizationNotes
	}
	return &insights, nil
}
