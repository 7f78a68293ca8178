package planner

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/keralatrips/itinerary-api/internal/types"
)

// Planner generates day-by-day itineraries over the static Kerala
// catalog. It is safe for concurrent use: the catalog and graph are
// read-only and every Generate call works on fresh state.
type Planner struct {
	catalog *Catalog
	graph   *Graph
	scorer  Scorer
	logger  *slog.Logger
}

// New builds a planner and precomputes the distance graph. Returns
// ErrConfiguration when the catalog holds no destinations.
func New(catalog *Catalog, scorer Scorer, logger *slog.Logger) (*Planner, error) {
	if catalog == nil || len(catalog.Destinations()) == 0 {
		return nil, fmt.Errorf("%w: destination catalog is empty", types.ErrConfiguration)
	}
	if scorer == nil {
		scorer = NewKeywordScorer()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Planner{
		catalog: catalog,
		graph:   BuildGraph(catalog),
		scorer:  scorer,
		logger:  logger,
	}, nil
}

// Graph exposes the precomputed distance graph (read-only).
func (p *Planner) Graph() *Graph { return p.graph }

// Catalog exposes the reference data (read-only).
func (p *Planner) Catalog() *Catalog { return p.catalog }

// Generate produces a complete itinerary for one trip request.
// Single-threaded, request-scoped: no shared mutable state, bounded by
// destinations x activities.
func (p *Planner) Generate(ctx context.Context, prefs types.TripPreferences) (*types.Itinerary, error) {
	if _, err := types.ParseTravelStyle(string(prefs.TravelStyle)); err != nil {
		return nil, err
	}

	ranked := p.rankActivities(ctx, prefs)

	selected := SelectDestinations(prefs.Duration)
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: destination selection returned nothing", types.ErrConfiguration)
	}

	route, strategy := SequenceRoute(p.graph, p.catalog, prefs, selected)
	allocation := DistributeDays(p.catalog, route, prefs.Duration)

	startDate := p.parseStartDate(prefs.StartDate)

	days := make([]types.DayPlan, 0, prefs.Duration)
	activitiesByDest := make(map[string][]types.SelectedActivity, len(route))
	currentDate := startDate
	dayCounter := 1

dayLoop:
	for destIdx, destination := range route {
		for dayAtDest := 0; dayAtDest < allocation[destIdx]; dayAtDest++ {
			dayActivities := pickActivities(destination, dayAtDest+1, ranked[destination])
			activitiesByDest[destination] = append(activitiesByDest[destination], dayActivities...)

			var transport *types.TransportLeg
			if destIdx > 0 && dayAtDest == 0 {
				transport = p.transitionLeg(route[destIdx-1], destination)
			}

			days = append(days, types.DayPlan{
				Day:            dayCounter,
				Date:           currentDate.Format("2006-01-02"),
				Location:       destination,
				Theme:          dayTheme(destination, dayAtDest+1),
				Activities:     dayActivities,
				Transportation: transport,
				EstimatedCost:  dayEstimatedCost(dayActivities, prefs.TravelStyle),
				Highlights:     highlights(dayActivities),
				Tips:           tipsFor(destination),
				WeatherInfo:    weatherGuidance(currentDate),
			})

			dayCounter++
			currentDate = currentDate.AddDate(0, 0, 1)

			// The allocation can under- or overshoot the requested
			// duration; the emitted plan is hard-capped at it. When the
			// allocation undershoots, the trailing days stay
			// unscheduled — a documented reference quirk, kept as-is.
			if dayCounter > prefs.Duration {
				break dayLoop
			}
		}
	}

	costs := aggregateCosts(p.graph, p.logger, route, activitiesByDest, prefs)
	personalization := meanSelectedScore(days)

	itinerary := &types.Itinerary{
		ID:          uuid.New().String(),
		Destination: prefs.Destination,
		Duration:    prefs.Duration,
		Budget:      prefs.Budget,
		Title:       fmt.Sprintf("AI-Curated %d-Day %s Journey", prefs.Duration, prefs.Destination),
		Description: fmt.Sprintf(
			"Intelligently crafted %d-day personalized itinerary for %s optimized for %s travel style",
			prefs.Duration, prefs.Destination, prefs.TravelStyle),
		Days:               days,
		TotalCost:          costs.Total,
		CostBreakdown:      costs.Breakdown,
		TransportationPlan: costs.Legs,
		RouteOptimization: types.RouteOptimization{
			Strategy:  strategy,
			Sequence:  route,
			Reasoning: routeReasoning(prefs),
		},
		Hotels:               suggestHotels(p.catalog, route, prefs),
		Insights:             tripInsights(prefs, personalization),
		PersonalizationScore: personalization,
		SustainabilityTips:   sustainabilityTips(),
		CultureGuide:         cultureGuide(),
		EmergencyInfo:        emergencyInfo(),
		CreatedAt:            time.Now().UTC(),
	}

	p.logger.InfoContext(ctx, "itinerary generated",
		slog.Int("days", len(days)),
		slog.String("strategy", strategy),
		slog.Float64("personalization_score", personalization))

	return itinerary, nil
}

// rankActivities scores the whole activity catalog against the
// traveler's combined interest and style text and groups the results
// per destination, sorted by descending score. A scorer failure
// degrades to zero scores instead of aborting the itinerary.
func (p *Planner) rankActivities(ctx context.Context, prefs types.TripPreferences) map[string][]ScoredActivity {
	activities := p.catalog.Activities()

	preferenceText := strings.TrimSpace(strings.Join(prefs.Interests, " ") + " " + string(prefs.TravelStyle))
	descriptions := make([]string, len(activities))
	for i, a := range activities {
		descriptions[i] = a.Description + " " + strings.Join(a.Tags, " ")
	}

	scores, err := p.scorer.ScoreActivities(ctx, preferenceText, descriptions)
	if err != nil || len(scores) != len(activities) {
		p.logger.WarnContext(ctx, "activity scoring failed, falling back to zero scores",
			slog.Any("error", err))
		scores = make([]float64, len(activities))
	}

	ranked := make(map[string][]ScoredActivity)
	for i, a := range activities {
		score := scores[i]
		if math.IsNaN(score) || score < 0 {
			score = 0
		} else if score > 1 {
			score = 1
		}
		ranked[a.Location] = append(ranked[a.Location], ScoredActivity{Activity: a, Score: score})
	}
	for dest := range ranked {
		list := ranked[dest]
		sort.SliceStable(list, func(i, j int) bool { return list[i].Score > list[j].Score })
	}
	return ranked
}

func (p *Planner) parseStartDate(raw string) time.Time {
	if raw == "" {
		return time.Now()
	}
	// Accept full ISO datetimes by trimming at the time separator.
	if idx := strings.IndexByte(raw, 'T'); idx > 0 {
		raw = raw[:idx]
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		p.logger.Warn("invalid start date, defaulting to today", slog.String("start_date", raw))
		return time.Now()
	}
	return t
}

// transitionLeg builds the day-level transport entry into a new
// destination, with display rounding.
func (p *Planner) transitionLeg(from, to string) *types.TransportLeg {
	edge, found := p.graph.EdgeOrFallback(from, to)
	leg := &types.TransportLeg{
		From:          from,
		To:            to,
		DistanceKm:    math.Round(edge.DistanceKm*10) / 10,
		DurationHours: math.Round(edge.TravelTime*10) / 10,
		Mode:          "Car/Taxi",
		Cost:          math.Round(edge.Cost*100) / 100,
		Tips:          []string{"Depart early morning to avoid traffic", "Scenic route with photo opportunities"},
	}
	if !found {
		p.logger.Warn("missing edge for transition day, using fallback",
			slog.String("from", from), slog.String("to", to))
		leg.Tips = []string{"Book transportation in advance"}
	}
	return leg
}

// dayEstimatedCost is the day's activity spend plus the style's flat
// accommodation rate. Styles without their own rate use the budget
// figure here, matching the reference behavior even though trip-level
// aggregation falls back to mid-range.
func dayEstimatedCost(activities []types.SelectedActivity, style types.TravelStyle) float64 {
	cost := 0.0
	for _, a := range activities {
		cost += a.Cost
	}
	switch style {
	case types.TravelStyleLuxury:
		return cost + 200
	case types.TravelStyleMidRange:
		return cost + 80
	default:
		return cost + 25
	}
}

func highlights(activities []types.SelectedActivity) []string {
	names := make([]string, 0, 2)
	for _, a := range activities {
		if len(names) == 2 {
			break
		}
		names = append(names, a.Name)
	}
	return names
}

// meanSelectedScore averages the preference scores of the activities
// that actually made it into the plan.
func meanSelectedScore(days []types.DayPlan) float64 {
	var sum float64
	var count int
	for _, day := range days {
		for _, a := range day.Activities {
			sum += a.PreferenceScore
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
