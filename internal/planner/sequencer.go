package planner

import (
	"math"
	"strings"

	"github.com/keralatrips/itinerary-api/internal/types"
)

// Sequencing strategies. Exactly one is chosen per request, in this
// priority: budget style, then short trips, then balanced.
const (
	StrategyMinimumCost = "minimum_cost"
	StrategyMinimumTime = "minimum_time"
	StrategyBalanced    = "balanced"
)

// shortTripMaxDays is the duration at or below which travel time is
// minimized instead of the balanced score.
const shortTripMaxDays = 5

// appealScale converts destination appeal into the same magnitude as
// edge costs for the balanced greedy step.
const appealScale = 10.0

// SequenceRoute orders the selected destinations into a visiting
// sequence. Sets of size <= 2 are returned unchanged. The result is a
// greedy heuristic, not an optimal tour; ties go to the earliest
// destination in input order.
func SequenceRoute(graph *Graph, catalog *Catalog, prefs types.TripPreferences, selected []string) ([]string, string) {
	if len(selected) <= 2 {
		route := make([]string, len(selected))
		copy(route, selected)
		return route, routeStrategy(prefs)
	}

	switch strategy := routeStrategy(prefs); strategy {
	case StrategyMinimumCost:
		return nearestNeighborRoute(selected, func(from, to string) float64 {
			return edgeWeight(graph, from, to, func(e types.Edge) float64 { return e.Cost })
		}), strategy
	case StrategyMinimumTime:
		return nearestNeighborRoute(selected, func(from, to string) float64 {
			return edgeWeight(graph, from, to, func(e types.Edge) float64 { return e.TravelTime })
		}), strategy
	default:
		return balancedRoute(graph, catalog, prefs, selected), StrategyBalanced
	}
}

func routeStrategy(prefs types.TripPreferences) string {
	switch {
	case prefs.TravelStyle == types.TravelStyleBudget:
		return StrategyMinimumCost
	case prefs.Duration <= shortTripMaxDays:
		return StrategyMinimumTime
	default:
		return StrategyBalanced
	}
}

// edgeWeight extracts a single weight from the edge between two stops.
// Missing edges weigh +Inf so unreachable destinations are picked last.
func edgeWeight(graph *Graph, from, to string, pick func(types.Edge) float64) float64 {
	e, ok := graph.Edge(from, to)
	if !ok {
		return math.Inf(1)
	}
	return pick(e)
}

// nearestNeighborRoute builds the route greedily: start from the first
// selected destination and repeatedly append the unvisited destination
// with the lowest edge weight from the current tail. Strict less keeps
// the earliest candidate on ties.
func nearestNeighborRoute(selected []string, weight func(from, to string) float64) []string {
	route := make([]string, 0, len(selected))
	remaining := make([]string, len(selected)-1)
	copy(remaining, selected[1:])

	current := selected[0]
	route = append(route, current)

	for len(remaining) > 0 {
		bestIdx := 0
		bestWeight := weight(current, remaining[0])
		for i := 1; i < len(remaining); i++ {
			if w := weight(current, remaining[i]); w < bestWeight {
				bestWeight = w
				bestIdx = i
			}
		}
		current = remaining[bestIdx]
		route = append(route, current)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return route
}

// balancedRoute starts at the destination with the highest appeal
// score, then greedily appends the destination maximizing
// appeal*appealScale - edge cost from the current tail. Unreachable
// destinations score -Inf.
func balancedRoute(graph *Graph, catalog *Catalog, prefs types.TripPreferences, selected []string) []string {
	profile := extractPreferenceProfile(prefs)

	appeal := make(map[string]float64, len(selected))
	for _, name := range selected {
		if dest, ok := catalog.Destination(name); ok {
			appeal[name] = destinationAppeal(dest, profile, prefs.TravelStyle)
		}
	}

	startIdx := 0
	for i := 1; i < len(selected); i++ {
		if appeal[selected[i]] > appeal[selected[startIdx]] {
			startIdx = i
		}
	}

	route := make([]string, 0, len(selected))
	remaining := make([]string, 0, len(selected)-1)
	remaining = append(remaining, selected[:startIdx]...)
	remaining = append(remaining, selected[startIdx+1:]...)

	current := selected[startIdx]
	route = append(route, current)

	for len(remaining) > 0 {
		combined := func(dest string) float64 {
			e, ok := graph.Edge(current, dest)
			if !ok {
				return math.Inf(-1)
			}
			return appeal[dest]*appealScale - e.Cost
		}

		bestIdx := 0
		bestScore := combined(remaining[0])
		for i := 1; i < len(remaining); i++ {
			if s := combined(remaining[i]); s > bestScore {
				bestScore = s
				bestIdx = i
			}
		}
		current = remaining[bestIdx]
		route = append(route, current)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return route
}

// preferenceProfile is the set of psychographic flags derived from the
// traveler's free-text interests and style.
type preferenceProfile struct {
	NatureLover       bool
	CultureEnthusiast bool
	AdventureSeeker   bool
	RelaxationFocused bool
	BudgetConscious   bool
	LuxuryTraveler    bool
	GroupTraveler     bool
}

var profileKeywords = map[string][]string{
	"nature":     {"nature", "wildlife", "trekking", "mountains"},
	"culture":    {"culture", "history", "heritage", "art"},
	"adventure":  {"adventure", "sports", "trekking", "safari"},
	"relaxation": {"relaxation", "wellness", "spa", "peaceful"},
}

func extractPreferenceProfile(prefs types.TripPreferences) preferenceProfile {
	return preferenceProfile{
		NatureLover:       anyInterestIn(prefs.Interests, profileKeywords["nature"]),
		CultureEnthusiast: anyInterestIn(prefs.Interests, profileKeywords["culture"]),
		AdventureSeeker:   anyInterestIn(prefs.Interests, profileKeywords["adventure"]),
		RelaxationFocused: anyInterestIn(prefs.Interests, profileKeywords["relaxation"]),
		BudgetConscious:   prefs.TravelStyle == types.TravelStyleBudget,
		LuxuryTraveler:    prefs.TravelStyle == types.TravelStyleLuxury,
		GroupTraveler:     prefs.GroupSize > 2,
	}
}

func anyInterestIn(interests, keywords []string) bool {
	for _, interest := range interests {
		normalized := strings.ToLower(strings.TrimSpace(interest))
		for _, kw := range keywords {
			if normalized == kw {
				return true
			}
		}
	}
	return false
}

// appealWeights maps each psychographic flag to per-category weights.
// Some listed categories never occur in the catalog; they are kept as
// the reference weight table stands.
var appealWeights = map[string]map[string]float64{
	"nature_lover":       {"hill_station": 0.8, "wildlife": 0.9, "backwaters": 0.6},
	"culture_enthusiast": {"city": 0.9, "heritage": 0.8, "cultural": 0.7},
	"adventure_seeker":   {"wildlife": 0.8, "hill_station": 0.7, "adventure": 0.9},
	"relaxation_focused": {"backwaters": 0.9, "beach": 0.8, "wellness": 0.9},
}

// destinationAppeal sums the per-flag category weights, then applies a
// budget adjustment: budget style rewards cheap destinations, luxury
// rewards expensive ones.
func destinationAppeal(dest *types.Destination, profile preferenceProfile, style types.TravelStyle) float64 {
	score := 0.0

	flagged := map[string]bool{
		"nature_lover":       profile.NatureLover,
		"culture_enthusiast": profile.CultureEnthusiast,
		"adventure_seeker":   profile.AdventureSeeker,
		"relaxation_focused": profile.RelaxationFocused,
	}
	for flag, active := range flagged {
		if !active {
			continue
		}
		if w, ok := appealWeights[flag][dest.Category]; ok {
			score += w
		}
	}

	switch style {
	case types.TravelStyleBudget:
		score += (100 - dest.AverageCost) / 100
	case types.TravelStyleLuxury:
		score += dest.AverageCost / 100
	}

	return score
}
