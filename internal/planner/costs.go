package planner

import (
	"log/slog"

	"github.com/keralatrips/itinerary-api/internal/types"
)

// baseRates is the fixed per-day accommodation and meal budget for a
// travel style.
type baseRates struct {
	Accommodation float64
	Meals         float64
}

var dailyBaseRates = map[types.TravelStyle]baseRates{
	types.TravelStyleLuxury:   {Accommodation: 200, Meals: 80},
	types.TravelStyleMidRange: {Accommodation: 80, Meals: 35},
	types.TravelStyleBudget:   {Accommodation: 25, Meals: 15},
}

// baseRatesFor falls back to mid-range for the styles without a rate
// of their own (adventure, cultural, relaxation).
func baseRatesFor(style types.TravelStyle) baseRates {
	if rates, ok := dailyBaseRates[style]; ok {
		return rates
	}
	return dailyBaseRates[types.TravelStyleMidRange]
}

// costSummary is the output of cost aggregation over the final route.
type costSummary struct {
	Total      float64
	DailyCosts []float64
	Legs       []types.TransportLeg
	Breakdown  types.CostBreakdown
}

// aggregateCosts walks the route once, accumulating per-stop costs
// (accommodation + meals + that stop's activities + the inbound
// transport leg) and the structured breakdown. A missing edge between
// consecutive stops is substituted with the fallback edge and logged,
// never fatal.
func aggregateCosts(graph *Graph, logger *slog.Logger, route []string, activitiesByDest map[string][]types.SelectedActivity, prefs types.TripPreferences) costSummary {
	rates := baseRatesFor(prefs.TravelStyle)

	summary := costSummary{
		DailyCosts: make([]float64, 0, len(route)),
	}
	var activitiesTotal float64

	for i, destination := range route {
		dailyCost := rates.Accommodation + rates.Meals

		for _, activity := range activitiesByDest[destination] {
			dailyCost += activity.Cost
			activitiesTotal += activity.Cost
		}

		if i > 0 {
			prev := route[i-1]
			edge, found := graph.EdgeOrFallback(prev, destination)
			if !found {
				logger.Warn("missing edge between consecutive stops, using fallback",
					slog.String("from", prev), slog.String("to", destination))
			}
			summary.Legs = append(summary.Legs, types.TransportLeg{
				From:          prev,
				To:            destination,
				DistanceKm:    edge.DistanceKm,
				DurationHours: edge.TravelTime,
				Mode:          "Car/Taxi",
				Cost:          edge.Cost,
			})
			dailyCost += edge.Cost
			summary.Breakdown.Transportation += edge.Cost
		}

		summary.DailyCosts = append(summary.DailyCosts, dailyCost)
		summary.Total += dailyCost
	}

	summary.Breakdown.Accommodation = float64(len(route)) * rates.Accommodation
	summary.Breakdown.Meals = float64(len(route)) * rates.Meals
	summary.Breakdown.Activities = activitiesTotal

	return summary
}
