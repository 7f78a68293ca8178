package types

import (
	"fmt"
	"strings"
)

// TravelStyle is the closed set of supported trip styles. Unknown values are
// rejected at the API boundary before any planning starts.
type TravelStyle string

const (
	TravelStyleLuxury     TravelStyle = "luxury"
	TravelStyleMidRange   TravelStyle = "mid-range"
	TravelStyleBudget     TravelStyle = "budget"
	TravelStyleAdventure  TravelStyle = "adventure"
	TravelStyleCultural   TravelStyle = "cultural"
	TravelStyleRelaxation TravelStyle = "relaxation"
)

// ParseTravelStyle validates a raw style string.
func ParseTravelStyle(raw string) (TravelStyle, error) {
	switch TravelStyle(strings.ToLower(strings.TrimSpace(raw))) {
	case TravelStyleLuxury:
		return TravelStyleLuxury, nil
	case TravelStyleMidRange:
		return TravelStyleMidRange, nil
	case TravelStyleBudget:
		return TravelStyleBudget, nil
	case TravelStyleAdventure:
		return TravelStyleAdventure, nil
	case TravelStyleCultural:
		return TravelStyleCultural, nil
	case TravelStyleRelaxation:
		return TravelStyleRelaxation, nil
	default:
		return "", fmt.Errorf("%w: unknown travel style %q", ErrInvalidPreference, raw)
	}
}

// TripPreferences is the validated per-request input to the planner.
// Immutable for the lifetime of the request.
type TripPreferences struct {
	Destination              string      `json:"destination"`
	Duration                 int         `json:"duration"`
	Budget                   float64     `json:"budget"`
	Interests                []string    `json:"interests"`
	TravelStyle              TravelStyle `json:"travel_style"`
	GroupSize                int         `json:"group_size"`
	StartDate                string      `json:"start_date"`
	AccommodationPreference  string      `json:"accommodation_preference"`
	TransportationPreference string      `json:"transportation_preference"`
}
