package itinerary

import (
	"fmt"

	"github.com/keralatrips/itinerary-api/internal/types"
)

const (
	minDuration = 1
	maxDuration = 30
	minBudget   = 100
	maxBudget   = 50000
	minGroup    = 1
	maxGroup    = 20
)

// GenerateItineraryRequest is the request body of the generate endpoint.
type GenerateItineraryRequest struct {
	Destination              string   `json:"destination"`
	Duration                 int      `json:"duration"`
	Budget                   float64  `json:"budget"`
	Interests                []string `json:"interests"`
	TravelStyle              string   `json:"travel_style"`
	GroupSize                int      `json:"group_size"`
	StartDate                string   `json:"start_date,omitempty"`
	AccommodationPreference  string   `json:"accommodation_preference,omitempty"`
	TransportationPreference string   `json:"transportation_preference,omitempty"`
}

// Validate normalizes the request into planner preferences, applying
// defaults and bounds checks. All violations wrap ErrInvalidPreference
// so handlers can map them to a 400.
func (req *GenerateItineraryRequest) Validate() (types.TripPreferences, error) {
	prefs := types.TripPreferences{
		Destination:              req.Destination,
		Duration:                 req.Duration,
		Budget:                   req.Budget,
		Interests:                req.Interests,
		GroupSize:                req.GroupSize,
		StartDate:                req.StartDate,
		AccommodationPreference:  req.AccommodationPreference,
		TransportationPreference: req.TransportationPreference,
	}

	if prefs.Destination == "" {
		prefs.Destination = "Kerala"
	}
	if prefs.GroupSize == 0 {
		prefs.GroupSize = 2
	}

	styleRaw := req.TravelStyle
	if styleRaw == "" {
		styleRaw = string(types.TravelStyleMidRange)
	}
	style, err := types.ParseTravelStyle(styleRaw)
	if err != nil {
		return types.TripPreferences{}, err
	}
	prefs.TravelStyle = style

	if prefs.Duration < minDuration || prefs.Duration > maxDuration {
		return types.TripPreferences{}, fmt.Errorf("%w: duration must be between %d and %d days",
			types.ErrInvalidPreference, minDuration, maxDuration)
	}
	if prefs.Budget < minBudget || prefs.Budget > maxBudget {
		return types.TripPreferences{}, fmt.Errorf("%w: budget must be between %d and %d",
			types.ErrInvalidPreference, minBudget, maxBudget)
	}
	if prefs.GroupSize < minGroup || prefs.GroupSize > maxGroup {
		return types.TripPreferences{}, fmt.Errorf("%w: group size must be between %d and %d",
			types.ErrInvalidPreference, minGroup, maxGroup)
	}

	return prefs, nil
}
