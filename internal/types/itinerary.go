package types

import (
	"time"

	"github.com/google/uuid"
)

// SelectedActivity is an activity placed into a concrete day plan, with
// its resolved cost and the preference score that ranked it.
type SelectedActivity struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Duration        float64 `json:"duration"`
	Cost            float64 `json:"cost"`
	Rating          float64 `json:"rating"`
	TimeSlot        string  `json:"time_slot"`
	PreferenceScore float64 `json:"preference_score"`
}

// TransportLeg describes the transfer into a destination on a
// transition day. Nil on days spent at the same destination.
type TransportLeg struct {
	From          string   `json:"from"`
	To            string   `json:"to"`
	DistanceKm    float64  `json:"distance_km"`
	DurationHours float64  `json:"duration_hours"`
	Mode          string   `json:"mode"`
	Cost          float64  `json:"cost"`
	Tips          []string `json:"tips,omitempty"`
}

// DayPlan is one scheduled day of the trip.
type DayPlan struct {
	Day            int                `json:"day"`
	Date           string             `json:"date"`
	Location       string             `json:"location"`
	Theme          string             `json:"theme"`
	Activities     []SelectedActivity `json:"activities"`
	Transportation *TransportLeg      `json:"transportation,omitempty"`
	EstimatedCost  float64            `json:"estimated_cost"`
	Highlights     []string           `json:"highlights"`
	Tips           []string           `json:"tips"`
	WeatherInfo    string             `json:"weather_info"`
}

// CostBreakdown splits the trip total into its components.
type CostBreakdown struct {
	Accommodation  float64 `json:"accommodation"`
	Meals          float64 `json:"meals"`
	Activities     float64 `json:"activities"`
	Transportation float64 `json:"transportation"`
}

// RouteOptimization records which sequencing strategy produced the
// visiting order and a human-readable reasoning string.
type RouteOptimization struct {
	Strategy  string   `json:"strategy"`
	Sequence  []string `json:"optimal_sequence"`
	Reasoning string   `json:"reasoning"`
}

// TripInsights is the narrative block attached to a generated
// itinerary. Template text by default; a generative enhancer may
// rewrite it.
type TripInsights struct {
	RouteReasoning       string `json:"route_reasoning"`
	BestTimeToVisit      string `json:"best_time_to_visit"`
	CulturalHighlights   string `json:"cultural_highlights"`
	PersonalizationNotes string `json:"personalization_notes"`
}

// Itinerary is the full generated travel plan. Constructed fresh per
// request and never mutated afterwards.
type Itinerary struct {
	ID                   string            `json:"id"`
	Destination          string            `json:"destination"`
	Duration             int               `json:"duration"`
	Budget               float64           `json:"budget"`
	Title                string            `json:"title"`
	Description          string            `json:"description"`
	Days                 []DayPlan         `json:"days"`
	TotalCost            float64           `json:"total_cost"`
	CostBreakdown        CostBreakdown     `json:"cost_breakdown"`
	TransportationPlan   []TransportLeg    `json:"transportation_plan"`
	RouteOptimization    RouteOptimization `json:"route_optimization"`
	Hotels               []Hotel           `json:"recommended_hotels"`
	Insights             TripInsights      `json:"insights"`
	PersonalizationScore float64           `json:"personalization_score"`
	SustainabilityTips   []string          `json:"sustainability_tips"`
	CultureGuide         map[string]string `json:"local_culture_guide"`
	EmergencyInfo        map[string]string `json:"emergency_info"`
	CreatedAt            time.Time         `json:"created_at"`
}

// SavedItinerary wraps a generated itinerary with its storage metadata.
type SavedItinerary struct {
	ID                   uuid.UUID  `json:"id"`
	UserID               string     `json:"user_id"`
	Title                string     `json:"title"`
	Destination          string     `json:"destination"`
	StartDate            string     `json:"start_date"`
	EndDate              string     `json:"end_date"`
	DurationDays         int        `json:"duration_days"`
	TravelStyle          string     `json:"travel_style"`
	Payload              *Itinerary `json:"payload,omitempty"`
	TotalCost            float64    `json:"total_cost"`
	PersonalizationScore float64    `json:"personalization_score"`
	UserNotes            string     `json:"user_notes"`
	IsFavorite           bool       `json:"is_favorite"`
	Status               string     `json:"status"`
	AccessCount          int        `json:"access_count"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	LastAccessed         time.Time  `json:"last_accessed"`
}

// UpdateItineraryRequest carries the mutable fields of a saved
// itinerary. Nil pointers mean "leave unchanged".
type UpdateItineraryRequest struct {
	UserNotes  *string `json:"user_notes,omitempty"`
	IsFavorite *bool   `json:"is_favorite,omitempty"`
	Status     *string `json:"status,omitempty"`
}

// PaginatedItinerariesResponse is the list endpoint envelope.
type PaginatedItinerariesResponse struct {
	Itineraries  []SavedItinerary `json:"itineraries"`
	TotalRecords int              `json:"total_records"`
	Page         int              `json:"page"`
	PageSize     int              `json:"page_size"`
}
