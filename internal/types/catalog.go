package types

// Destination is static reference data for one stop in the Kerala
// circuit. Loaded once at process start and never mutated.
type Destination struct {
	Name                string   `json:"name"`
	Latitude            float64  `json:"latitude"`
	Longitude           float64  `json:"longitude"`
	Category            string   `json:"category"`
	Activities          []string `json:"activities"`
	AverageCost         float64  `json:"average_cost"`
	RecommendedDuration int      `json:"recommended_duration"`
	SeasonPreference    string   `json:"season_preference"`
	Description         string   `json:"description"`
	Tags                []string `json:"tags"`
}

// Time slot labels for activities. Two non-full-day activities may not
// share a slot within the same day plan.
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
	SlotFullDay   = "full_day"
)

// Activity is static reference data; many per destination.
type Activity struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Duration    float64  `json:"duration"` // hours
	Cost        float64  `json:"cost"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	Tags        []string `json:"tags"`
	TimeSlot    string   `json:"time_slot"`
}

// Edge is the precomputed symmetric travel relationship between two
// destinations: geodesic distance in km, estimated hours on the road,
// and estimated monetary cost.
type Edge struct {
	DistanceKm float64 `json:"distance_km"`
	TravelTime float64 `json:"travel_time_hours"`
	Cost       float64 `json:"cost"`
}

// Hotel is a static accommodation suggestion attached to a destination.
type Hotel struct {
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"price_per_night"`
	Rating        float64 `json:"rating"`
}
