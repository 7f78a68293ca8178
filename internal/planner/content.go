package planner

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/keralatrips/itinerary-api/internal/types"
)

// dayThemes holds the fixed theme labels per destination; the theme for
// day n is entry n-1 clamped to the last one.
var dayThemes = map[string][]string{
	"Munnar":    {"Tea Heritage Discovery", "Mountain Adventure", "Wildlife Exploration"},
	"Alleppey":  {"Backwater Serenity", "Village Cultural Immersion"},
	"Kochi":     {"Colonial Heritage Journey", "Cultural Arts Experience"},
	"Thekkady":  {"Wildlife Safari Adventure", "Spice Trail Discovery"},
	"Kumarakom": {"Bird Watching Paradise", "Ayurvedic Wellness"},
	"Kovalam":   {"Beach Bliss", "Wellness Retreat"},
	"Wayanad":   {"Ancient Caves Exploration", "Waterfall Adventure"},
}

func dayTheme(destination string, dayNumber int) string {
	themes, ok := dayThemes[destination]
	if !ok || len(themes) == 0 {
		return "Exploration Day"
	}
	idx := dayNumber - 1
	if idx >= len(themes) {
		idx = len(themes) - 1
	}
	return themes[idx]
}

var localTips = map[string][]string{
	"Munnar": {
		"Best visited October-March for pleasant weather",
		"Carry warm clothes for cool evenings",
		"Book tea factory tours in advance",
	},
	"Alleppey": {
		"Houseboat rates vary by season - book early",
		"Try traditional Kerala meals on banana leaves",
		"Respect local fishing communities",
	},
	"Kochi": {
		"Fort Kochi is perfect for walking exploration",
		"Evening light ideal for Chinese fishing nets photography",
		"Try fresh seafood at local markets",
	},
	"Thekkady": {
		"Morning safaris offer the best wildlife sightings",
		"Buy spices directly from plantation shops",
	},
	"Kumarakom": {
		"Carry binoculars for the bird sanctuary",
		"Sunset boat rides are quieter than midday cruises",
	},
	"Kovalam": {
		"Swim only in flagged areas of the beach",
		"Ayurvedic treatments are best booked for late afternoon",
	},
	"Wayanad": {
		"Edakkal Caves involve a steep climb, wear good shoes",
		"Waterfall trails close early in monsoon season",
	},
}

func tipsFor(destination string) []string {
	if tips, ok := localTips[destination]; ok {
		return tips
	}
	return []string{"Explore at your own pace"}
}

// weatherGuidance maps the month of a day to a short advisory string.
func weatherGuidance(date time.Time) string {
	switch date.Month() {
	case time.December, time.January, time.February:
		return "Cool and pleasant weather, perfect for sightseeing"
	case time.March, time.April, time.May:
		return "Warm weather, carry light cotton clothes and sunscreen"
	case time.June, time.July, time.August, time.September:
		return "Monsoon season, carry rain gear and waterproof clothing"
	default:
		return "Post-monsoon, fresh and green landscapes"
	}
}

func sustainabilityTips() []string {
	return []string{
		"Choose local guides and tour operators to support the community",
		"Use refillable water bottles to reduce plastic waste",
		"Respect wildlife and maintain safe distances during safaris",
		"Support local artisans by purchasing authentic handicrafts",
		"Follow Leave No Trace principles in natural areas",
	}
}

func cultureGuide() map[string]string {
	return map[string]string{
		"language_tips":      "Malayalam is local language, English widely understood",
		"cultural_etiquette": "Remove shoes before entering homes and temples",
		"local_customs":      "Kerala is known for its hospitality and traditional Ayurvedic practices",
		"dress_code":         "Dress modestly, especially when visiting religious sites",
		"tipping_guide":      "Tipping is appreciated but not mandatory, 10% in restaurants",
	}
}

func emergencyInfo() map[string]string {
	return map[string]string{
		"police":           "100",
		"medical":          "108",
		"tourist_helpline": "1363",
	}
}

// routeReasoning summarizes why the route looks the way it does. The
// generative enhancer may later rewrite this text; planner output
// never depends on that.
func routeReasoning(prefs types.TripPreferences) string {
	interests := prefs.Interests
	if len(interests) > 3 {
		interests = interests[:3]
	}
	focus := strings.Join(interests, ", ")
	if focus == "" {
		focus = "local highlights"
	}
	return fmt.Sprintf("Route optimized for %s style prioritizing %s", prefs.TravelStyle, focus)
}

func tripInsights(prefs types.TripPreferences, personalizationScore float64) types.TripInsights {
	return types.TripInsights{
		RouteReasoning:     routeReasoning(prefs),
		BestTimeToVisit:    "October to March for optimal weather conditions",
		CulturalHighlights: "Experience authentic Kerala culture through classical dance, spice markets, and traditional houseboats",
		PersonalizationNotes: fmt.Sprintf(
			"Itinerary customized based on your preference score of %.2f/1.0", personalizationScore),
	}
}

// hotelBudgetShare is the fraction of the daily budget assumed to go to
// accommodation, with 20% headroom on top when filtering.
const (
	hotelBudgetShare    = 0.4
	hotelBudgetHeadroom = 1.2
	maxHotelSuggestions = 3
)

// suggestHotels picks up to three hotels along the route: keep those
// priced within 120% of the accommodation share of the daily budget,
// fall back to the full list when nothing fits, and rank by rating.
func suggestHotels(catalog *Catalog, route []string, prefs types.TripPreferences) []types.Hotel {
	var candidates []types.Hotel
	for _, destination := range route {
		candidates = append(candidates, catalog.HotelsFor(destination)...)
	}
	if len(candidates) == 0 {
		return nil
	}

	dailyBudget := prefs.Budget / float64(prefs.Duration)
	hotelBudget := dailyBudget * hotelBudgetShare

	var suitable []types.Hotel
	for _, h := range candidates {
		if h.PricePerNight <= hotelBudget*hotelBudgetHeadroom {
			suitable = append(suitable, h)
		}
	}
	if len(suitable) == 0 {
		suitable = candidates
	}

	sort.SliceStable(suitable, func(i, j int) bool {
		return suitable[i].Rating > suitable[j].Rating
	})

	if len(suitable) > maxHotelSuggestions {
		suitable = suitable[:maxHotelSuggestions]
	}
	return suitable
}
