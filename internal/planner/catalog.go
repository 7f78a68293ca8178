package planner

import (
	"github.com/keralatrips/itinerary-api/internal/types"
)

// Catalog is the read-only destination/activity reference data. Built
// once at startup; concurrent requests read it without synchronization.
type Catalog struct {
	destinations []types.Destination
	activities   []types.Activity
	hotels       map[string][]types.Hotel

	byName map[string]*types.Destination
}

// NewCatalog builds a catalog from arbitrary reference data. Used by
// tests; production code goes through NewKeralaCatalog.
func NewCatalog(destinations []types.Destination, activities []types.Activity, hotels map[string][]types.Hotel) *Catalog {
	c := &Catalog{
		destinations: destinations,
		activities:   activities,
		hotels:       hotels,
		byName:       make(map[string]*types.Destination, len(destinations)),
	}
	for i := range c.destinations {
		c.byName[c.destinations[i].Name] = &c.destinations[i]
	}
	return c
}

// Destinations returns the catalog's destinations in insertion order.
func (c *Catalog) Destinations() []types.Destination { return c.destinations }

// Activities returns every catalog activity.
func (c *Catalog) Activities() []types.Activity { return c.activities }

// Destination looks a destination up by name.
func (c *Catalog) Destination(name string) (*types.Destination, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// ActivitiesFor returns the activities belonging to one destination,
// preserving catalog order.
func (c *Catalog) ActivitiesFor(destination string) []types.Activity {
	var out []types.Activity
	for _, a := range c.activities {
		if a.Location == destination {
			out = append(out, a)
		}
	}
	return out
}

// HotelsFor returns the hotel suggestions for one destination.
func (c *Catalog) HotelsFor(destination string) []types.Hotel {
	return c.hotels[destination]
}

// NewKeralaCatalog returns the built-in Kerala reference data: seven
// destinations, their activities and hotel suggestions.
func NewKeralaCatalog() *Catalog {
	destinations := []types.Destination{
		{
			Name: "Munnar", Latitude: 10.0889, Longitude: 77.0595,
			Category:   "hill_station",
			Activities: []string{"tea_plantation", "trekking", "wildlife", "photography"},
			AverageCost: 80.0, RecommendedDuration: 3, SeasonPreference: "winter",
			Description: "Picturesque hill station known for tea gardens and cool climate",
			Tags:        []string{"nature", "mountains", "tea", "peaceful", "scenic"},
		},
		{
			Name: "Alleppey", Latitude: 9.4981, Longitude: 76.3388,
			Category:   "backwaters",
			Activities: []string{"houseboat", "backwater_cruise", "village_tour", "fishing"},
			AverageCost: 120.0, RecommendedDuration: 2, SeasonPreference: "winter",
			Description: "Venice of the East famous for backwaters and houseboats",
			Tags:        []string{"backwaters", "houseboat", "relaxation", "unique", "water"},
		},
		{
			Name: "Kochi", Latitude: 9.9312, Longitude: 76.2673,
			Category:   "city",
			Activities: []string{"heritage_walk", "spice_market", "kathakali", "chinese_nets"},
			AverageCost: 60.0, RecommendedDuration: 2, SeasonPreference: "all_season",
			Description: "Historic port city with colonial architecture and cultural heritage",
			Tags:        []string{"history", "culture", "heritage", "port", "colonial"},
		},
		{
			Name: "Thekkady", Latitude: 9.5992, Longitude: 77.1603,
			Category:   "wildlife",
			Activities: []string{"wildlife_safari", "spice_plantation", "boating", "trekking"},
			AverageCost: 70.0, RecommendedDuration: 2, SeasonPreference: "winter",
			Description: "Wildlife sanctuary famous for elephants and spice plantations",
			Tags:        []string{"wildlife", "nature", "safari", "spices", "adventure"},
		},
		{
			Name: "Kumarakom", Latitude: 9.6178, Longitude: 76.4284,
			Category:   "backwaters",
			Activities: []string{"bird_watching", "backwater_cruise", "ayurveda", "fishing"},
			AverageCost: 90.0, RecommendedDuration: 2, SeasonPreference: "winter",
			Description: "Serene backwater destination known for bird sanctuary",
			Tags:        []string{"birds", "backwaters", "peaceful", "nature", "ayurveda"},
		},
		{
			Name: "Kovalam", Latitude: 8.4004, Longitude: 76.9784,
			Category:   "beach",
			Activities: []string{"beach_activities", "lighthouse", "ayurveda", "surfing"},
			AverageCost: 75.0, RecommendedDuration: 2, SeasonPreference: "winter",
			Description: "Popular beach destination with lighthouse and ayurvedic treatments",
			Tags:        []string{"beach", "lighthouse", "ayurveda", "relaxation", "surfing"},
		},
		{
			Name: "Wayanad", Latitude: 11.6054, Longitude: 76.0860,
			Category:   "hill_station",
			Activities: []string{"wildlife", "caves", "waterfalls", "tribal_culture"},
			AverageCost: 65.0, RecommendedDuration: 3, SeasonPreference: "winter",
			Description: "Green paradise with wildlife, waterfalls and tribal heritage",
			Tags:        []string{"wildlife", "waterfalls", "tribal", "nature", "caves"},
		},
	}

	activities := []types.Activity{
		// Munnar
		{Name: "Tea Museum Visit", Description: "Learn about tea processing and history",
			Category: "cultural", Duration: 2.5, Cost: 15.0, Location: "Munnar",
			Rating: 4.5, Tags: []string{"educational", "tea", "history"}, TimeSlot: types.SlotMorning},
		{Name: "Top Station Sunset", Description: "Panoramic views and sunset photography",
			Category: "nature", Duration: 2.0, Cost: 10.0, Location: "Munnar",
			Rating: 4.7, Tags: []string{"sunset", "photography", "scenic"}, TimeSlot: types.SlotEvening},
		{Name: "Eravikulam National Park", Description: "Wildlife sanctuary with Nilgiri Tahr",
			Category: "wildlife", Duration: 4.0, Cost: 25.0, Location: "Munnar",
			Rating: 4.6, Tags: []string{"wildlife", "conservation", "trekking"}, TimeSlot: types.SlotFullDay},

		// Alleppey
		{Name: "Houseboat Cruise", Description: "Traditional houseboat journey through backwaters",
			Category: "relaxation", Duration: 8.0, Cost: 150.0, Location: "Alleppey",
			Rating: 4.8, Tags: []string{"houseboat", "backwaters", "unique"}, TimeSlot: types.SlotFullDay},
		{Name: "Village Cycling Tour", Description: "Explore rural villages and paddy fields",
			Category: "cultural", Duration: 3.0, Cost: 20.0, Location: "Alleppey",
			Rating: 4.4, Tags: []string{"cycling", "village", "authentic"}, TimeSlot: types.SlotMorning},

		// Kochi
		{Name: "Fort Kochi Heritage Walk", Description: "Colonial architecture and history tour",
			Category: "history", Duration: 3.0, Cost: 12.0, Location: "Kochi",
			Rating: 4.6, Tags: []string{"heritage", "colonial", "walking"}, TimeSlot: types.SlotMorning},
		{Name: "Kathakali Performance", Description: "Traditional Kerala classical dance",
			Category: "cultural", Duration: 2.0, Cost: 25.0, Location: "Kochi",
			Rating: 4.7, Tags: []string{"dance", "traditional", "performance"}, TimeSlot: types.SlotEvening},
		{Name: "Spice Market Exploration", Description: "Aromatic journey through spice markets",
			Category: "cultural", Duration: 2.0, Cost: 8.0, Location: "Kochi",
			Rating: 4.3, Tags: []string{"spices", "market", "shopping"}, TimeSlot: types.SlotAfternoon},

		// Thekkady
		{Name: "Periyar Wildlife Safari", Description: "Boat safari to spot elephants and tigers",
			Category: "adventure", Duration: 3.5, Cost: 35.0, Location: "Thekkady",
			Rating: 4.5, Tags: []string{"wildlife", "safari", "elephants"}, TimeSlot: types.SlotMorning},
		{Name: "Spice Plantation Tour", Description: "Guided tour through aromatic plantations",
			Category: "cultural", Duration: 2.5, Cost: 18.0, Location: "Thekkady",
			Rating: 4.4, Tags: []string{"spices", "plantation", "guided"}, TimeSlot: types.SlotAfternoon},

		// Kumarakom
		{Name: "Bird Sanctuary Visit", Description: "Spot migratory birds and local species",
			Category: "nature", Duration: 3.0, Cost: 15.0, Location: "Kumarakom",
			Rating: 4.5, Tags: []string{"birds", "nature", "photography"}, TimeSlot: types.SlotMorning},
		{Name: "Ayurvedic Treatment", Description: "Traditional Kerala wellness therapy",
			Category: "wellness", Duration: 2.0, Cost: 60.0, Location: "Kumarakom",
			Rating: 4.6, Tags: []string{"ayurveda", "wellness", "relaxation"}, TimeSlot: types.SlotAfternoon},

		// Kovalam
		{Name: "Lighthouse Beach", Description: "Iconic lighthouse and beach activities",
			Category: "beach", Duration: 4.0, Cost: 5.0, Location: "Kovalam",
			Rating: 4.4, Tags: []string{"beach", "lighthouse", "swimming"}, TimeSlot: types.SlotFullDay},
		{Name: "Ayurvedic Spa Treatment", Description: "Beachside wellness and rejuvenation",
			Category: "wellness", Duration: 3.0, Cost: 80.0, Location: "Kovalam",
			Rating: 4.7, Tags: []string{"spa", "ayurveda", "beachside"}, TimeSlot: types.SlotAfternoon},

		// Wayanad
		{Name: "Edakkal Caves", Description: "Ancient caves with prehistoric rock art",
			Category: "history", Duration: 3.0, Cost: 12.0, Location: "Wayanad",
			Rating: 4.5, Tags: []string{"caves", "history", "ancient"}, TimeSlot: types.SlotMorning},
		{Name: "Soochipara Falls", Description: "Three-tier waterfall and trekking",
			Category: "adventure", Duration: 4.0, Cost: 8.0, Location: "Wayanad",
			Rating: 4.6, Tags: []string{"waterfalls", "trekking", "nature"}, TimeSlot: types.SlotFullDay},
	}

	hotels := map[string][]types.Hotel{
		"Munnar": {
			{Name: "Tea Valley Resort", Location: "Munnar", Type: "resort", PricePerNight: 95.0, Rating: 4.5},
			{Name: "Misty Mountain Inn", Location: "Munnar", Type: "hotel", PricePerNight: 45.0, Rating: 4.2},
			{Name: "Planter's Heritage Bungalow", Location: "Munnar", Type: "homestay", PricePerNight: 140.0, Rating: 4.7},
		},
		"Alleppey": {
			{Name: "Backwater Retreat", Location: "Alleppey", Type: "resort", PricePerNight: 130.0, Rating: 4.6},
			{Name: "Lakeside Lodge", Location: "Alleppey", Type: "hotel", PricePerNight: 55.0, Rating: 4.1},
		},
		"Kochi": {
			{Name: "Fort Kochi Heritage Hotel", Location: "Kochi", Type: "hotel", PricePerNight: 85.0, Rating: 4.4},
			{Name: "Harbour View Inn", Location: "Kochi", Type: "hotel", PricePerNight: 40.0, Rating: 4.0},
			{Name: "Colonial Residency", Location: "Kochi", Type: "hotel", PricePerNight: 160.0, Rating: 4.6},
		},
		"Thekkady": {
			{Name: "Periyar Jungle Lodge", Location: "Thekkady", Type: "lodge", PricePerNight: 75.0, Rating: 4.3},
			{Name: "Spice Garden Stay", Location: "Thekkady", Type: "homestay", PricePerNight: 35.0, Rating: 4.2},
		},
		"Kumarakom": {
			{Name: "Bird Sanctuary Resort", Location: "Kumarakom", Type: "resort", PricePerNight: 110.0, Rating: 4.5},
			{Name: "Kumarakom Lake View", Location: "Kumarakom", Type: "hotel", PricePerNight: 60.0, Rating: 4.2},
		},
		"Kovalam": {
			{Name: "Lighthouse Beach Resort", Location: "Kovalam", Type: "resort", PricePerNight: 100.0, Rating: 4.4},
			{Name: "Surf Shack Hostel", Location: "Kovalam", Type: "hostel", PricePerNight: 20.0, Rating: 4.0},
		},
		"Wayanad": {
			{Name: "Rainforest Treehouse", Location: "Wayanad", Type: "resort", PricePerNight: 90.0, Rating: 4.6},
			{Name: "Wayanad Green Stay", Location: "Wayanad", Type: "homestay", PricePerNight: 30.0, Rating: 4.1},
		},
	}

	return NewCatalog(destinations, activities, hotels)
}
