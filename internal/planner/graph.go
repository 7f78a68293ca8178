package planner

import (
	"math"

	"github.com/keralatrips/itinerary-api/internal/types"
)

const (
	// earthRadiusKm is the mean radius of Earth in kilometers.
	earthRadiusKm = 6371.0

	// averageRoadSpeedKmh is the assumed average speed on Kerala roads,
	// used to turn distances into travel-time estimates.
	averageRoadSpeedKmh = 40.0

	// costPerKm is the estimated monetary cost of road travel per km.
	costPerKm = 0.5
)

// fallbackEdge substitutes for a missing edge between consecutive
// stops. The graph is fully connected so this should never trigger,
// but cost aggregation must not fail if it does.
var fallbackEdge = types.Edge{DistanceKm: 100, TravelTime: 3, Cost: 50}

// Graph holds the precomputed travel edges between every unordered
// destination pair. Read-only after construction.
type Graph struct {
	edges map[pairKey]types.Edge
}

type pairKey struct {
	a, b string
}

// normalized so that edge(A,B) and edge(B,A) hit the same entry.
func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// BuildGraph precomputes an edge for every unordered pair of catalog
// destinations.
func BuildGraph(catalog *Catalog) *Graph {
	destinations := catalog.Destinations()
	g := &Graph{edges: make(map[pairKey]types.Edge, len(destinations)*(len(destinations)-1)/2)}

	for i := range destinations {
		for j := i + 1; j < len(destinations); j++ {
			a, b := destinations[i], destinations[j]
			distance := haversineKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
			g.edges[newPairKey(a.Name, b.Name)] = types.Edge{
				DistanceKm: distance,
				TravelTime: distance / averageRoadSpeedKmh,
				Cost:       distance * costPerKm,
			}
		}
	}
	return g
}

// Edge returns the precomputed edge between two destinations, in
// either direction.
func (g *Graph) Edge(from, to string) (types.Edge, bool) {
	e, ok := g.edges[newPairKey(from, to)]
	return e, ok
}

// EdgeOrFallback returns the edge between two stops, substituting
// fallbackEdge when none exists.
func (g *Graph) EdgeOrFallback(from, to string) (types.Edge, bool) {
	if e, ok := g.Edge(from, to); ok {
		return e, true
	}
	return fallbackEdge, false
}

// Size returns the number of stored edges.
func (g *Graph) Size() int { return len(g.edges) }

// haversineKm returns the great-circle distance between two WGS-84
// coordinates in kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLon := degToRad(lon2 - lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*sinLon*sinLon
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
