package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraphFullyConnected(t *testing.T) {
	catalog := NewKeralaCatalog()
	graph := BuildGraph(catalog)

	n := len(catalog.Destinations())
	assert.Equal(t, n*(n-1)/2, graph.Size())

	for _, a := range catalog.Destinations() {
		for _, b := range catalog.Destinations() {
			if a.Name == b.Name {
				continue
			}
			_, ok := graph.Edge(a.Name, b.Name)
			assert.True(t, ok, "missing edge %s-%s", a.Name, b.Name)
		}
	}
}

func TestGraphEdgeSymmetry(t *testing.T) {
	catalog := NewKeralaCatalog()
	graph := BuildGraph(catalog)

	destinations := catalog.Destinations()
	for i := range destinations {
		for j := i + 1; j < len(destinations); j++ {
			forward, ok := graph.Edge(destinations[i].Name, destinations[j].Name)
			require.True(t, ok)
			backward, ok := graph.Edge(destinations[j].Name, destinations[i].Name)
			require.True(t, ok)

			assert.Equal(t, forward, backward)
			assert.GreaterOrEqual(t, forward.DistanceKm, 0.0)
			assert.GreaterOrEqual(t, forward.TravelTime, 0.0)
			assert.GreaterOrEqual(t, forward.Cost, 0.0)
		}
	}
}

func TestGraphEdgeDerivedValues(t *testing.T) {
	graph := BuildGraph(NewKeralaCatalog())

	edge, ok := graph.Edge("Kochi", "Alleppey")
	require.True(t, ok)

	// Kochi-Alleppey is roughly 50 km as the crow flies.
	assert.InDelta(t, 49, edge.DistanceKm, 5)
	assert.InDelta(t, edge.DistanceKm/averageRoadSpeedKmh, edge.TravelTime, 1e-9)
	assert.InDelta(t, edge.DistanceKm*costPerKm, edge.Cost, 1e-9)
}

func TestGraphEdgeOrFallback(t *testing.T) {
	graph := BuildGraph(NewKeralaCatalog())

	edge, found := graph.EdgeOrFallback("Kochi", "Atlantis")
	assert.False(t, found)
	assert.Equal(t, fallbackEdge, edge)

	edge, found = graph.EdgeOrFallback("Kochi", "Munnar")
	assert.True(t, found)
	assert.NotEqual(t, fallbackEdge, edge)
}
