package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/keralatrips/itinerary-api/internal/types"
)

func TestFingerprintStable(t *testing.T) {
	prefs := types.TripPreferences{
		Destination: "Kerala",
		Duration:    7,
		Budget:      2000,
		Interests:   []string{"nature", "culture"},
		TravelStyle: types.TravelStyleMidRange,
		GroupSize:   2,
		StartDate:   "2026-01-10",
	}

	assert.Equal(t, Fingerprint(prefs), Fingerprint(prefs))

	other := prefs
	other.Duration = 8
	assert.NotEqual(t, Fingerprint(prefs), Fingerprint(other))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	_, ok := store.GetItinerary(ctx, "missing")
	assert.False(t, ok)

	itinerary := &types.Itinerary{ID: "abc", Duration: 5}
	store.SetItinerary(ctx, "key", itinerary, time.Minute)

	cached, ok := store.GetItinerary(ctx, "key")
	assert.True(t, ok)
	assert.Equal(t, itinerary, cached)
}
