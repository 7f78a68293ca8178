package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keralatrips/itinerary-api/internal/types"
)

func TestValidateAppliesDefaults(t *testing.T) {
	req := GenerateItineraryRequest{
		Duration: 5,
		Budget:   1500,
	}

	prefs, err := req.Validate()
	require.NoError(t, err)

	assert.Equal(t, "Kerala", prefs.Destination)
	assert.Equal(t, types.TravelStyleMidRange, prefs.TravelStyle)
	assert.Equal(t, 2, prefs.GroupSize)
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GenerateItineraryRequest)
		wantErr bool
	}{
		{"valid", func(r *GenerateItineraryRequest) {}, false},
		{"duration too short", func(r *GenerateItineraryRequest) { r.Duration = 0 }, true},
		{"duration too long", func(r *GenerateItineraryRequest) { r.Duration = 31 }, true},
		{"budget too low", func(r *GenerateItineraryRequest) { r.Budget = 50 }, true},
		{"budget too high", func(r *GenerateItineraryRequest) { r.Budget = 60000 }, true},
		{"group too large", func(r *GenerateItineraryRequest) { r.GroupSize = 21 }, true},
		{"unknown style", func(r *GenerateItineraryRequest) { r.TravelStyle = "party" }, true},
		{"style is case-insensitive", func(r *GenerateItineraryRequest) { r.TravelStyle = "Luxury" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := GenerateItineraryRequest{
				Destination: "Kerala",
				Duration:    7,
				Budget:      2000,
				TravelStyle: "budget",
				GroupSize:   2,
			}
			tt.mutate(&req)

			_, err := req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrInvalidPreference)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
