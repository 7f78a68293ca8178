package planner

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/keralatrips/itinerary-api/internal/types"
)

// MockScorer is a mock implementation of Scorer
type MockScorer struct {
	mock.Mock
}

func (m *MockScorer) ScoreActivities(ctx context.Context, preferenceText string, descriptions []string) ([]float64, error) {
	args := m.Called(ctx, preferenceText, descriptions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	p, err := New(NewKeralaCatalog(), NewKeywordScorer(), slog.Default())
	require.NoError(t, err)
	return p
}

func basePrefs(duration int) types.TripPreferences {
	return types.TripPreferences{
		Destination: "Kerala",
		Duration:    duration,
		Budget:      2000,
		Interests:   []string{"nature", "culture"},
		TravelStyle: types.TravelStyleMidRange,
		GroupSize:   2,
		StartDate:   "2026-01-10",
	}
}

func TestGenerateDaySumInvariant(t *testing.T) {
	p := newTestPlanner(t)

	for duration := 1; duration <= 14; duration++ {
		itinerary, err := p.Generate(context.Background(), basePrefs(duration))
		require.NoError(t, err)
		assert.Len(t, itinerary.Days, duration, "duration=%d", duration)

		for i, day := range itinerary.Days {
			assert.Equal(t, i+1, day.Day)
		}
	}
}

func TestGenerateActivityQuotaAndSlots(t *testing.T) {
	p := newTestPlanner(t)

	itinerary, err := p.Generate(context.Background(), basePrefs(10))
	require.NoError(t, err)

	prevLocation := ""
	for _, day := range itinerary.Days {
		assert.LessOrEqual(t, len(day.Activities), 3)

		firstDayHere := day.Location != prevLocation
		if firstDayHere {
			assert.Len(t, day.Activities, 2, "first day at %s must stay light", day.Location)
		}
		prevLocation = day.Location

		usedSlots := make(map[string]int)
		for _, a := range day.Activities {
			if a.TimeSlot != types.SlotFullDay {
				usedSlots[a.TimeSlot]++
			}
		}
		for slot, count := range usedSlots {
			assert.Equal(t, 1, count, "slot %s double-booked on day %d", slot, day.Day)
		}
	}
}

func TestGenerateTransportOnlyOnTransitionDays(t *testing.T) {
	p := newTestPlanner(t)

	itinerary, err := p.Generate(context.Background(), basePrefs(7))
	require.NoError(t, err)

	prevLocation := ""
	for i, day := range itinerary.Days {
		if i == 0 {
			assert.Nil(t, day.Transportation)
		} else if day.Location != prevLocation {
			require.NotNil(t, day.Transportation, "day %d enters %s", day.Day, day.Location)
			assert.Equal(t, prevLocation, day.Transportation.From)
			assert.Equal(t, day.Location, day.Transportation.To)
		} else {
			assert.Nil(t, day.Transportation)
		}
		prevLocation = day.Location
	}
}

func TestGenerateDatesAreSequential(t *testing.T) {
	p := newTestPlanner(t)

	itinerary, err := p.Generate(context.Background(), basePrefs(4))
	require.NoError(t, err)

	require.Len(t, itinerary.Days, 4)
	assert.Equal(t, "2026-01-10", itinerary.Days[0].Date)
	assert.Equal(t, "2026-01-11", itinerary.Days[1].Date)
	assert.Equal(t, "2026-01-13", itinerary.Days[3].Date)
}

func TestGenerateRejectsUnknownStyle(t *testing.T) {
	p := newTestPlanner(t)

	prefs := basePrefs(5)
	prefs.TravelStyle = "party"

	_, err := p.Generate(context.Background(), prefs)
	assert.ErrorIs(t, err, types.ErrInvalidPreference)
}

func TestNewRejectsEmptyCatalog(t *testing.T) {
	_, err := New(NewCatalog(nil, nil, nil), NewKeywordScorer(), slog.Default())
	assert.ErrorIs(t, err, types.ErrConfiguration)
}

func TestGenerateScorerFailureDegradesToZeroScores(t *testing.T) {
	mockScorer := new(MockScorer)
	mockScorer.On("ScoreActivities", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("model unavailable"))

	p, err := New(NewKeralaCatalog(), mockScorer, slog.Default())
	require.NoError(t, err)

	itinerary, err := p.Generate(context.Background(), basePrefs(5))
	require.NoError(t, err)

	assert.Len(t, itinerary.Days, 5)
	assert.Equal(t, 0.0, itinerary.PersonalizationScore)
	mockScorer.AssertExpectations(t)
}

func TestGeneratePersonalizationScoreRange(t *testing.T) {
	p := newTestPlanner(t)

	itinerary, err := p.Generate(context.Background(), basePrefs(7))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, itinerary.PersonalizationScore, 0.0)
	assert.LessOrEqual(t, itinerary.PersonalizationScore, 1.0)
}

// When every recommended stay is at or below the base allocation, the
// remainder days are dropped and the plan legitimately ends short of
// the requested duration. Kept as the reference behaves; see DESIGN.md.
func TestGenerateUndershootEndsEarly(t *testing.T) {
	shortStays := NewCatalog([]types.Destination{
		{Name: "Kochi", Latitude: 9.9312, Longitude: 76.2673, Category: "city", RecommendedDuration: 1},
		{Name: "Munnar", Latitude: 10.0889, Longitude: 77.0595, Category: "hill_station", RecommendedDuration: 1},
		{Name: "Thekkady", Latitude: 9.5992, Longitude: 77.1603, Category: "wildlife", RecommendedDuration: 1},
	}, []types.Activity{
		{Name: "City Walk", Location: "Kochi", TimeSlot: types.SlotMorning},
		{Name: "Tea Walk", Location: "Munnar", TimeSlot: types.SlotMorning},
		{Name: "Safari", Location: "Thekkady", TimeSlot: types.SlotMorning},
	}, nil)

	p, err := New(shortStays, NewKeywordScorer(), slog.Default())
	require.NoError(t, err)

	prefs := basePrefs(5)
	itinerary, err := p.Generate(context.Background(), prefs)
	require.NoError(t, err)

	assert.Len(t, itinerary.Days, 3, "dropped extra days leave the tail unscheduled")
}

func TestGenerateHotelSuggestions(t *testing.T) {
	p := newTestPlanner(t)

	itinerary, err := p.Generate(context.Background(), basePrefs(7))
	require.NoError(t, err)

	require.NotEmpty(t, itinerary.Hotels)
	assert.LessOrEqual(t, len(itinerary.Hotels), 3)
	for i := 1; i < len(itinerary.Hotels); i++ {
		assert.GreaterOrEqual(t, itinerary.Hotels[i-1].Rating, itinerary.Hotels[i].Rating)
	}
}

func TestGenerateCostBreakdown(t *testing.T) {
	p := newTestPlanner(t)

	prefs := basePrefs(7)
	prefs.TravelStyle = types.TravelStyleBudget

	itinerary, err := p.Generate(context.Background(), prefs)
	require.NoError(t, err)

	breakdown := itinerary.CostBreakdown
	assert.Greater(t, itinerary.TotalCost, 0.0)
	assert.InDelta(t,
		breakdown.Accommodation+breakdown.Meals+breakdown.Activities+breakdown.Transportation,
		itinerary.TotalCost, 1e-6)

	routeLen := len(itinerary.RouteOptimization.Sequence)
	assert.InDelta(t, float64(routeLen)*25, breakdown.Accommodation, 1e-9)
	assert.InDelta(t, float64(routeLen)*15, breakdown.Meals, 1e-9)
	assert.Len(t, itinerary.TransportationPlan, routeLen-1)
}
