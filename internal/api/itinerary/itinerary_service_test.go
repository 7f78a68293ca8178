package itinerary

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/keralatrips/itinerary-api/app/cache"
	"github.com/keralatrips/itinerary-api/internal/planner"
	"github.com/keralatrips/itinerary-api/internal/types"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SaveItinerary(ctx context.Context, saved types.SavedItinerary) error {
	args := m.Called(ctx, saved)
	return args.Error(0)
}

func (m *MockRepository) GetItinerary(ctx context.Context, userID string, id uuid.UUID) (*types.SavedItinerary, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SavedItinerary), args.Error(1)
}

func (m *MockRepository) ListItineraries(ctx context.Context, userID string, page, pageSize int, status string) (*types.PaginatedItinerariesResponse, error) {
	args := m.Called(ctx, userID, page, pageSize, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PaginatedItinerariesResponse), args.Error(1)
}

func (m *MockRepository) UpdateItinerary(ctx context.Context, userID string, id uuid.UUID, params types.UpdateItineraryRequest) (*types.SavedItinerary, error) {
	args := m.Called(ctx, userID, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SavedItinerary), args.Error(1)
}

func (m *MockRepository) DeleteItinerary(ctx context.Context, userID string, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockRepository) TouchAccess(ctx context.Context, userID string, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockEnhancer is a mock implementation of Enhancer
type MockEnhancer struct {
	mock.Mock
}

func (m *MockEnhancer) EnhanceInsights(ctx context.Context, itinerary *types.Itinerary, prefs types.TripPreferences) (*types.TripInsights, error) {
	args := m.Called(ctx, itinerary, prefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TripInsights), args.Error(1)
}

func newTestGenerator(t *testing.T) Generator {
	t.Helper()
	p, err := planner.New(planner.NewKeralaCatalog(), planner.NewKeywordScorer(), slog.Default())
	require.NoError(t, err)
	return p
}

func testPrefs() types.TripPreferences {
	return types.TripPreferences{
		Destination: "Kerala",
		Duration:    5,
		Budget:      2000,
		Interests:   []string{"nature"},
		TravelStyle: types.TravelStyleMidRange,
		GroupSize:   2,
		StartDate:   "2026-02-01",
	}
}

func TestGenerateItineraryStoresResult(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("SaveItinerary", mock.Anything, mock.MatchedBy(func(saved types.SavedItinerary) bool {
		return saved.UserID == "user-1" &&
			saved.DurationDays == 5 &&
			saved.Status == "planned" &&
			saved.Payload != nil
	})).Return(nil).Once()

	svc := NewServiceImpl(newTestGenerator(t), mockRepo, cache.NewMemoryStore(time.Minute), slog.Default(),
		Options{StoreResults: true})

	itinerary, err := svc.GenerateItinerary(context.Background(), "user-1", testPrefs())
	require.NoError(t, err)
	assert.Len(t, itinerary.Days, 5)
	mockRepo.AssertExpectations(t)
}

func TestGenerateItineraryCacheHitSkipsPlannerAndStore(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("SaveItinerary", mock.Anything, mock.Anything).Return(nil)

	svc := NewServiceImpl(newTestGenerator(t), mockRepo, cache.NewMemoryStore(time.Minute), slog.Default(),
		Options{StoreResults: true})

	first, err := svc.GenerateItinerary(context.Background(), "user-1", testPrefs())
	require.NoError(t, err)

	second, err := svc.GenerateItinerary(context.Background(), "user-1", testPrefs())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "cached itinerary must be returned verbatim")
	mockRepo.AssertNumberOfCalls(t, "SaveItinerary", 1)
}

func TestGenerateItineraryStorageFailureIsNonFatal(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("SaveItinerary", mock.Anything, mock.Anything).
		Return(errors.New("connection refused")).Once()

	svc := NewServiceImpl(newTestGenerator(t), mockRepo, nil, slog.Default(),
		Options{StoreResults: true})

	itinerary, err := svc.GenerateItinerary(context.Background(), "user-1", testPrefs())
	require.NoError(t, err)
	assert.NotEmpty(t, itinerary.ID)
	mockRepo.AssertExpectations(t)
}

func TestGenerateItineraryEnhancerRewritesInsights(t *testing.T) {
	enhanced := &types.TripInsights{RouteReasoning: "rewritten"}

	mockEnhancer := new(MockEnhancer)
	mockEnhancer.On("EnhanceInsights", mock.Anything, mock.Anything, mock.Anything).
		Return(enhanced, nil).Once()

	svc := NewServiceImpl(newTestGenerator(t), nil, nil, slog.Default(),
		Options{Enhancer: mockEnhancer})

	itinerary, err := svc.GenerateItinerary(context.Background(), "user-1", testPrefs())
	require.NoError(t, err)
	assert.Equal(t, "rewritten", itinerary.Insights.RouteReasoning)
	mockEnhancer.AssertExpectations(t)
}

func TestGenerateItineraryEnhancerFailureKeepsTemplateInsights(t *testing.T) {
	mockEnhancer := new(MockEnhancer)
	mockEnhancer.On("EnhanceInsights", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("model unavailable")).Once()

	svc := NewServiceImpl(newTestGenerator(t), nil, nil, slog.Default(),
		Options{Enhancer: mockEnhancer})

	itinerary, err := svc.GenerateItinerary(context.Background(), "user-1", testPrefs())
	require.NoError(t, err)
	assert.NotEmpty(t, itinerary.Insights.RouteReasoning)
	mockEnhancer.AssertExpectations(t)
}

func TestGenerateItineraryInvalidStyle(t *testing.T) {
	svc := NewServiceImpl(newTestGenerator(t), nil, nil, slog.Default(), Options{})

	prefs := testPrefs()
	prefs.TravelStyle = "party"

	_, err := svc.GenerateItinerary(context.Background(), "user-1", prefs)
	assert.ErrorIs(t, err, types.ErrInvalidPreference)
}

func TestGetItineraryBumpsAccessCount(t *testing.T) {
	id := uuid.New()
	saved := &types.SavedItinerary{ID: id, UserID: "user-1", Title: "Trip"}

	mockRepo := new(MockRepository)
	mockRepo.On("GetItinerary", mock.Anything, "user-1", id).Return(saved, nil).Once()
	mockRepo.On("TouchAccess", mock.Anything, "user-1", id).Return(nil).Once()

	svc := NewServiceImpl(newTestGenerator(t), mockRepo, nil, slog.Default(), Options{})

	got, err := svc.GetItinerary(context.Background(), "user-1", id)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	mockRepo.AssertExpectations(t)
}

func TestGetItineraryTouchFailureIsNonFatal(t *testing.T) {
	id := uuid.New()
	saved := &types.SavedItinerary{ID: id, UserID: "user-1"}

	mockRepo := new(MockRepository)
	mockRepo.On("GetItinerary", mock.Anything, "user-1", id).Return(saved, nil).Once()
	mockRepo.On("TouchAccess", mock.Anything, "user-1", id).
		Return(errors.New("deadlock")).Once()

	svc := NewServiceImpl(newTestGenerator(t), mockRepo, nil, slog.Default(), Options{})

	got, err := svc.GetItinerary(context.Background(), "user-1", id)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestGetItinerariesClampsPagination(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("ListItineraries", mock.Anything, "user-1", 1, 20, "").
		Return(&types.PaginatedItinerariesResponse{Page: 1, PageSize: 20}, nil).Once()

	svc := NewServiceImpl(newTestGenerator(t), mockRepo, nil, slog.Default(), Options{})

	_, err := svc.GetItineraries(context.Background(), "user-1", 0, 500, "")
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdateItineraryRejectsUnknownStatus(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewServiceImpl(newTestGenerator(t), mockRepo, nil, slog.Default(), Options{})

	bad := "archived"
	_, err := svc.UpdateItinerary(context.Background(), "user-1", uuid.New(),
		types.UpdateItineraryRequest{Status: &bad})
	assert.ErrorIs(t, err, types.ErrInvalidPreference)
	mockRepo.AssertNotCalled(t, "UpdateItinerary")
}

func TestDeleteItineraryNotFound(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockRepository)
	mockRepo.On("DeleteItinerary", mock.Anything, "user-1", id).
		Return(types.ErrNotFound).Once()

	svc := NewServiceImpl(newTestGenerator(t), mockRepo, nil, slog.Default(), Options{})

	err := svc.DeleteItinerary(context.Background(), "user-1", id)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
