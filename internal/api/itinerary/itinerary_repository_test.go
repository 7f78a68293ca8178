package itinerary

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keralatrips/itinerary-api/internal/types"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *RepositoryImpl) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return mockPool, NewRepository(mockPool, slog.Default(), nil)
}

func sampleSaved(userID string) types.SavedItinerary {
	now := time.Now().UTC()
	return types.SavedItinerary{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        "AI-Curated 5-Day Kerala Journey",
		Destination:  "Kerala",
		StartDate:    "2026-02-01",
		EndDate:      "2026-02-05",
		DurationDays: 5,
		TravelStyle:  "mid-range",
		Payload:      &types.Itinerary{Duration: 5},
		TotalCost:    1234.5,
		Status:       "planned",
		CreatedAt:    now,
		UpdatedAt:    now,
		LastAccessed: now,
	}
}

func TestRepositorySaveItinerary(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	saved := sampleSaved("user-1")
	mockPool.ExpectExec("INSERT INTO itineraries").
		WithArgs(saved.ID, saved.UserID, saved.Title, saved.Destination, saved.StartDate,
			saved.EndDate, saved.DurationDays, saved.TravelStyle, pgxmock.AnyArg(),
			saved.TotalCost, saved.PersonalizationScore, saved.UserNotes, saved.IsFavorite,
			saved.Status, saved.AccessCount, saved.CreatedAt, saved.UpdatedAt, saved.LastAccessed).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.SaveItinerary(context.Background(), saved)
	require.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRepositoryGetItineraryNotFound(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	id := uuid.New()
	mockPool.ExpectQuery("SELECT (.+) FROM itineraries").
		WithArgs(id, "user-1").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetItinerary(context.Background(), "user-1", id)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRepositoryGetItinerary(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	id := uuid.New()
	now := time.Now().UTC()
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	payload := []byte(`{"id":"abc","duration":5}`)

	rows := pgxmock.NewRows([]string{
		"id", "user_id", "title", "destination", "start_date", "end_date", "duration_days",
		"travel_style", "payload", "total_cost", "personalization_score", "user_notes",
		"is_favorite", "status", "access_count", "created_at", "updated_at", "last_accessed",
	}).AddRow(
		id, "user-1", "Trip", "Kerala", &start, &end, 5,
		"mid-range", payload, 1234.5, 0.42, "",
		false, "planned", 3, now, now, now,
	)
	mockPool.ExpectQuery("SELECT (.+) FROM itineraries").
		WithArgs(id, "user-1").
		WillReturnRows(rows)

	saved, err := repo.GetItinerary(context.Background(), "user-1", id)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", saved.StartDate)
	assert.Equal(t, "2026-02-05", saved.EndDate)
	require.NotNil(t, saved.Payload)
	assert.Equal(t, 5, saved.Payload.Duration)
	assert.Equal(t, 3, saved.AccessCount)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRepositoryListItineraries(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	now := time.Now().UTC()
	mockPool.ExpectQuery("SELECT COUNT").
		WithArgs("user-1", "planned").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	listRows := pgxmock.NewRows([]string{
		"id", "user_id", "title", "destination", "start_date", "end_date", "duration_days",
		"travel_style", "total_cost", "personalization_score", "user_notes",
		"is_favorite", "status", "access_count", "created_at", "updated_at", "last_accessed",
	}).
		AddRow(uuid.New(), "user-1", "Trip A", "Kerala", nil, nil, 5,
			"budget", 900.0, 0.5, "", false, "planned", 0, now, now, now).
		AddRow(uuid.New(), "user-1", "Trip B", "Kerala", nil, nil, 7,
			"luxury", 4000.0, 0.7, "", true, "planned", 2, now, now, now)
	mockPool.ExpectQuery("SELECT id, user_id").
		WithArgs("user-1", "planned", 20, 0).
		WillReturnRows(listRows)

	resp, err := repo.ListItineraries(context.Background(), "user-1", 1, 20, "planned")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalRecords)
	require.Len(t, resp.Itineraries, 2)
	assert.Nil(t, resp.Itineraries[0].Payload, "list rows must not carry the payload")
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRepositoryDeleteItinerary(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	id := uuid.New()
	mockPool.ExpectExec("DELETE FROM itineraries").
		WithArgs(id, "user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.DeleteItinerary(context.Background(), "user-1", id)
	require.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRepositoryDeleteItineraryNotFound(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	id := uuid.New()
	mockPool.ExpectExec("DELETE FROM itineraries").
		WithArgs(id, "user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteItinerary(context.Background(), "user-1", id)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRepositoryTouchAccess(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	id := uuid.New()
	mockPool.ExpectExec("UPDATE itineraries").
		WithArgs(id, "user-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.TouchAccess(context.Background(), "user-1", id)
	require.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
