package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/metric"

	appmetrics "github.com/keralatrips/itinerary-api/app/observability/metrics"
	"github.com/keralatrips/itinerary-api/internal/types"
)

// Ensure RepositoryImpl implements the Repository interface
var _ Repository = (*RepositoryImpl)(nil)

// DB is the subset of pgxpool.Pool the repository needs. Kept as an
// interface so tests can substitute a mock pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository defines the persistence operations for saved itineraries.
type Repository interface {
	SaveItinerary(ctx context.Context, saved types.SavedItinerary) error
	GetItinerary(ctx context.Context, userID string, id uuid.UUID) (*types.SavedItinerary, error)
	ListItineraries(ctx context.Context, userID string, page, pageSize int, status string) (*types.PaginatedItinerariesResponse, error)
	UpdateItinerary(ctx context.Context, userID string, id uuid.UUID, params types.UpdateItineraryRequest) (*types.SavedItinerary, error)
	DeleteItinerary(ctx context.Context, userID string, id uuid.UUID) error
	TouchAccess(ctx context.Context, userID string, id uuid.UUID) error
}

type RepositoryImpl struct {
	logger  *slog.Logger
	db      DB
	metrics *appmetrics.AppMetrics
}

// NewRepository builds the postgres-backed repository. The metrics
// argument may be nil, in which case query timing is not recorded.
func NewRepository(db DB, logger *slog.Logger, m *appmetrics.AppMetrics) *RepositoryImpl {
	return &RepositoryImpl{
		logger:  logger,
		db:      db,
		metrics: m,
	}
}

func (r *RepositoryImpl) observeQuery(ctx context.Context, operation string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(appmetrics.DbOperation(operation))
	r.metrics.DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		r.metrics.DbQueryErrorsTotal.Add(ctx, 1, attrs)
	}
}

const savedItineraryColumns = `id, user_id, title, destination, start_date, end_date, duration_days,
       travel_style, payload, total_cost, personalization_score, user_notes,
       is_favorite, status, access_count, created_at, updated_at, last_accessed`

// SaveItinerary inserts a generated itinerary with its metadata.
func (r *RepositoryImpl) SaveItinerary(ctx context.Context, saved types.SavedItinerary) (err error) {
	defer func(start time.Time) { r.observeQuery(ctx, "save_itinerary", start, err) }(time.Now())

	payload, err := json.Marshal(saved.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal itinerary payload: %w", err)
	}

	query := `
        INSERT INTO itineraries (
            id, user_id, title, destination, start_date, end_date, duration_days,
            travel_style, payload, total_cost, personalization_score, user_notes,
            is_favorite, status, access_count, created_at, updated_at, last_accessed
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
        )
    `
	_, err = r.db.Exec(ctx, query,
		saved.ID, saved.UserID, saved.Title, saved.Destination, saved.StartDate, saved.EndDate,
		saved.DurationDays, saved.TravelStyle, payload, saved.TotalCost, saved.PersonalizationScore,
		saved.UserNotes, saved.IsFavorite, saved.Status, saved.AccessCount,
		saved.CreatedAt, saved.UpdatedAt, saved.LastAccessed,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to save itinerary", slog.Any("error", err))
		return fmt.Errorf("failed to save itinerary: %w", err)
	}
	return nil
}

// GetItinerary retrieves one saved itinerary scoped to its owner.
func (r *RepositoryImpl) GetItinerary(ctx context.Context, userID string, id uuid.UUID) (saved *types.SavedItinerary, err error) {
	defer func(start time.Time) { r.observeQuery(ctx, "get_itinerary", start, err) }(time.Now())

	query := `
        SELECT ` + savedItineraryColumns + `
        FROM itineraries
        WHERE id = $1 AND user_id = $2
    `
	row := r.db.QueryRow(ctx, query, id, userID)

	var result types.SavedItinerary
	var payload []byte
	var startDate, endDate *time.Time
	err = row.Scan(
		&result.ID, &result.UserID, &result.Title, &result.Destination, &startDate, &endDate,
		&result.DurationDays, &result.TravelStyle, &payload, &result.TotalCost,
		&result.PersonalizationScore, &result.UserNotes, &result.IsFavorite, &result.Status,
		&result.AccessCount, &result.CreatedAt, &result.UpdatedAt, &result.LastAccessed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("itinerary %s: %w", id, types.ErrNotFound)
			return nil, err
		}
		r.logger.ErrorContext(ctx, "Failed to get itinerary", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get itinerary: %w", err)
	}

	if startDate != nil {
		result.StartDate = startDate.Format("2006-01-02")
	}
	if endDate != nil {
		result.EndDate = endDate.Format("2006-01-02")
	}
	if len(payload) > 0 {
		var itinerary types.Itinerary
		if err := json.Unmarshal(payload, &itinerary); err != nil {
			r.logger.ErrorContext(ctx, "Stored itinerary payload is not valid JSON",
				slog.String("itineraryID", id.String()), slog.Any("error", err))
		} else {
			result.Payload = &itinerary
		}
	}
	return &result, nil
}

// ListItineraries returns a page of the user's saved itineraries,
// newest first, optionally filtered by status. The heavy payload
// column is left out of list rows.
func (r *RepositoryImpl) ListItineraries(ctx context.Context, userID string, page, pageSize int, status string) (resp *types.PaginatedItinerariesResponse, err error) {
	defer func(start time.Time) { r.observeQuery(ctx, "list_itineraries", start, err) }(time.Now())

	countQuery := `
        SELECT COUNT(*)
        FROM itineraries
        WHERE user_id = $1 AND ($2 = '' OR status = $2)
    `
	var total int
	if err = r.db.QueryRow(ctx, countQuery, userID, status).Scan(&total); err != nil {
		r.logger.ErrorContext(ctx, "Failed to count itineraries", slog.Any("error", err))
		return nil, fmt.Errorf("failed to count itineraries: %w", err)
	}

	query := `
        SELECT id, user_id, title, destination, start_date, end_date, duration_days,
               travel_style, total_cost, personalization_score, user_notes,
               is_favorite, status, access_count, created_at, updated_at, last_accessed
        FROM itineraries
        WHERE user_id = $1 AND ($2 = '' OR status = $2)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `
	rows, err := r.db.Query(ctx, query, userID, status, pageSize, (page-1)*pageSize)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to list itineraries", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list itineraries: %w", err)
	}
	defer rows.Close()

	itineraries := make([]types.SavedItinerary, 0, pageSize)
	for rows.Next() {
		var item types.SavedItinerary
		var startDate, endDate *time.Time
		err = rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Destination, &startDate, &endDate,
			&item.DurationDays, &item.TravelStyle, &item.TotalCost, &item.PersonalizationScore,
			&item.UserNotes, &item.IsFavorite, &item.Status, &item.AccessCount,
			&item.CreatedAt, &item.UpdatedAt, &item.LastAccessed,
		)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan itinerary row", slog.Any("error", err))
			return nil, fmt.Errorf("failed to scan itinerary row: %w", err)
		}
		if startDate != nil {
			item.StartDate = startDate.Format("2006-01-02")
		}
		if endDate != nil {
			item.EndDate = endDate.Format("2006-01-02")
		}
		itineraries = append(itineraries, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate itinerary rows: %w", err)
	}

	return &types.PaginatedItinerariesResponse{
		Itineraries:  itineraries,
		TotalRecords: total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// UpdateItinerary applies the non-nil fields of params and returns the
// updated record. Nil pointers arrive as SQL NULLs and COALESCE keeps
// the stored value.
func (r *RepositoryImpl) UpdateItinerary(ctx context.Context, userID string, id uuid.UUID, params types.UpdateItineraryRequest) (saved *types.SavedItinerary, err error) {
	defer func(start time.Time) { r.observeQuery(ctx, "update_itinerary", start, err) }(time.Now())

	query := `
        UPDATE itineraries
        SET user_notes  = COALESCE($3, user_notes),
            is_favorite = COALESCE($4, is_favorite),
            status      = COALESCE($5, status),
            updated_at  = now()
        WHERE id = $1 AND user_id = $2
        RETURNING ` + savedItineraryColumns + `
    `
	row := r.db.QueryRow(ctx, query, id, userID, params.UserNotes, params.IsFavorite, params.Status)

	var result types.SavedItinerary
	var payload []byte
	var startDate, endDate *time.Time
	err = row.Scan(
		&result.ID, &result.UserID, &result.Title, &result.Destination, &startDate, &endDate,
		&result.DurationDays, &result.TravelStyle, &payload, &result.TotalCost,
		&result.PersonalizationScore, &result.UserNotes, &result.IsFavorite, &result.Status,
		&result.AccessCount, &result.CreatedAt, &result.UpdatedAt, &result.LastAccessed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("itinerary %s: %w", id, types.ErrNotFound)
			return nil, err
		}
		r.logger.ErrorContext(ctx, "Failed to update itinerary", slog.Any("error", err))
		return nil, fmt.Errorf("failed to update itinerary: %w", err)
	}

	if startDate != nil {
		result.StartDate = startDate.Format("2006-01-02")
	}
	if endDate != nil {
		result.EndDate = endDate.Format("2006-01-02")
	}
	if len(payload) > 0 {
		var itinerary types.Itinerary
		if err := json.Unmarshal(payload, &itinerary); err == nil {
			result.Payload = &itinerary
		}
	}
	return &result, nil
}

// DeleteItinerary removes a saved itinerary scoped to its owner.
func (r *RepositoryImpl) DeleteItinerary(ctx context.Context, userID string, id uuid.UUID) (err error) {
	defer func(start time.Time) { r.observeQuery(ctx, "delete_itinerary", start, err) }(time.Now())

	tag, err := r.db.Exec(ctx, `DELETE FROM itineraries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete itinerary", slog.Any("error", err))
		return fmt.Errorf("failed to delete itinerary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = fmt.Errorf("itinerary %s: %w", id, types.ErrNotFound)
		return err
	}
	return nil
}

// TouchAccess bumps the access counter on a read.
func (r *RepositoryImpl) TouchAccess(ctx context.Context, userID string, id uuid.UUID) (err error) {
	defer func(start time.Time) { r.observeQuery(ctx, "touch_access", start, err) }(time.Now())

	query := `
        UPDATE itineraries
        SET access_count = access_count + 1, last_accessed = now()
        WHERE id = $1 AND user_id = $2
    `
	if _, err = r.db.Exec(ctx, query, id, userID); err != nil {
		return fmt.Errorf("failed to record itinerary access: %w", err)
	}
	return nil
}
