package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/keralatrips/itinerary-api/app/cache"
	appmetrics "github.com/keralatrips/itinerary-api/app/observability/metrics"
	"github.com/keralatrips/itinerary-api/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Generator produces a complete itinerary from validated preferences.
// Implemented by the planner.
type Generator interface {
	Generate(ctx context.Context, prefs types.TripPreferences) (*types.Itinerary, error)
}

// Enhancer optionally rewrites the template insight text with a
// generative model. A failing enhancer never fails the request.
type Enhancer interface {
	EnhanceInsights(ctx context.Context, itinerary *types.Itinerary, prefs types.TripPreferences) (*types.TripInsights, error)
}

type Service interface {
	GenerateItinerary(ctx context.Context, userID string, prefs types.TripPreferences) (*types.Itinerary, error)
	GetItineraries(ctx context.Context, userID string, page, pageSize int, status string) (*types.PaginatedItinerariesResponse, error)
	GetItinerary(ctx context.Context, userID string, id uuid.UUID) (*types.SavedItinerary, error)
	UpdateItinerary(ctx context.Context, userID string, id uuid.UUID, params types.UpdateItineraryRequest) (*types.SavedItinerary, error)
	DeleteItinerary(ctx context.Context, userID string, id uuid.UUID) error
}

type ServiceImpl struct {
	logger       *slog.Logger
	planner      Generator
	repo         Repository
	cache        cache.Store
	enhancer     Enhancer
	metrics      *appmetrics.AppMetrics
	storeResults bool
	cacheTTL     time.Duration
}

// Options tunes optional service behavior; zero values disable
// persistence and use a short default cache TTL.
type Options struct {
	Enhancer     Enhancer
	Metrics      *appmetrics.AppMetrics
	StoreResults bool
	CacheTTL     time.Duration
}

// NewServiceImpl creates a new instance of ServiceImpl
func NewServiceImpl(planner Generator, repo Repository, store cache.Store, logger *slog.Logger, opts Options) *ServiceImpl {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &ServiceImpl{
		logger:       logger,
		planner:      planner,
		repo:         repo,
		cache:        store,
		enhancer:     opts.Enhancer,
		metrics:      opts.Metrics,
		storeResults: opts.StoreResults,
		cacheTTL:     ttl,
	}
}

// GenerateItinerary runs the planning pipeline for one request. Cached
// results are returned as-is; fresh results are cached and, when
// persistence is enabled, saved under the requesting user. A storage
// failure is logged but does not discard the generated plan.
func (s *ServiceImpl) GenerateItinerary(ctx context.Context, userID string, prefs types.TripPreferences) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.Int("trip.duration", prefs.Duration),
		attribute.String("trip.travel_style", string(prefs.TravelStyle)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "GenerateItinerary"), slog.String("userID", userID))

	key := cache.Fingerprint(prefs)
	if s.cache != nil {
		if cached, ok := s.cache.GetItinerary(ctx, key); ok {
			l.DebugContext(ctx, "Returning cached itinerary", slog.String("itineraryID", cached.ID))
			span.SetAttributes(attribute.Bool("cache.hit", true))
			span.SetStatus(codes.Ok, "Itinerary served from cache")
			return cached, nil
		}
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	start := time.Now()
	itinerary, err := s.planner.Generate(ctx, prefs)
	if err != nil {
		l.ErrorContext(ctx, "Failed to generate itinerary", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate itinerary")
		return nil, fmt.Errorf("failed to generate itinerary: %w", err)
	}

	if s.metrics != nil {
		attrs := metric.WithAttributes(appmetrics.TravelStyle(string(prefs.TravelStyle)))
		s.metrics.ItinerariesGeneratedTotal.Add(ctx, 1, attrs)
		s.metrics.GenerationDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	}

	if s.enhancer != nil {
		if insights, err := s.enhancer.EnhanceInsights(ctx, itinerary, prefs); err != nil {
			l.WarnContext(ctx, "Insight enhancement failed, keeping template insights", slog.Any("error", err))
		} else {
			itinerary.Insights = *insights
		}
	}

	if s.cache != nil {
		s.cache.SetItinerary(ctx, key, itinerary, s.cacheTTL)
	}

	if s.storeResults && s.repo != nil {
		if err := s.repo.SaveItinerary(ctx, s.toSavedItinerary(userID, itinerary, prefs)); err != nil {
			l.WarnContext(ctx, "Failed to persist generated itinerary", slog.Any("error", err))
			span.RecordError(err)
		}
	}

	l.InfoContext(ctx, "Itinerary generated successfully",
		slog.String("itineraryID", itinerary.ID),
		slog.Int("days", len(itinerary.Days)))
	span.SetAttributes(attribute.String("itinerary.id", itinerary.ID))
	span.SetStatus(codes.Ok, "Itinerary generated")
	return itinerary, nil
}

func (s *ServiceImpl) toSavedItinerary(userID string, itinerary *types.Itinerary, prefs types.TripPreferences) types.SavedItinerary {
	id, err := uuid.Parse(itinerary.ID)
	if err != nil {
		id = uuid.New()
	}

	var startDate, endDate string
	if len(itinerary.Days) > 0 {
		startDate = itinerary.Days[0].Date
		endDate = itinerary.Days[len(itinerary.Days)-1].Date
	}

	now := time.Now().UTC()
	return types.SavedItinerary{
		ID:                   id,
		UserID:               userID,
		Title:                itinerary.Title,
		Destination:          itinerary.Destination,
		StartDate:            startDate,
		EndDate:              endDate,
		DurationDays:         itinerary.Duration,
		TravelStyle:          string(prefs.TravelStyle),
		Payload:              itinerary,
		TotalCost:            itinerary.TotalCost,
		PersonalizationScore: itinerary.PersonalizationScore,
		Status:               "planned",
		CreatedAt:            now,
		UpdatedAt:            now,
		LastAccessed:         now,
	}
}

// GetItineraries returns a page of the user's saved itineraries.
func (s *ServiceImpl) GetItineraries(ctx context.Context, userID string, page, pageSize int, status string) (*types.PaginatedItinerariesResponse, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GetItineraries", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.Int("page", page),
		attribute.Int("page_size", pageSize),
	))
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	resp, err := s.repo.ListItineraries(ctx, userID, page, pageSize, status)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list itineraries",
			slog.String("userID", userID), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list itineraries")
		return nil, err
	}

	span.SetStatus(codes.Ok, "Itineraries listed")
	return resp, nil
}

// GetItinerary returns one saved itinerary and records the access.
func (s *ServiceImpl) GetItinerary(ctx context.Context, userID string, id uuid.UUID) (*types.SavedItinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GetItinerary", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("itinerary.id", id.String()),
	))
	defer span.End()

	saved, err := s.repo.GetItinerary(ctx, userID, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to get itinerary")
		return nil, err
	}

	if err := s.repo.TouchAccess(ctx, userID, id); err != nil {
		s.logger.WarnContext(ctx, "Failed to record itinerary access",
			slog.String("itineraryID", id.String()), slog.Any("error", err))
	}

	span.SetStatus(codes.Ok, "Itinerary fetched")
	return saved, nil
}

// UpdateItinerary patches the mutable metadata of a saved itinerary.
func (s *ServiceImpl) UpdateItinerary(ctx context.Context, userID string, id uuid.UUID, params types.UpdateItineraryRequest) (*types.SavedItinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "UpdateItinerary", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("itinerary.id", id.String()),
	))
	defer span.End()

	if params.Status != nil && !validStatus(*params.Status) {
		err := fmt.Errorf("%w: status must be one of planned, active, completed, cancelled",
			types.ErrInvalidPreference)
		span.SetStatus(codes.Error, "Invalid status")
		return nil, err
	}

	saved, err := s.repo.UpdateItinerary(ctx, userID, id, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update itinerary")
		return nil, err
	}

	s.logger.InfoContext(ctx, "Itinerary updated", slog.String("itineraryID", id.String()))
	span.SetStatus(codes.Ok, "Itinerary updated")
	return saved, nil
}

// DeleteItinerary removes a saved itinerary.
func (s *ServiceImpl) DeleteItinerary(ctx context.Context, userID string, id uuid.UUID) error {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "DeleteItinerary", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("itinerary.id", id.String()),
	))
	defer span.End()

	if err := s.repo.DeleteItinerary(ctx, userID, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete itinerary")
		return err
	}

	s.logger.InfoContext(ctx, "Itinerary deleted", slog.String("itineraryID", id.String()))
	span.SetStatus(codes.Ok, "Itinerary deleted")
	return nil
}

func validStatus(status string) bool {
	switch status {
	case "planned", "active", "completed", "cancelled":
		return true
	}
	return false
}
