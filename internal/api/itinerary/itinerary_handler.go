package itinerary

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/keralatrips/itinerary-api/internal/api"
	"github.com/keralatrips/itinerary-api/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	GenerateItineraryHandler(w http.ResponseWriter, r *http.Request)
	GetItinerariesHandler(w http.ResponseWriter, r *http.Request)
	GetItineraryHandler(w http.ResponseWriter, r *http.Request)
	UpdateItineraryHandler(w http.ResponseWriter, r *http.Request)
	DeleteItineraryHandler(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	logger  *slog.Logger
	service Service
}

func NewHandler(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		logger:  logger,
		service: service,
	}
}

// userIDFromRequest resolves the caller identity. There is no auth
// layer; clients identify themselves with the X-User-ID header and
// anonymous requests share one bucket.
func userIDFromRequest(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return "anonymous"
}

// GenerateItineraryHandler handles POST /itineraries/generate.
func (h *HandlerImpl) GenerateItineraryHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GenerateItinerary")
	defer span.End()
	l := h.logger.With(slog.String("handler", "GenerateItineraryHandler"))

	userID := userIDFromRequest(r)
	span.SetAttributes(attribute.String("user.id", userID))

	var req GenerateItineraryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Bad request")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	prefs, err := req.Validate()
	if err != nil {
		l.WarnContext(ctx, "Invalid trip preferences", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid preferences")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	span.SetAttributes(
		attribute.Int("trip.duration", prefs.Duration),
		attribute.String("trip.travel_style", string(prefs.TravelStyle)),
	)

	itinerary, err := h.service.GenerateItinerary(ctx, userID, prefs)
	if err != nil {
		l.ErrorContext(ctx, "Service failed to generate itinerary", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate itinerary")
		if errors.Is(err, types.ErrInvalidPreference) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate itinerary")
		return
	}

	span.SetAttributes(attribute.String("itinerary.id", itinerary.ID))
	span.SetStatus(codes.Ok, "Itinerary generated")
	api.WriteJSONResponse(w, r, http.StatusOK, itinerary)
}

// GetItinerariesHandler handles GET /itineraries with page, page_size
// and status query parameters.
func (h *HandlerImpl) GetItinerariesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GetItineraries")
	defer span.End()
	l := h.logger.With(slog.String("handler", "GetItinerariesHandler"))

	userID := userIDFromRequest(r)
	span.SetAttributes(attribute.String("user.id", userID))

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	status := r.URL.Query().Get("status")

	resp, err := h.service.GetItineraries(ctx, userID, page, pageSize, status)
	if err != nil {
		l.ErrorContext(ctx, "Service failed to list itineraries", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list itineraries")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list itineraries")
		return
	}

	span.SetStatus(codes.Ok, "Itineraries listed")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// GetItineraryHandler handles GET /itineraries/{itineraryID}.
func (h *HandlerImpl) GetItineraryHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GetItinerary")
	defer span.End()
	l := h.logger.With(slog.String("handler", "GetItineraryHandler"))

	userID := userIDFromRequest(r)
	id, ok := h.itineraryID(w, r, l, span)
	if !ok {
		return
	}

	saved, err := h.service.GetItinerary(ctx, userID, id)
	if err != nil {
		h.writeServiceError(w, r, l, span, err, "Failed to get itinerary")
		return
	}

	span.SetStatus(codes.Ok, "Itinerary fetched")
	api.WriteJSONResponse(w, r, http.StatusOK, saved)
}

// UpdateItineraryHandler handles PUT /itineraries/{itineraryID}.
func (h *HandlerImpl) UpdateItineraryHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "UpdateItinerary")
	defer span.End()
	l := h.logger.With(slog.String("handler", "UpdateItineraryHandler"))

	userID := userIDFromRequest(r)
	id, ok := h.itineraryID(w, r, l, span)
	if !ok {
		return
	}

	var req types.UpdateItineraryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Bad request")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.service.UpdateItinerary(ctx, userID, id, req)
	if err != nil {
		h.writeServiceError(w, r, l, span, err, "Failed to update itinerary")
		return
	}

	span.SetStatus(codes.Ok, "Itinerary updated")
	api.WriteJSONResponse(w, r, http.StatusOK, saved)
}

// DeleteItineraryHandler handles DELETE /itineraries/{itineraryID}.
func (h *HandlerImpl) DeleteItineraryHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "DeleteItinerary")
	defer span.End()
	l := h.logger.With(slog.String("handler", "DeleteItineraryHandler"))

	userID := userIDFromRequest(r)
	id, ok := h.itineraryID(w, r, l, span)
	if !ok {
		return
	}

	if err := h.service.DeleteItinerary(ctx, userID, id); err != nil {
		h.writeServiceError(w, r, l, span, err, "Failed to delete itinerary")
		return
	}

	span.SetStatus(codes.Ok, "Itinerary deleted")
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}

func (h *HandlerImpl) itineraryID(w http.ResponseWriter, r *http.Request, l *slog.Logger, span trace.Span) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "itineraryID")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.WarnContext(r.Context(), "Invalid itinerary ID format", slog.String("itineraryID_str", idStr))
		span.SetStatus(codes.Error, "Invalid itinerary ID format")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid itinerary ID format")
		return uuid.Nil, false
	}
	span.SetAttributes(attribute.String("itinerary.id", id.String()))
	return id, true
}

func (h *HandlerImpl) writeServiceError(w http.ResponseWriter, r *http.Request, l *slog.Logger, span trace.Span, err error, message string) {
	l.ErrorContext(r.Context(), message, slog.Any("error", err))
	span.SetStatus(codes.Error, message)
	switch {
	case errors.Is(err, types.ErrNotFound):
		api.ErrorResponse(w, r, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, types.ErrInvalidPreference):
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
	default:
		api.ErrorResponse(w, r, http.StatusInternalServerError, message)
	}
}
