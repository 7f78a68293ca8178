package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/keralatrips/itinerary-api/internal/types"
)

// Store caches generated itineraries keyed by a preference
// fingerprint. Both adapters are best-effort: a cache failure never
// fails the request.
type Store interface {
	GetItinerary(ctx context.Context, key string) (*types.Itinerary, bool)
	SetItinerary(ctx context.Context, key string, itinerary *types.Itinerary, ttl time.Duration)
}

// Fingerprint derives a stable cache key from the planning-relevant
// preference fields. The start date is included because it shifts
// every day's date and weather guidance.
func Fingerprint(prefs types.TripPreferences) string {
	raw := fmt.Sprintf("%s|%d|%.2f|%s|%s|%d|%s",
		prefs.Destination,
		prefs.Duration,
		prefs.Budget,
		strings.Join(prefs.Interests, ","),
		prefs.TravelStyle,
		prefs.GroupSize,
		prefs.StartDate,
	)
	sum := sha256.Sum256([]byte(raw))
	return "itinerary:" + hex.EncodeToString(sum[:])
}

// MemoryStore is the in-process adapter used when redis is not
// configured.
type MemoryStore struct {
	cache *gocache.Cache
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	return &MemoryStore{cache: gocache.New(defaultTTL, 2*defaultTTL)}
}

func (m *MemoryStore) GetItinerary(_ context.Context, key string) (*types.Itinerary, bool) {
	entry, ok := m.cache.Get(key)
	if !ok {
		return nil, false
	}
	itinerary, ok := entry.(*types.Itinerary)
	return itinerary, ok
}

func (m *MemoryStore) SetItinerary(_ context.Context, key string, itinerary *types.Itinerary, ttl time.Duration) {
	m.cache.Set(key, itinerary, ttl)
}

// RedisStore shares cached itineraries across instances.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (r *RedisStore) GetItinerary(ctx context.Context, key string) (*types.Itinerary, bool) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.WarnContext(ctx, "redis get failed", slog.Any("error", err))
		}
		return nil, false
	}

	var itinerary types.Itinerary
	if err := json.Unmarshal(payload, &itinerary); err != nil {
		r.logger.WarnContext(ctx, "cached itinerary is not valid JSON", slog.Any("error", err))
		return nil, false
	}
	return &itinerary, true
}

func (r *RedisStore) SetItinerary(ctx context.Context, key string, itinerary *types.Itinerary, ttl time.Duration) {
	payload, err := json.Marshal(itinerary)
	if err != nil {
		r.logger.WarnContext(ctx, "failed to marshal itinerary for cache", slog.Any("error", err))
		return
	}
	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		r.logger.WarnContext(ctx, "redis set failed", slog.Any("error", err))
	}
}
