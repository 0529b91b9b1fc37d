package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/socialive/event-catalog/internal/model"
	"github.com/socialive/event-catalog/internal/query"
)

const (
	eventCacheKeyPrefix = "event:detail:"
	eventCacheTTL       = 5 * time.Minute
)

// CachedEventRepository wraps an EventRepository with Redis caching of
// single-event reads. Listing and search always hit the database; every
// write invalidates the cached record. A cache fault never fails the
// request, it just falls through to the database.
type CachedEventRepository struct {
	repo  EventRepository
	cache *redis.Client
}

// NewCachedEventRepository constructs the caching wrapper.
func NewCachedEventRepository(repo EventRepository, cache *redis.Client) *CachedEventRepository {
	return &CachedEventRepository{repo: repo, cache: cache}
}

func eventCacheKey(eventID int) string {
	return eventCacheKeyPrefix + strconv.Itoa(eventID)
}

func (r *CachedEventRepository) GetByEventID(ctx context.Context, eventID int) (*model.Event, error) {
	key := eventCacheKey(eventID)
	if cached, err := r.cache.Get(ctx, key).Result(); err == nil && cached != "" {
		var e model.Event
		if err := json.Unmarshal([]byte(cached), &e); err == nil {
			return &e, nil
		}
	}

	e, err := r.repo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(e); err == nil {
		r.cache.Set(ctx, key, data, eventCacheTTL)
	}
	return e, nil
}

func (r *CachedEventRepository) Create(ctx context.Context, e *model.Event) error {
	return r.repo.Create(ctx, e)
}

func (r *CachedEventRepository) Replace(ctx context.Context, e *model.Event) (*model.Event, error) {
	updated, err := r.repo.Replace(ctx, e)
	if err != nil {
		return nil, err
	}
	r.cache.Del(ctx, eventCacheKey(e.EventID))
	return updated, nil
}

func (r *CachedEventRepository) Delete(ctx context.Context, eventID int) error {
	if err := r.repo.Delete(ctx, eventID); err != nil {
		return err
	}
	r.cache.Del(ctx, eventCacheKey(eventID))
	return nil
}

func (r *CachedEventRepository) NextEventID(ctx context.Context) (int, error) {
	return r.repo.NextEventID(ctx)
}

func (r *CachedEventRepository) List(ctx context.Context, p query.ListParams, now time.Time) ([]model.Event, int64, error) {
	return r.repo.List(ctx, p, now)
}

func (r *CachedEventRepository) FindByCategories(ctx context.Context, categories []string) ([]model.Event, error) {
	return r.repo.FindByCategories(ctx, categories)
}

func (r *CachedEventRepository) FindByEventIDs(ctx context.Context, eventIDs []int) ([]model.Event, error) {
	return r.repo.FindByEventIDs(ctx, eventIDs)
}
