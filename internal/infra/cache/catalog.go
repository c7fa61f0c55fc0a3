package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"acara-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const (
	eventSlugKeyPrefix = "catalog:event:slug:"
	visibleBannersKey  = "catalog:banners:visible"
)

// CatalogCache fronts the hot public catalog reads with redis. Cache misses
// and redis failures both fall through to the underlying store; the cache is
// never load-bearing for correctness.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

func (c *CatalogCache) getJSON(ctx context.Context, key string, dst any) bool {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("catalog cache read failed", "key", key, "error", err.Error())
		}
		return false
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		slog.Warn("catalog cache entry corrupt", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (c *CatalogCache) setJSON(ctx context.Context, key string, src any) {
	payload, err := json.Marshal(src)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", "key", key, "error", err.Error())
	}
}

func (c *CatalogCache) InvalidateEventSlug(ctx context.Context, slug string) {
	if err := c.client.Del(ctx, eventSlugKeyPrefix+slug).Err(); err != nil {
		slog.Warn("catalog cache invalidation failed", "slug", slug, "error", err.Error())
	}
}

func (c *CatalogCache) InvalidateVisibleBanners(ctx context.Context) {
	if err := c.client.Del(ctx, visibleBannersKey).Err(); err != nil {
		slog.Warn("catalog cache invalidation failed", "key", visibleBannersKey, "error", err.Error())
	}
}

// CachedEventRepo decorates an event view repo with slug-keyed caching.
// Only the slug lookup is cached; it is the storefront's hottest read.
type CachedEventRepo struct {
	queries.EventViewRepo
	cache *CatalogCache
}

func NewCachedEventRepo(inner queries.EventViewRepo, cache *CatalogCache) *CachedEventRepo {
	return &CachedEventRepo{EventViewRepo: inner, cache: cache}
}

func (r *CachedEventRepo) FindBySlug(ctx context.Context, slug string) (*queries.EventView, error) {
	key := eventSlugKeyPrefix + slug

	var cached queries.EventView
	if r.cache.getJSON(ctx, key, &cached) {
		return &cached, nil
	}

	view, err := r.EventViewRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	r.cache.setJSON(ctx, key, view)
	return view, nil
}

// CachedBannerRepo decorates a banner view repo, caching the public visible
// banner listing.
type CachedBannerRepo struct {
	queries.BannerViewRepo
	cache *CatalogCache
}

func NewCachedBannerRepo(inner queries.BannerViewRepo, cache *CatalogCache) *CachedBannerRepo {
	return &CachedBannerRepo{BannerViewRepo: inner, cache: cache}
}

func (r *CachedBannerRepo) FindVisible(ctx context.Context) ([]*queries.BannerView, error) {
	var cached []*queries.BannerView
	if r.cache.getJSON(ctx, visibleBannersKey, &cached) {
		return cached, nil
	}

	views, err := r.BannerViewRepo.FindVisible(ctx)
	if err != nil {
		return nil, err
	}

	r.cache.setJSON(ctx, visibleBannersKey, views)
	return views, nil
}
