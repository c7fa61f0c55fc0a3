//go:build unit

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"acara-api/internal/usecase/queries"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEventRepo struct {
	queries.EventViewRepo
	view  *queries.EventView
	err   error
	calls int
}

func (s *stubEventRepo) FindBySlug(_ context.Context, _ string) (*queries.EventView, error) {
	s.calls++
	return s.view, s.err
}

type stubBannerRepo struct {
	queries.BannerViewRepo
	views []*queries.BannerView
	calls int
}

func (s *stubBannerRepo) FindVisible(_ context.Context) ([]*queries.BannerView, error) {
	s.calls++
	return s.views, nil
}

func sampleEventView() *queries.EventView {
	return &queries.EventView{
		ID:          uuid.New(),
		Name:        "Jakarta Jazz Night",
		Slug:        "jakarta-jazz-night",
		IsPublished: true,
	}
}

func TestCachedEventRepo_FindBySlug_CacheHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer mock.ClearExpect()

	view := sampleEventView()
	payload, err := json.Marshal(view)
	require.NoError(t, err)

	mock.ExpectGet("catalog:event:slug:" + view.Slug).SetVal(string(payload))

	inner := &stubEventRepo{}
	repo := NewCachedEventRepo(inner, NewCatalogCache(client, time.Minute))

	got, err := repo.FindBySlug(context.Background(), view.Slug)
	require.NoError(t, err)
	assert.Equal(t, view.ID, got.ID)
	assert.Equal(t, view.Name, got.Name)
	assert.Zero(t, inner.calls, "cache hit must not touch the store")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedEventRepo_FindBySlug_CacheMissPopulates(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer mock.ClearExpect()

	view := sampleEventView()
	payload, err := json.Marshal(view)
	require.NoError(t, err)

	key := "catalog:event:slug:" + view.Slug
	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, payload, time.Minute).SetVal("OK")

	inner := &stubEventRepo{view: view}
	repo := NewCachedEventRepo(inner, NewCatalogCache(client, time.Minute))

	got, err := repo.FindBySlug(context.Background(), view.Slug)
	require.NoError(t, err)
	assert.Equal(t, view.Slug, got.Slug)
	assert.Equal(t, 1, inner.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedEventRepo_FindBySlug_StoreErrorNotCached(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer mock.ClearExpect()

	mock.ExpectGet("catalog:event:slug:missing").RedisNil()

	inner := &stubEventRepo{err: errors.New("boom")}
	repo := NewCachedEventRepo(inner, NewCatalogCache(client, time.Minute))

	_, err := repo.FindBySlug(context.Background(), "missing")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedEventRepo_FindBySlug_RedisDownFallsThrough(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer mock.ClearExpect()

	view := sampleEventView()
	payload, err := json.Marshal(view)
	require.NoError(t, err)

	key := "catalog:event:slug:" + view.Slug
	mock.ExpectGet(key).SetErr(errors.New("connection refused"))
	mock.ExpectSet(key, payload, time.Minute).SetErr(errors.New("connection refused"))

	inner := &stubEventRepo{view: view}
	repo := NewCachedEventRepo(inner, NewCatalogCache(client, time.Minute))

	got, err := repo.FindBySlug(context.Background(), view.Slug)
	require.NoError(t, err)
	assert.Equal(t, view.Slug, got.Slug)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedBannerRepo_FindVisible_CacheMissPopulates(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer mock.ClearExpect()

	views := []*queries.BannerView{
		{ID: uuid.New(), Title: "Main stage", Image: "https://cdn.example.com/a.png", IsShow: true},
	}
	payload, err := json.Marshal(views)
	require.NoError(t, err)

	mock.ExpectGet(visibleBannersKey).RedisNil()
	mock.ExpectSet(visibleBannersKey, payload, time.Minute).SetVal("OK")

	inner := &stubBannerRepo{views: views}
	repo := NewCachedBannerRepo(inner, NewCatalogCache(client, time.Minute))

	got, err := repo.FindVisible(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Main stage", got[0].Title)
	assert.Equal(t, 1, inner.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogCache_Invalidate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer mock.ClearExpect()

	mock.ExpectDel("catalog:event:slug:jakarta-jazz-night").SetVal(1)
	mock.ExpectDel(visibleBannersKey).SetVal(1)

	c := NewCatalogCache(client, time.Minute)
	c.InvalidateEventSlug(context.Background(), "jakarta-jazz-night")
	c.InvalidateVisibleBanners(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}
