package components

import (
	"acara-api/internal/infra/cache"
	"acara-api/internal/infra/readstore"
	sqlc "acara-api/internal/infra/sqlc/generated"
	"acara-api/internal/infra/uow"
	"acara-api/internal/pkg/config"
	"acara-api/internal/usecase/commands"
	"acara-api/internal/usecase/queries"
	"acara-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	fx.Annotate(
		uow.NewPostgresUoW,
		fx.As(new(shared.UnitOfWork)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		readstore.NewOrderReadStore,
		readstore.NewEventReadStore,
		readstore.NewBannerReadStore,
		readstore.NewCategoryReadStore,
		readstore.NewUserReadStore,
		fx.Annotate(
			func(rs *readstore.OrderReadStore) *readstore.OrderReadStore { return rs },
			fx.As(new(queries.OrderViewRepo)),
		),
		fx.Annotate(
			func(rs *readstore.CategoryReadStore) *readstore.CategoryReadStore { return rs },
			fx.As(new(queries.CategoryViewRepo)),
		),
		fx.Annotate(
			func(rs *readstore.UserReadStore) *readstore.UserReadStore { return rs },
			fx.As(new(queries.UserViewRepo)),
		),
	),
)

// Event and banner view repos go through the redis cache decorators; the
// plain read stores stay private to this module.
var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		NewCatalogCache,
		fx.Annotate(
			func(rs *readstore.EventReadStore, c *cache.CatalogCache) *cache.CachedEventRepo {
				return cache.NewCachedEventRepo(rs, c)
			},
			fx.As(new(queries.EventViewRepo)),
		),
		fx.Annotate(
			func(rs *readstore.BannerReadStore, c *cache.CatalogCache) *cache.CachedBannerRepo {
				return cache.NewCachedBannerRepo(rs, c)
			},
			fx.As(new(queries.BannerViewRepo)),
		),
		func(c *cache.CatalogCache) commands.CatalogInvalidator { return c },
	),
)

func NewCatalogCache(client *redis.Client, cfg config.Config) *cache.CatalogCache {
	return cache.NewCatalogCache(client, cfg.Redis.CacheTTL)
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
