package components

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"turfbook/internal/infra"
	"turfbook/internal/infra/readstore"
	"turfbook/internal/infra/slotlock"
	"turfbook/internal/infra/uow"
	"turfbook/internal/pkg/config"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewTurfReadStore,
			fx.As(new(queries.TurfViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
			fx.As(new(queries.OccupancyRepo)),
		),
		fx.Annotate(
			readstore.NewLoyaltyReadStore,
			fx.As(new(queries.LoyaltyViewRepo)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewViewRepo)),
		),
		NewSlotLocker,
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}

func NewSlotLocker(client *redis.Client, cfg config.Config, logger *slog.Logger) commands.SlotLocker {
	return slotlock.NewRedisSlotLocker(client, cfg.Booking, logger)
}
