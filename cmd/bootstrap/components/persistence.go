package components

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"tarifario/internal/infra/db"
	"tarifario/internal/infra/readstore"
	"tarifario/internal/infra/repository"
	"tarifario/internal/usecase/commands"
	"tarifario/internal/usecase/queries"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// write side
		fx.Annotate(
			repository.NewHotelRepository,
			fx.As(new(commands.HotelRepository)),
		),
		fx.Annotate(
			repository.NewTariffRepository,
			fx.As(new(commands.TariffRepository)),
		),
		fx.Annotate(
			repository.NewSubmissionRepository,
			fx.As(new(commands.SubmissionRepository)),
		),
		repository.NewIdempotencyRepository,
		func(r *repository.IdempotencyRepository) commands.IdempotencyRepository { return r },
		// read side
		fx.Annotate(
			readstore.NewHotelReadStore,
			fx.As(new(queries.HotelReadStore)),
		),
		fx.Annotate(
			readstore.NewTariffReadStore,
			fx.As(new(queries.TariffReadStore)),
		),
	),
	fx.Invoke(StartIdempotencyJanitor),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// StartIdempotencyJanitor sweeps expired idempotency keys hourly so the table
// does not grow without bound.
func StartIdempotencyJanitor(lc fx.Lifecycle, repo *repository.IdempotencyRepository) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(time.Hour)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						count, err := repo.DeleteExpired(ctx)
						if err != nil {
							slog.Warn("idempotency janitor sweep failed", "error", err)
							continue
						}
						if count > 0 {
							slog.Info("idempotency janitor removed expired keys", "count", count)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
