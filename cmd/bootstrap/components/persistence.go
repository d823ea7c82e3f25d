package components

import (
	"needboard/internal/infra/docstore"
	"needboard/internal/infra/readstore"
	"needboard/internal/infra/repository"
	"needboard/internal/usecase/commands"
	"needboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			NewDocumentStore,
			fx.As(new(docstore.Store)),
		),
		// Write side
		fx.Annotate(
			repository.NewNeedRepository,
			fx.As(new(commands.NeedRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewNeedReadStore,
			fx.As(new(queries.NeedReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

func NewDocumentStore(pool *pgxpool.Pool) *docstore.PostgresStore {
	return docstore.NewPostgresStore(pool)
}
