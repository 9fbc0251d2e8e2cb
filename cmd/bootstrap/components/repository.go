package components

import (
	"website-rentals/internal/infra"
	"website-rentals/internal/infra/readstore"
	"website-rentals/internal/infra/repository"
	"website-rentals/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewTransactor,
		readstore.NewProductReadStore,
		readstore.NewInventoryReadStore,
		readstore.NewReservationReadStore,
		repository.NewOrderRepository,
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}

func NewTransactor(pool *pgxpool.Pool) commands.Transactor {
	return pool
}
