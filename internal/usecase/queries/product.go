package queries

import (
	"context"

	"website-rentals/internal/infra"
	"website-rentals/internal/pkg/errs"

	"github.com/google/uuid"
)

// ProductQueries exposes the catalog projection to the storefront.
type ProductQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type productQueriesImpl struct {
	products ProductReadStore
}

func NewProductQueries(products ProductReadStore) ProductQueries {
	return &productQueriesImpl{products: products}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	pv, err := q.products.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return pv, nil
}
