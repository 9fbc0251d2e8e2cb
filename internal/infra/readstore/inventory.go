package readstore

import (
	"context"

	"website-rentals/internal/infra"
	"website-rentals/internal/pkg/pgconv"
	"website-rentals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type inventoryReadStore struct {
	db infra.DBTX
}

func NewInventoryReadStore(db infra.DBTX) queries.InventoryReadStore {
	return &inventoryReadStore{db: db}
}

const snapshotInventoryQuery = `
SELECT COALESCE(SUM(qty_on_hand), 0), COALESCE(SUM(qty_in_rent), 0)
FROM stock_levels
WHERE product_id = ANY($1)
`

func (s *inventoryReadStore) Snapshot(ctx context.Context, productIDs []uuid.UUID) (queries.InventorySnapshot, error) {
	var onHand, inRent pgtype.Numeric
	row := s.db.QueryRow(ctx, snapshotInventoryQuery, productIDs)
	if err := row.Scan(&onHand, &inRent); err != nil {
		return queries.InventorySnapshot{}, infra.WrapRepoErr("failed to snapshot inventory", err)
	}

	var snapshot queries.InventorySnapshot
	var err error
	if snapshot.OnHand, err = pgconv.Float64FromNumeric(onHand); err != nil {
		return queries.InventorySnapshot{}, infra.WrapRepoErr("invalid on-hand quantity", err)
	}
	if snapshot.InRent, err = pgconv.Float64FromNumeric(inRent); err != nil {
		return queries.InventorySnapshot{}, infra.WrapRepoErr("invalid in-rent quantity", err)
	}
	return snapshot, nil
}
