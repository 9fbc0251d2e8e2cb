package readstore

import (
	"context"
	"time"

	"website-rentals/internal/domain/schedule"
	"website-rentals/internal/infra"
	"website-rentals/internal/pkg/pgconv"
	"website-rentals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type reservationReadStore struct {
	db infra.DBTX
}

func NewReservationReadStore(db infra.DBTX) queries.ReservationReadStore {
	return &reservationReadStore{db: db}
}

var activeStatuses = []string{
	string(schedule.StatusReserved),
	string(schedule.StatusPickedUp),
}

const activeByProductsQuery = `
SELECT id, order_line_id, product_id, pickup_date, return_date, quantity, status
FROM rental_schedule
WHERE product_id = ANY($1) AND status = ANY($2)
ORDER BY pickup_date
`

const activeTouchingWindowQuery = `
SELECT id, order_line_id, product_id, pickup_date, return_date, quantity, status
FROM rental_schedule
WHERE product_id = ANY($1)
  AND status = ANY($2)
  AND ((pickup_date BETWEEN $3 AND $4) OR (return_date BETWEEN $3 AND $4))
ORDER BY pickup_date
`

func (s *reservationReadStore) ActiveByProducts(ctx context.Context, productIDs []uuid.UUID) ([]schedule.Reservation, error) {
	rows, err := s.db.Query(ctx, activeByProductsQuery, productIDs, activeStatuses)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return scanReservations(rows)
}

func (s *reservationReadStore) ActiveTouchingWindow(ctx context.Context, productIDs []uuid.UUID, from, to time.Time) ([]schedule.Reservation, error) {
	rows, err := s.db.Query(ctx, activeTouchingWindowQuery, productIDs, activeStatuses, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations in window", err)
	}
	return scanReservations(rows)
}

func scanReservations(rows pgx.Rows) ([]schedule.Reservation, error) {
	defer rows.Close()

	var reservations []schedule.Reservation
	for rows.Next() {
		var (
			r        schedule.Reservation
			qty      pgtype.Numeric
			status   string
			pickup   pgtype.Timestamptz
			returned pgtype.Timestamptz
		)
		if err := rows.Scan(&r.ID, &r.OrderLineID, &r.ProductID, &pickup, &returned, &qty, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		r.PickupDate = pgconv.TimeFromPgtype(pickup)
		r.ReturnDate = pgconv.TimeFromPgtype(returned)
		r.Status = schedule.Status(status)

		quantity, err := pgconv.Float64FromNumeric(qty)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid reservation quantity", err)
		}
		r.Quantity = quantity

		reservations = append(reservations, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservations", err)
	}
	return reservations, nil
}
