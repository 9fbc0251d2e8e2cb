package repository

import (
	"context"

	"website-rentals/internal/domain/order"
	"website-rentals/internal/domain/schedule"
	"website-rentals/internal/infra"
	"website-rentals/internal/pkg/pgconv"
	"website-rentals/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type orderRepository struct{}

func NewOrderRepository() commands.OrderRepository {
	return &orderRepository{}
}

const findOrderForUpdateQuery = `
SELECT id, user_id, status
FROM rental_orders
WHERE id = $1
FOR UPDATE
`

const listOrderLinesQuery = `
SELECT id, product_id, quantity, is_rental, pickup_date, return_date
FROM rental_order_lines
WHERE order_id = $1
ORDER BY id
`

const updateOrderStatusQuery = `
UPDATE rental_orders
SET status = $2, updated_at = now()
WHERE id = $1
`

const insertScheduleEntryQuery = `
INSERT INTO rental_schedule (id, order_line_id, product_id, pickup_date, return_date, quantity, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// FindByIDForUpdate loads the order and its lines, locking the order row so
// concurrent confirmations of the same order serialize.
func (r *orderRepository) FindByIDForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*order.Order, error) {
	var (
		orderID uuid.UUID
		userID  uuid.UUID
		status  string
	)
	row := tx.QueryRow(ctx, findOrderForUpdateQuery, id)
	if err := row.Scan(&orderID, &userID, &status); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	lines, err := r.listLines(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	o, err := order.Reconstruct(orderID, userID, order.Status(status), lines)
	if err != nil {
		return nil, infra.WrapRepoErr("stored order is invalid", err)
	}
	return o, nil
}

func (r *orderRepository) listLines(ctx context.Context, tx infra.DBTX, orderID uuid.UUID) ([]order.Line, error) {
	rows, err := tx.Query(ctx, listOrderLinesQuery, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}
	defer rows.Close()

	var lines []order.Line
	for rows.Next() {
		var (
			line     order.Line
			qty      pgtype.Numeric
			pickup   pgtype.Timestamptz
			returned pgtype.Timestamptz
		)
		if err := rows.Scan(&line.ID, &line.ProductID, &qty, &line.IsRental, &pickup, &returned); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line", err)
		}
		line.PickupDate = pgconv.TimeFromPgtype(pickup)
		line.ReturnDate = pgconv.TimeFromPgtype(returned)

		quantity, err := pgconv.Float64FromNumeric(qty)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid line quantity", err)
		}
		line.Quantity = quantity

		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order lines", err)
	}
	return lines, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, tx infra.DBTX, id uuid.UUID, status order.Status) error {
	tag, err := tx.Exec(ctx, updateOrderStatusQuery, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// CreateScheduleEntries materializes one reserved schedule row per rental
// line. A database exclusion constraint on overbooked windows surfaces here
// as a conflict.
func (r *orderRepository) CreateScheduleEntries(ctx context.Context, tx infra.DBTX, o *order.Order) error {
	for _, line := range o.RentalLines() {
		_, err := tx.Exec(ctx, insertScheduleEntryQuery,
			uuid.New(),
			line.ID,
			line.ProductID,
			pgconv.TimeToPgtype(line.PickupDate),
			pgconv.TimeToPgtype(line.ReturnDate),
			line.Quantity,
			string(schedule.StatusReserved),
		)
		if err != nil {
			if isUniqueOrExclusionViolation(err) {
				return infra.WrapRepoErr("rental window no longer available", err, infra.KindConflict)
			}
			return infra.WrapRepoErr("failed to create schedule entry", err)
		}
	}
	return nil
}
