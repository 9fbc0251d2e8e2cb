package commands

import (
	"context"
	"fmt"
	"time"

	"website-rentals/internal/domain/order"
	"website-rentals/internal/infra"
	"website-rentals/internal/pkg/errs"
	"website-rentals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrOrderNotFound     = errs.New("order not found")
	ErrOrderNotDraft     = errs.New("order is not in draft state")
	ErrLineNotRentable   = errs.New("a rental line cannot be fulfilled for its window")
	ErrScheduleConflict  = errs.New("rental window was booked concurrently")
	ErrTransactionFailed = errs.New("transaction failed")
)

// Transactor starts database transactions. *pgxpool.Pool satisfies it.
type Transactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type OrderRepository interface {
	FindByIDForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, tx infra.DBTX, id uuid.UUID, status order.Status) error
	CreateScheduleEntries(ctx context.Context, tx infra.DBTX, o *order.Order) error
}

// OrderCommands mutates rental orders. Confirmation is the authoritative
// availability decision: quantities are re-checked per product against the
// order's full total before the schedule entries are written.
type OrderCommands interface {
	ConfirmOrder(ctx context.Context, orderID, userID uuid.UUID) error
}

type orderCommandsImpl struct {
	db           Transactor
	orders       OrderRepository
	availability queries.AvailabilityQueries
}

func NewOrderCommands(db Transactor, orders OrderRepository, availability queries.AvailabilityQueries) OrderCommands {
	return &orderCommandsImpl{
		db:           db,
		orders:       orders,
		availability: availability,
	}
}

func (c *orderCommandsImpl) ConfirmOrder(ctx context.Context, orderID, userID uuid.UUID) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrTransactionFailed)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	o, err := c.orders.FindByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Mark(err, ErrTransactionFailed)
	}

	// Orders are only visible to their owner.
	if o.UserID() != userID {
		return ErrOrderNotFound
	}

	if err := o.Confirm(); err != nil {
		return ErrOrderNotDraft
	}

	if err := c.checkRentalLines(ctx, o); err != nil {
		return err
	}

	if err := c.orders.UpdateStatus(ctx, tx, o.ID(), order.StatusConfirmed); err != nil {
		return errs.Mark(err, ErrTransactionFailed)
	}

	if err := c.orders.CreateScheduleEntries(ctx, tx, o); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, ErrScheduleConflict)
		}
		return errs.Mark(err, ErrTransactionFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrTransactionFailed)
	}
	return nil
}

// checkRentalLines re-validates every rental line against the order's total
// quantity per product, so two lines for the same product cannot each pass
// in isolation.
func (c *orderCommandsImpl) checkRentalLines(ctx context.Context, o *order.Order) error {
	checked := make(map[uuid.UUID]struct{})
	for _, line := range o.RentalLines() {
		if _, ok := checked[line.ProductID]; ok {
			continue
		}
		checked[line.ProductID] = struct{}{}

		qty := o.QuantityOrdered(line.ProductID)
		ok, err := c.availability.CanRent(ctx, line.ProductID, line.PickupDate, line.ReturnDate, qty)
		if err != nil {
			return errs.Mark(err, ErrTransactionFailed)
		}
		if !ok {
			detail := errs.New(fmt.Sprintf("product %s unavailable for %s to %s (qty %.0f)",
				line.ProductID, line.PickupDate.Format(time.DateTime), line.ReturnDate.Format(time.DateTime), qty))
			return errs.Mark(detail, ErrLineNotRentable)
		}
	}
	return nil
}
