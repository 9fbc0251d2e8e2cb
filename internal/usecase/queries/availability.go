package queries

import (
	"context"
	"time"

	"website-rentals/internal/infra"
	"website-rentals/internal/pkg/clock"
	"website-rentals/internal/pkg/errs"
	"website-rentals/internal/pkg/timeutil"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrStoreFailure    = errs.New("read store failure")
)

// AvailabilityQueries is the rental availability engine: pure read
// computations over the product, inventory and reservation stores. Results
// are point-in-time estimates; the authoritative check happens inside the
// order confirmation transaction.
type AvailabilityQueries interface {
	// GetAvailableQuantity returns how many units remain bookable for the
	// window, floored at zero.
	GetAvailableQuantity(ctx context.Context, productID uuid.UUID, start, stop time.Time) (float64, error)
	// CanRent decides whether the product can be booked for the window at
	// the requested quantity. Services are always bookable; physical goods
	// need stock and enough preparation lead time.
	CanRent(ctx context.Context, productID uuid.UUID, start, stop time.Time, qty float64) (bool, error)
}

type availabilityQueriesImpl struct {
	products     ProductReadStore
	inventory    InventoryReadStore
	reservations ReservationReadStore
	clock        clock.Clock
}

func NewAvailabilityQueries(
	products ProductReadStore,
	inventory InventoryReadStore,
	reservations ReservationReadStore,
	clock clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		products:     products,
		inventory:    inventory,
		reservations: reservations,
		clock:        clock,
	}
}

func (q *availabilityQueriesImpl) GetAvailableQuantity(ctx context.Context, productID uuid.UUID, start, stop time.Time) (float64, error) {
	pv, err := q.findProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	return q.availableQuantity(ctx, pv, start, stop)
}

func (q *availabilityQueriesImpl) CanRent(ctx context.Context, productID uuid.UUID, start, stop time.Time, qty float64) (bool, error) {
	pv, err := q.findProduct(ctx, productID)
	if err != nil {
		return false, err
	}

	// Non-stockable kinds have no capacity to exhaust.
	if !pv.Kind.IsPhysical() {
		return true, nil
	}

	if !pv.Rentable {
		return false, nil
	}

	available, err := q.availableQuantity(ctx, pv, start, stop)
	if err != nil {
		return false, err
	}
	if available < qty {
		return false, nil
	}

	cutoff := timeutil.Naive(q.clock.Now()).Add(hoursToDuration(pv.PreparationTime))
	return !timeutil.Naive(start).Before(cutoff), nil
}

func (q *availabilityQueriesImpl) availableQuantity(ctx context.Context, pv *ProductView, start, stop time.Time) (float64, error) {
	scope := pv.ScopeIDs()

	snapshot, err := q.inventory.Snapshot(ctx, scope)
	if err != nil {
		return 0, errs.Mark(err, ErrStoreFailure)
	}

	reservations, err := q.reservations.ActiveByProducts(ctx, scope)
	if err != nil {
		return 0, errs.Mark(err, ErrStoreFailure)
	}

	windowStart := timeutil.Naive(start)
	windowStop := timeutil.Naive(stop)

	var reserved float64
	for _, r := range reservations {
		if r.OverlapsWindow(windowStart, windowStop) {
			reserved += r.Quantity
		}
	}

	available := snapshot.TotalUnits() - reserved
	if available < 0 {
		return 0, nil
	}
	return available, nil
}

func (q *availabilityQueriesImpl) findProduct(ctx context.Context, productID uuid.UUID) (*ProductView, error) {
	pv, err := q.products.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return pv, nil
}

func hoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
