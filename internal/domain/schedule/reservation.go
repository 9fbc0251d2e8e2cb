// Package schedule holds the reservation records the availability engine
// reads. Reservations are materialized from confirmed order lines; the
// engine never mutates them.
package schedule

import (
	"time"

	"website-rentals/internal/pkg/timeutil"

	"github.com/google/uuid"
)

type Status string

const (
	StatusReserved  Status = "reserved"
	StatusPickedUp  Status = "picked_up"
	StatusReturned  Status = "returned"
	StatusCancelled Status = "cancelled"
)

// ConsumesCapacity reports whether a reservation in this status counts
// against available stock. Returned and cancelled lines free their units.
func (s Status) ConsumesCapacity() bool {
	return s == StatusReserved || s == StatusPickedUp
}

// Reservation is a confirmed order line seen as a schedule entry.
// PickupDate and ReturnDate are stored with zone information; callers
// normalize them before comparing against naive rule-hour instants.
type Reservation struct {
	ID          uuid.UUID
	OrderLineID uuid.UUID
	ProductID   uuid.UUID
	PickupDate  time.Time
	ReturnDate  time.Time
	Quantity    float64
	Status      Status
}

// OverlapsWindow tests the reservation's pickup/return interval against a
// query window, boundary-inclusive on both ends.
func (r Reservation) OverlapsWindow(start, stop time.Time) bool {
	return timeutil.Overlaps(start, stop, timeutil.Naive(r.PickupDate), timeutil.Naive(r.ReturnDate))
}
