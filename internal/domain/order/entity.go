package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotDraft           = errors.New("only draft orders can be confirmed")
	ErrNoLines            = errors.New("order has no lines")
	ErrMissingRentalDates = errors.New("rental lines must include a pickup and return date")
	ErrNonPositiveQty     = errors.New("line quantity must be positive")
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Line is a single product position on a rental order. Rental lines carry
// the requested pickup/return window that becomes a schedule entry once the
// order confirms.
type Line struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	Quantity   float64
	IsRental   bool
	PickupDate time.Time
	ReturnDate time.Time
}

func (l Line) validate() error {
	if l.Quantity <= 0 {
		return ErrNonPositiveQty
	}
	if l.IsRental && (l.PickupDate.IsZero() || l.ReturnDate.IsZero()) {
		return ErrMissingRentalDates
	}
	return nil
}

type Order struct {
	id     uuid.UUID
	userID uuid.UUID
	status Status
	lines  []Line
}

func Reconstruct(id, userID uuid.UUID, status Status, lines []Line) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	for _, line := range lines {
		if err := line.validate(); err != nil {
			return nil, err
		}
	}
	return &Order{id: id, userID: userID, status: status, lines: lines}, nil
}

func (o *Order) ID() uuid.UUID     { return o.id }
func (o *Order) UserID() uuid.UUID { return o.userID }
func (o *Order) Status() Status    { return o.status }
func (o *Order) Lines() []Line     { return o.lines }

// RentalLines returns the lines that require an availability check.
func (o *Order) RentalLines() []Line {
	var rentals []Line
	for _, line := range o.lines {
		if line.IsRental {
			rentals = append(rentals, line)
		}
	}
	return rentals
}

// QuantityOrdered sums the rental quantity for one product across every
// line of the order. The availability check runs against this total so two
// lines for the same product cannot each pass individually.
func (o *Order) QuantityOrdered(productID uuid.UUID) float64 {
	var total float64
	for _, line := range o.lines {
		if line.IsRental && line.ProductID == productID {
			total += line.Quantity
		}
	}
	return total
}

func (o *Order) Confirm() error {
	if o.status != StatusDraft {
		return ErrNotDraft
	}
	o.status = StatusConfirmed
	return nil
}
