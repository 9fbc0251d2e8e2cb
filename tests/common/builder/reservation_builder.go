//go:build unit || e2e

package builder

import (
	"time"

	"website-rentals/internal/domain/schedule"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	OrderLineID uuid.UUID
	ProductID   uuid.UUID
	PickupDate  time.Time
	ReturnDate  time.Time
	Quantity    float64
	Status      schedule.Status
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          uuid.New(),
		OrderLineID: uuid.New(),
		ProductID:   uuid.New(),
		PickupDate:  time.Date(2021, 9, 10, 8, 0, 0, 0, time.UTC),
		ReturnDate:  time.Date(2021, 9, 10, 12, 0, 0, 0, time.UTC),
		Quantity:    1,
		Status:      schedule.StatusReserved,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Build() schedule.Reservation {
	return schedule.Reservation{
		ID:          b.ID,
		OrderLineID: b.OrderLineID,
		ProductID:   b.ProductID,
		PickupDate:  b.PickupDate,
		ReturnDate:  b.ReturnDate,
		Quantity:    b.Quantity,
		Status:      b.Status,
	}
}
