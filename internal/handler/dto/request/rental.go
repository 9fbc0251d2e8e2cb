package request

import (
	"time"

	"website-rentals/internal/pkg/timeutil"
	"website-rentals/internal/usecase/queries"

	"github.com/google/uuid"
)

// CheckAvailabilityRequest covers both the can-rent and available-qty
// endpoints. Dates arrive as storefront strings; anything ParseInstant
// accepts is valid (date-only values mean midnight).
type CheckAvailabilityRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
	Quantity  float64   `json:"qty,omitempty"`
}

func (r CheckAvailabilityRequest) Window() (start, stop time.Time, err error) {
	start, err = timeutil.ParseInstant(r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	stop, err = timeutil.ParseInstant(r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, stop, nil
}

// EffectiveQuantity defaults an omitted quantity to a single unit.
func (r CheckAvailabilityRequest) EffectiveQuantity() float64 {
	if r.Quantity <= 0 {
		return 1
	}
	return r.Quantity
}

// TimeslotsRequest asks for the bookable pickup and return times of a day
// or span. Omitting include_start/include_stop requests both sides; the
// flags exist so a storefront widget can refresh one picker at a time.
type TimeslotsRequest struct {
	ProductID    uuid.UUID `json:"product_id" binding:"required"`
	StartDate    string    `json:"start_date" binding:"required"`
	EndDate      *string   `json:"end_date,omitempty"`
	Quantity     float64   `json:"qty,omitempty"`
	IncludeStart *bool     `json:"include_start,omitempty"`
	IncludeStop  *bool     `json:"include_stop,omitempty"`
	Timezone     *string   `json:"timezone,omitempty"`
}

// ToQuery resolves dates and the wall clock for the timeslot engine.
// defaultTZ applies when the request does not name a timezone.
func (r TimeslotsRequest) ToQuery(defaultTZ *time.Location) (queries.TimeslotRequest, error) {
	start, err := timeutil.ParseInstant(r.StartDate)
	if err != nil {
		return queries.TimeslotRequest{}, err
	}

	var stop *time.Time
	if r.EndDate != nil && *r.EndDate != "" {
		parsed, err := timeutil.ParseInstant(*r.EndDate)
		if err != nil {
			return queries.TimeslotRequest{}, err
		}
		stop = &parsed
	}

	tz := defaultTZ
	if r.Timezone != nil && *r.Timezone != "" {
		loc, err := time.LoadLocation(*r.Timezone)
		if err != nil {
			return queries.TimeslotRequest{}, err
		}
		tz = loc
	}

	// An omitted quantity means the caller is only browsing: slots stay
	// bookable as long as existing reservations alone fit the capacity.
	qty := r.Quantity
	if qty < 0 {
		qty = 0
	}

	return queries.TimeslotRequest{
		ProductID:    r.ProductID,
		Start:        start,
		Stop:         stop,
		Quantity:     qty,
		IncludeStart: flagOrTrue(r.IncludeStart),
		IncludeStop:  flagOrTrue(r.IncludeStop),
		Timezone:     tz,
	}, nil
}

func flagOrTrue(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
