package queries

import (
	"context"
	"time"

	"website-rentals/internal/domain/product"
	"website-rentals/internal/domain/schedule"

	"github.com/google/uuid"
)

// ProductView is the read-side projection the scheduling engine works on:
// rental flags, preparation time, family pooling and pricing rules, plus
// the ids of every variant sharing the family's inventory.
type ProductView struct {
	ID              uuid.UUID                    `json:"id"`
	Name            string                       `json:"name"`
	Description     *string                      `json:"description,omitempty"`
	Kind            product.Kind                 `json:"kind"`
	Rentable        bool                         `json:"rentable"`
	PreparationTime float64                      `json:"preparation_time"`
	FamilyID        uuid.UUID                    `json:"family_id"`
	Strategy        product.AvailabilityStrategy `json:"strategy"`
	VariantIDs      []uuid.UUID                  `json:"variant_ids"`
	PricingRules    []product.PricingRule        `json:"pricing_rules"`
}

// ScopeIDs resolves which product ids participate in an availability
// computation: the whole family when pooling is enabled, else just this
// variant.
func (v *ProductView) ScopeIDs() []uuid.UUID {
	if v.Strategy.IsPooled() && len(v.VariantIDs) > 0 {
		return v.VariantIDs
	}
	return []uuid.UUID{v.ID}
}

// InventorySnapshot is the current stock picture for a product or a pooled
// family. It reflects stock now, not at the queried window; the engine
// treats it as the best available estimate for any future window.
type InventorySnapshot struct {
	OnHand float64 `json:"on_hand"`
	InRent float64 `json:"in_rent"`
}

// TotalUnits is the capacity ceiling: units on the shelf plus units
// currently out with customers.
func (s InventorySnapshot) TotalUnits() float64 {
	return s.OnHand + s.InRent
}

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type InventoryReadStore interface {
	// Snapshot sums stock quantities over the given product ids.
	Snapshot(ctx context.Context, productIDs []uuid.UUID) (InventorySnapshot, error)
}

type ReservationReadStore interface {
	// ActiveByProducts returns every capacity-consuming reservation for the
	// given product ids.
	ActiveByProducts(ctx context.Context, productIDs []uuid.UUID) ([]schedule.Reservation, error)
	// ActiveTouchingWindow narrows to reservations whose pickup or return
	// falls inside [from, to].
	ActiveTouchingWindow(ctx context.Context, productIDs []uuid.UUID, from, to time.Time) ([]schedule.Reservation, error)
}
