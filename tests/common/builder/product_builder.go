//go:build unit || e2e

package builder

import (
	"website-rentals/internal/domain/product"
	"website-rentals/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID              uuid.UUID
	Name            string
	Kind            product.Kind
	Rentable        bool
	PreparationTime float64
	FamilyID        uuid.UUID
	Strategy        product.AvailabilityStrategy
	VariantIDs      []uuid.UUID
	PricingRules    []product.PricingRule
}

func NewProductBuilder() *ProductBuilder {
	id := uuid.New()
	return &ProductBuilder{
		ID:              id,
		Name:            "Meeting Room",
		Kind:            product.KindPhysical,
		Rentable:        true,
		PreparationTime: 0,
		FamilyID:        uuid.New(),
		Strategy:        product.StrategyPerVariant,
		VariantIDs:      []uuid.UUID{id},
		PricingRules: []product.PricingRule{
			{
				ID:        uuid.New(),
				Duration:  4,
				Unit:      product.UnitHour,
				Price:     20,
				StartTime: 8,
				EndTime:   18,
			},
		},
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:              b.ID,
		Name:            b.Name,
		Kind:            b.Kind,
		Rentable:        b.Rentable,
		PreparationTime: b.PreparationTime,
		FamilyID:        b.FamilyID,
		Strategy:        b.Strategy,
		VariantIDs:      b.VariantIDs,
		PricingRules:    b.PricingRules,
	}
}
