package product

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyProductName    = errors.New("product name cannot be empty")
	ErrNegativePreparation = errors.New("preparation time cannot be negative")
	ErrUnknownKind         = errors.New("unknown product kind")
	ErrUnknownStrategy     = errors.New("unknown availability strategy")
	ErrNoHourlyPricingRule = errors.New("product has no hourly pricing rule")
)

// Kind mirrors the storefront's product types. Only physical goods consume
// rental capacity; services and other kinds are bookable without stock.
type Kind string

const (
	KindPhysical Kind = "physical"
	KindService  Kind = "service"
	KindOther    Kind = "other"
)

func NewKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPhysical, KindService, KindOther:
		return Kind(s), nil
	default:
		return "", ErrUnknownKind
	}
}

func (k Kind) String() string { return string(k) }

// IsPhysical reports whether stock levels constrain bookings of this kind.
func (k Kind) IsPhysical() bool { return k == KindPhysical }

// AvailabilityStrategy controls whether availability is computed against a
// single variant's stock or pooled across every variant of the family.
type AvailabilityStrategy string

const (
	StrategyPerVariant AvailabilityStrategy = "per_variant"
	StrategyPooled     AvailabilityStrategy = "pooled"
)

func NewAvailabilityStrategy(s string) (AvailabilityStrategy, error) {
	switch AvailabilityStrategy(s) {
	case StrategyPerVariant, StrategyPooled:
		return AvailabilityStrategy(s), nil
	default:
		return "", ErrUnknownStrategy
	}
}

func (s AvailabilityStrategy) String() string { return string(s) }

func (s AvailabilityStrategy) IsPooled() bool { return s == StrategyPooled }

type Product struct {
	id              uuid.UUID
	name            string
	kind            Kind
	rentable        bool
	preparationTime float64 // hours of mandatory lead time before pickup
	familyID        uuid.UUID
	strategy        AvailabilityStrategy
	pricingRules    []PricingRule
}

func NewProduct(
	id uuid.UUID,
	name string,
	kind Kind,
	rentable bool,
	preparationTime float64,
	familyID uuid.UUID,
	strategy AvailabilityStrategy,
	rules []PricingRule,
) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProductName
	}
	if preparationTime < 0 {
		return nil, ErrNegativePreparation
	}
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, err
		}
	}

	return &Product{
		id:              id,
		name:            name,
		kind:            kind,
		rentable:        rentable,
		preparationTime: preparationTime,
		familyID:        familyID,
		strategy:        strategy,
		pricingRules:    rules,
	}, nil
}

func (p *Product) ID() uuid.UUID                  { return p.id }
func (p *Product) Name() string                   { return p.name }
func (p *Product) Kind() Kind                     { return p.kind }
func (p *Product) Rentable() bool                 { return p.rentable }
func (p *Product) PreparationTime() float64       { return p.preparationTime }
func (p *Product) FamilyID() uuid.UUID            { return p.familyID }
func (p *Product) Strategy() AvailabilityStrategy { return p.strategy }
func (p *Product) PricingRules() []PricingRule    { return p.pricingRules }

// ShortestHourRule returns the hour-unit pricing rule with the smallest
// duration. That rule sets the granularity and operating hours of the
// hourly timeslot generator.
func (p *Product) ShortestHourRule() (PricingRule, error) {
	return ShortestHourRule(p.pricingRules)
}

// ShortestHourRule is the free-function form used where only the rule set
// is at hand (read-side views).
func ShortestHourRule(rules []PricingRule) (PricingRule, error) {
	var best PricingRule
	found := false
	for _, rule := range rules {
		if rule.Unit != UnitHour {
			continue
		}
		if !found || rule.Duration < best.Duration {
			best = rule
			found = true
		}
	}
	if !found {
		return PricingRule{}, ErrNoHourlyPricingRule
	}
	return best, nil
}
