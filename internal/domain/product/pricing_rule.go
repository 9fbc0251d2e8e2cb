package product

import (
	"errors"

	"website-rentals/internal/pkg/timeutil"

	"github.com/google/uuid"
)

var (
	ErrInvalidRuleTimeRange = errors.New("pricing rule start time cannot be greater than its end time")
	ErrInvalidRuleDuration  = errors.New("pricing rule duration must be positive")
	ErrNegativeRulePrice    = errors.New("pricing rule price cannot be negative")
)

// Unit is the billing granularity of a pricing rule.
type Unit string

const (
	UnitHour Unit = "hour"
	UnitDay  Unit = "day"
	UnitWeek Unit = "week"
)

// PricingRule is a duration/unit/price tuple attached to a product. For
// hour-unit rules, StartTime and EndTime bound the bookable operating hours
// as fractional hours (6.5 = 06:30).
type PricingRule struct {
	ID        uuid.UUID
	Duration  float64
	Unit      Unit
	Price     float64
	StartTime float64
	EndTime   float64
}

func (r PricingRule) Validate() error {
	if r.Duration <= 0 {
		return ErrInvalidRuleDuration
	}
	if r.Price < 0 {
		return ErrNegativeRulePrice
	}
	if r.EndTime < r.StartTime {
		return ErrInvalidRuleTimeRange
	}
	return nil
}

// StartHour and friends truncate the fractional bounds into clock components.
func (r PricingRule) StartHour() int    { return int(r.StartTime) }
func (r PricingRule) StartMinutes() int { return int(60 * (r.StartTime - float64(r.StartHour()))) }
func (r PricingRule) EndHour() int      { return int(r.EndTime) }
func (r PricingRule) EndMinutes() int   { return int(60 * (r.EndTime - float64(r.EndHour()))) }

// StartClock and EndClock render the operating bounds as HH:MM labels.
func (r PricingRule) StartClock() string { return timeutil.FormatClock(r.StartTime) }
func (r PricingRule) EndClock() string   { return timeutil.FormatClock(r.EndTime) }
