package queries

import (
	"context"
	"time"

	"website-rentals/internal/domain/product"
	"website-rentals/internal/domain/schedule"
	"website-rentals/internal/infra"
	"website-rentals/internal/pkg/clock"
	"website-rentals/internal/pkg/errs"
	"website-rentals/internal/pkg/timeutil"

	"github.com/google/uuid"
)

// TimeslotRequest describes a timeslot enumeration query. Stop defaults to
// Start (same-day rental) when nil. Timezone is the wall clock in which
// stored reservation timestamps are read before being compared against the
// naive rule-hour instants; nil keeps them as stored.
type TimeslotRequest struct {
	ProductID    uuid.UUID
	Start        time.Time
	Stop         *time.Time
	Quantity     float64
	IncludeStart bool
	IncludeStop  bool
	Timezone     *time.Location
}

// TimeslotsView holds the bookable hourly pickup and return clock times,
// formatted HH:MM in ascending order. A nil view means hourly slots are not
// offered for the product (no hour-unit pricing rule, or nothing bookable
// before pruning). Sides the caller did not request stay nil; a requested
// side with nothing bookable is an empty slice.
type TimeslotsView struct {
	Start []string `json:"start"`
	Stop  []string `json:"stop"`
}

type TimeslotQueries interface {
	GetHourlyTimeslots(ctx context.Context, req TimeslotRequest) (*TimeslotsView, error)
}

type timeslotQueriesImpl struct {
	products     ProductReadStore
	inventory    InventoryReadStore
	reservations ReservationReadStore
	clock        clock.Clock
}

func NewTimeslotQueries(
	products ProductReadStore,
	inventory InventoryReadStore,
	reservations ReservationReadStore,
	clock clock.Clock,
) TimeslotQueries {
	return &timeslotQueriesImpl{
		products:     products,
		inventory:    inventory,
		reservations: reservations,
		clock:        clock,
	}
}

// reservationWindow carries a reservation's pickup/return pair in two
// readings: raw naive (as stored) for the coarse multi-day overlap count,
// and caller-timezone naive for the per-candidate pruning comparisons.
type reservationWindow struct {
	rawPickup, rawReturn time.Time
	pickup, ret          time.Time
}

func (q *timeslotQueriesImpl) GetHourlyTimeslots(ctx context.Context, req TimeslotRequest) (*TimeslotsView, error) {
	pv, err := q.products.FindByID(ctx, req.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	rule, err := product.ShortestHourRule(pv.PricingRules)
	if err != nil {
		// Hourly slots are simply not offered for this product.
		return nil, nil
	}

	scope := pv.ScopeIDs()
	snapshot, err := q.inventory.Snapshot(ctx, scope)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	totalUnits := snapshot.TotalUnits()

	start := timeutil.Naive(req.Start)
	stop := start
	if req.Stop != nil {
		stop = timeutil.Naive(*req.Stop)
	}
	sameDay := timeutil.SameDay(start, stop)
	now := timeutil.Naive(q.clock.Now())

	startTimes := startCandidates(rule, pv.PreparationTime, start, sameDay, now)
	if len(startTimes) == 0 {
		return nil, nil
	}
	stopTimes := stopCandidates(rule, stop, sameDay, startTimes[0], now)
	if len(stopTimes) == 0 {
		return nil, nil
	}

	reservations, err := q.reservations.ActiveTouchingWindow(ctx, scope, start, stop.AddDate(0, 0, 1))
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	windows := toWindows(reservations, req.Timezone)

	// Multi-day rentals: when too many reservations already sit strictly
	// inside the span, no slot combination can work and everything clears.
	if !sameDay && spanExhausted(windows, start, stop, req, totalUnits) {
		return requestedViews(req, nil, nil), nil
	}

	stopTimes = pruneStopTimes(stopTimes, windows, start, stop, sameDay, req, totalUnits)
	startTimes = pruneStartTimes(startTimes, windows, start, stop, sameDay, req, totalUnits)

	// A slot is only meaningful as a paired option: when both views were
	// requested and either side emptied out, clear both.
	if req.IncludeStart && req.IncludeStop {
		if len(startTimes) == 0 || len(stopTimes) == 0 {
			startTimes = nil
			stopTimes = nil
		}
	}

	return requestedViews(req, startTimes, stopTimes), nil
}

// requestedViews formats only the sides the caller asked for; the other side
// stays nil.
func requestedViews(req TimeslotRequest, startTimes, stopTimes []float64) *TimeslotsView {
	view := &TimeslotsView{}
	if req.IncludeStart {
		view.Start = formatTimes(startTimes)
	}
	if req.IncludeStop {
		view.Stop = formatTimes(stopTimes)
	}
	return view
}

// startCandidates enumerates pickup clock times inside the rule's operating
// hours. Same-day rentals step by the rule duration so every start leaves
// room for a full billing period; multi-day rentals step hourly. Candidates
// already in the past or inside the preparation window are dropped.
func startCandidates(rule product.PricingRule, prepHours float64, date time.Time, sameDay bool, now time.Time) []float64 {
	step := 1.0
	if sameDay {
		step = rule.Duration
	}

	cutoff := now
	if prepHours > 0 {
		cutoff = now.Add(hoursToDuration(prepHours))
	}

	var kept []float64
	for _, t := range timeutil.FloatRange(rule.StartTime, rule.EndTime, step) {
		instant := timeutil.WithClock(date, t)
		if instant.Before(cutoff) || instant.Before(now) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// stopCandidates enumerates hourly return clock times. Same-day rentals
// start counting one billing period after the first available pickup.
func stopCandidates(rule product.PricingRule, date time.Time, sameDay bool, firstStart float64, now time.Time) []float64 {
	base := rule.StartTime
	if sameDay {
		base = firstStart + rule.Duration
	}

	var kept []float64
	for _, t := range timeutil.FloatRange(base, rule.EndTime, 1.0) {
		if timeutil.WithClock(date, t).Before(now) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// spanExhausted counts reservations whose pickup or return falls strictly
// inside the rented span; if that count plus the requested quantity exceeds
// capacity, the whole window is unbookable.
func spanExhausted(windows []reservationWindow, start, stop time.Time, req TimeslotRequest, totalUnits float64) bool {
	lower := start
	if req.IncludeStart {
		lower = start.AddDate(0, 0, 1)
	}

	count := 0
	for _, w := range windows {
		if inHalfOpen(w.rawPickup, lower, stop) || inHalfOpen(w.rawReturn, lower, stop) {
			count++
		}
	}
	return float64(count)+req.Quantity > totalUnits
}

func pruneStopTimes(candidates []float64, windows []reservationWindow, start, stop time.Time, sameDay bool, req TimeslotRequest, totalUnits float64) []float64 {
	var kept []float64
	removeAllFollowing := false

	for _, candidate := range candidates {
		if !sameDay {
			stopInstant := timeutil.WithHour(stop, candidate)
			lower := start
			if req.IncludeStart {
				lower = stop
			}
			count := 0
			for _, w := range windows {
				// Pickup boundary is inclusive on both ends, return is
				// exclusive at the candidate instant.
				if (!w.pickup.Before(lower) && !w.pickup.After(stopInstant)) ||
					(!w.ret.Before(lower) && w.ret.Before(stopInstant)) {
					count++
				}
			}
			if float64(count)+req.Quantity <= totalUnits {
				kept = append(kept, candidate)
			}
			continue
		}

		// Same day: a return at or before the pickup hour is never valid.
		if candidate <= float64(start.Hour()) || removeAllFollowing {
			continue
		}

		count := 0
		for _, w := range windows {
			if hourContains(w, candidate) {
				count++
			}
		}
		if float64(count)+req.Quantity > totalUnits {
			// Once a return hour is full, every later hour of the day is
			// unreachable too when only return slots were asked for.
			if req.IncludeStop && !req.IncludeStart {
				removeAllFollowing = true
			}
			continue
		}
		kept = append(kept, candidate)
	}
	return kept
}

func pruneStartTimes(candidates []float64, windows []reservationWindow, start, stop time.Time, sameDay bool, req TimeslotRequest, totalUnits float64) []float64 {
	var kept []float64

	for _, candidate := range candidates {
		count := 0
		if !sameDay {
			startInstant := timeutil.WithHour(start, candidate)
			for _, w := range windows {
				if (!w.pickup.After(stop) && !w.pickup.Before(startInstant)) ||
					(!w.ret.After(stop) && !w.ret.Before(startInstant)) {
					count++
				}
			}
		} else {
			for _, w := range windows {
				if hourContains(w, candidate) {
					count++
				}
			}
		}
		if float64(count)+req.Quantity <= totalUnits {
			kept = append(kept, candidate)
		}
	}
	return kept
}

// hourContains tests hour-level containment: pickup hour <= candidate <=
// return hour, in the caller's timezone.
func hourContains(w reservationWindow, candidate float64) bool {
	return float64(w.pickup.Hour()) <= candidate && candidate <= float64(w.ret.Hour())
}

// inHalfOpen tests lower <= t < upper.
func inHalfOpen(t, lower, upper time.Time) bool {
	return !t.Before(lower) && t.Before(upper)
}

func toWindows(reservations []schedule.Reservation, tz *time.Location) []reservationWindow {
	windows := make([]reservationWindow, len(reservations))
	for i, r := range reservations {
		windows[i] = reservationWindow{
			rawPickup: timeutil.Naive(r.PickupDate),
			rawReturn: timeutil.Naive(r.ReturnDate),
			pickup:    timeutil.NaiveIn(r.PickupDate, tz),
			ret:       timeutil.NaiveIn(r.ReturnDate, tz),
		}
	}
	return windows
}

func formatTimes(times []float64) []string {
	formatted := make([]string, len(times))
	for i, t := range times {
		formatted[i] = timeutil.FormatClock(t)
	}
	return formatted
}
