// Package timeutil normalizes the heterogeneous date inputs the rental
// engine receives (date strings, datetime strings, time.Time values) into a
// canonical naive representation, and provides the interval and clock-time
// arithmetic the scheduling code is built on.
//
// "Naive" means the wall-clock fields of a moment with the zone discarded.
// All naive values are materialized in time.UTC so that time.Time comparisons
// behave like plain wall-clock comparisons.
package timeutil

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidInput = errors.New("value is not a recognized date or datetime")

// Layouts accepted by ParseInstant, most specific first.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseInstant converts a time.Time or a textual date/datetime into a naive
// instant. A date-only string maps to midnight of that date. Zone offsets in
// the input are stripped, not converted: "2021-09-10T15:00:00+09:00" parses
// to 15:00 naive.
func ParseInstant(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return Naive(v), nil
	case string:
		for _, layout := range parseLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return Naive(t), nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidInput, v)
	default:
		return time.Time{}, fmt.Errorf("%w: %T", ErrInvalidInput, value)
	}
}

// Naive strips the zone from t, keeping its wall-clock fields.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// NaiveIn converts t to loc and strips the zone, yielding the local
// wall-clock reading of the instant. A nil loc leaves the zone as stored.
func NaiveIn(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return Naive(t)
	}
	return Naive(t.In(loc))
}

// ClockFromFloat truncates a fractional hour into clock components:
// 6.5 -> (6, 30), 7.75 -> (7, 45).
func ClockFromFloat(f float64) (hours, minutes int) {
	hours = int(f)
	minutes = int(60 * (f - float64(hours)))
	return hours, minutes
}

// FormatClock renders a fractional hour as a zero-padded HH:MM string.
func FormatClock(f float64) string {
	h, m := ClockFromFloat(f)
	return fmt.Sprintf("%02d:%02d", h, m)
}

// WithClock returns date with its hour and minute replaced by the clock
// reading of the fractional hour f. Seconds are preserved.
func WithClock(date time.Time, f float64) time.Time {
	h, m := ClockFromFloat(f)
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, date.Second(), date.Nanosecond(), time.UTC)
}

// WithHour returns date with only its hour replaced, truncating f.
func WithHour(date time.Time, f float64) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), int(f), date.Minute(), date.Second(), date.Nanosecond(), time.UTC)
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Overlaps reports whether the closed intervals [aStart, aEnd] and
// [bStart, bEnd] share at least one instant. Boundary touches count.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// rangeEpsilon absorbs accumulated floating point error so a value landing
// on the stop boundary is reliably included.
const rangeEpsilon = 1e-9

// FloatRange produces start, start+step, start+2*step, ... while the value
// is <= stop. The sequence is computed from an integer step count rather
// than repeated accumulation, so the inclusive endpoint behavior does not
// depend on rounding drift.
func FloatRange(start, stop, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	var res []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > stop+rangeEpsilon {
			break
		}
		res = append(res, v)
	}
	return res
}
