// Package clock abstracts wall-clock reads so time-sensitive rules
// (preparation lead time, past-slot filtering) can be pinned in tests.
package clock

import "time"

// Clock is injected wherever the engine needs "now". Production code gets
// RealClock; tests drive a MockClock to a fixed instant.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a programmable instant.
type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
