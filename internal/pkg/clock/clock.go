// Package clock abstracts the current time so slot validation, refund
// tiers and loyalty accrual can be tested against a fixed instant.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock reports wall-clock time in UTC, the zone slot dates and
// times are stored in.
type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a settable clock for tests.
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

func (c *MockClock) Advance(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
