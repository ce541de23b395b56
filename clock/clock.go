// Package clock abstracts "what hour is it" behind a minimal capability
// interface so the palette selection is testable without a real-time clock.
package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// HourSource yields the current hour of day (0-23)
type HourSource interface {
	Hour() int
}

// System reads the host real-time clock
type System struct {
	clock clockwork.Clock
}

func NewSystem(c clockwork.Clock) *System {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	return &System{clock: c}
}

func (s *System) Hour() int {
	return s.clock.Now().Hour()
}

// Simulated derives the hour from elapsed run time plus a configured start
// hour, for targets with no trustworthy real-time clock. Behaviorally
// indistinguishable from System for the caller.
type Simulated struct {
	clock     clockwork.Clock
	epoch     time.Time
	startHour int
}

func NewSimulated(c clockwork.Clock, startHour int) *Simulated {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	return &Simulated{
		clock:     c,
		epoch:     c.Now(),
		startHour: ((startHour % 24) + 24) % 24,
	}
}

func (s *Simulated) Hour() int {
	elapsed := int(s.clock.Since(s.epoch) / time.Hour)
	return (s.startHour + elapsed) % 24
}
