// Package clock supplies the simulation's time source. Cooldowns and grace
// periods are timestamp comparisons against a Clock, so tests can drive them
// with a mock instead of sleeping.
package clock

import "time"

// Clock provides the current time to the simulation.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by the wall clock.
type System struct{}

// NewSystem creates a wall-clock time source.
func NewSystem() *System {
	return &System{}
}

// Now returns the current time with a monotonic clock reading.
func (*System) Now() time.Time {
	return time.Now()
}
