package clock

import "time"

// Mock is a controllable Clock for tests.
type Mock struct {
	current time.Time
}

// NewMock creates a mock clock starting at the given time.
func NewMock(start time.Time) *Mock {
	return &Mock{current: start}
}

// Now returns the current mocked time.
func (m *Mock) Now() time.Time {
	return m.current
}

// Set sets the current time.
func (m *Mock) Set(t time.Time) {
	m.current = t
}

// Advance moves the clock forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
