// Package clock supplies the timestamps recorded in rename journals.
package clock

import (
	"sync"
	"time"
)

// Clock tells time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock, in UTC.
type System struct{}

// Now returns the current time in UTC.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Stepped is a deterministic Clock. The first call to Now returns the start
// time and every later call returns the previous time plus step.
type Stepped struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

// NewStepped creates a Stepped clock. A zero step freezes time at start.
func NewStepped(start time.Time, step time.Duration) *Stepped {
	return &Stepped{next: start, step: step}
}

// Now returns the current reading and advances the clock.
func (s *Stepped) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.next
	s.next = s.next.Add(s.step)
	return now
}

// Peek returns the reading the next call to Now will produce.
func (s *Stepped) Peek() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
