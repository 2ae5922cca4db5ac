package reservation

import (
	"errors"
	"time"
)

var (
	ErrInvalidDuration = errors.New("duration must be between 1 and 1440 minutes")
	ErrZeroStartTime   = errors.New("start time cannot be zero")
)

// MaxDurationMin caps a single reservation at 24 hours.
const MaxDurationMin = 1440

// TimeSlot is a half-open interval [Start, Start+Duration).
// Two slots that merely abut do not overlap.
type TimeSlot struct {
	start       time.Time
	durationMin int
}

func NewTimeSlot(start time.Time, durationMin int) (TimeSlot, error) {
	if start.IsZero() {
		return TimeSlot{}, ErrZeroStartTime
	}
	if durationMin <= 0 || durationMin > MaxDurationMin {
		return TimeSlot{}, ErrInvalidDuration
	}
	return TimeSlot{start: start.UTC(), durationMin: durationMin}, nil
}

func (t TimeSlot) Start() time.Time {
	return t.start
}

func (t TimeSlot) DurationMin() int {
	return t.durationMin
}

func (t TimeSlot) End() time.Time {
	return t.start.Add(time.Duration(t.durationMin) * time.Minute)
}

// Overlaps reports whether the two half-open intervals intersect.
func (t TimeSlot) Overlaps(other TimeSlot) bool {
	return t.start.Before(other.End()) && other.start.Before(t.End())
}
