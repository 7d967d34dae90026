package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange       = errors.New("invalid date range")
	ErrGuestCountExceeded = errors.New("guest count out of bounds")
	ErrDateConflict       = errors.New("date range conflicts with an existing booking")
)

// DateRange is a whole-day span. Boundaries are normalized so that the start
// sits on the first instant of its calendar day and the end on the last
// instant of its calendar day; inclusion tests are therefore stable no matter
// what time-of-day the inputs carried. Both boundary days count as booked:
// a checkout day equal to another booking's check-in day is a conflict.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange normalizes the boundaries and rejects missing or inverted
// inputs. Day identity is taken from each timestamp's own calendar date.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrInvalidRange
	}
	s := startOfDay(start)
	e := endOfDay(end)
	if e.Before(s) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{start: s, end: e}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

func (r DateRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// Overlaps is the single predicate behind all conflict detection. Ranges are
// closed on both ends, so degenerate single-day ranges work unchanged.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !other.start.After(r.end)
}

// ContainsDay reports whether the given calendar day falls inside the range.
func (r DateRange) ContainsDay(day time.Time) bool {
	d := startOfDay(day)
	return !d.Before(r.start) && !d.After(r.end)
}

// Days enumerates every calendar day of the range, each at midnight. It is a
// display helper for calendar exclusions; conflict checks compare ranges and
// never enumerate.
func (r DateRange) Days() []time.Time {
	if r.IsZero() {
		return nil
	}
	var days []time.Time
	for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Nights is the count of nights between check-in and checkout.
func (r DateRange) Nights() int {
	return NightsBetween(r.start, r.end)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}
