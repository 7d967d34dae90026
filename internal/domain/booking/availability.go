package booking

import (
	"sort"
	"time"
)

// Span is a raw, unvalidated date pair as it arrives from the store or the
// upstream catalog. BuildIndex turns spans into normalized ranges and skips
// the ones it cannot parse.
type Span struct {
	From time.Time
	To   time.Time
}

// AvailabilityIndex is the set of currently-booked ranges for one venue. It
// is derived state: built when the venue view loads, appended to when a
// booking is confirmed in the same session, and discarded with the view.
type AvailabilityIndex struct {
	ranges []DateRange
}

// BuildIndex normalizes every span into the index. Spans with missing or
// inverted dates are excluded rather than fatal; the skipped count is
// reported to the caller so the condition is visible.
func BuildIndex(spans []Span) (AvailabilityIndex, int) {
	skipped := 0
	ranges := make([]DateRange, 0, len(spans))
	for _, s := range spans {
		r, err := NewDateRange(s.From, s.To)
		if err != nil {
			skipped++
			continue
		}
		ranges = append(ranges, r)
	}
	return AvailabilityIndex{ranges: ranges}, skipped
}

func (idx AvailabilityIndex) IsDayBooked(day time.Time) bool {
	for _, r := range idx.ranges {
		if r.ContainsDay(day) {
			return true
		}
	}
	return false
}

// Append returns a new index including the added range. The receiver is left
// untouched so a view holding the old index never observes the mutation.
func (idx AvailabilityIndex) Append(r DateRange) AvailabilityIndex {
	ranges := make([]DateRange, len(idx.ranges), len(idx.ranges)+1)
	copy(ranges, idx.ranges)
	return AvailabilityIndex{ranges: append(ranges, r)}
}

func (idx AvailabilityIndex) Ranges() []DateRange {
	out := make([]DateRange, len(idx.ranges))
	copy(out, idx.ranges)
	return out
}

func (idx AvailabilityIndex) Len() int {
	return len(idx.ranges)
}

// BookedDays enumerates every booked calendar day across the index, sorted
// and deduplicated. Used to render calendar exclusions.
func (idx AvailabilityIndex) BookedDays() []time.Time {
	seen := make(map[time.Time]struct{})
	var days []time.Time
	for _, r := range idx.ranges {
		for _, d := range r.Days() {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
