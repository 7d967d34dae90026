package booking

import (
	"time"

	"holidaze-booking/internal/domain/venue"
)

// CheckAvailability decides whether a proposed reservation may proceed. It is
// a pure decision function: no store, no network, no side effects.
//
// Order of checks mirrors user intent: an unusable range is reported before a
// guest-count problem, and a conflict only when the request itself is sound.
func CheckAvailability(idx AvailabilityIndex, start, end time.Time, guests int, v venue.Venue) (DateRange, error) {
	proposed, err := NewDateRange(start, end)
	if err != nil {
		return DateRange{}, err
	}

	if guests < 1 || guests > v.MaxGuests {
		return DateRange{}, ErrGuestCountExceeded
	}

	for _, r := range idx.ranges {
		if proposed.Overlaps(r) {
			return DateRange{}, ErrDateConflict
		}
	}

	return proposed, nil
}
