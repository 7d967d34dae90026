package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"holidaze-booking/internal/domain/booking"
	"holidaze-booking/internal/infra"
	"holidaze-booking/internal/infra/store"

	"github.com/google/uuid"
)

const bookingsKey = "bookings"

// BookingRepository is the only component that reads or writes the bookings
// document. Reads skip corrupt records and report how many were skipped;
// writes go through a read-then-write cycle serialized by a process-local
// mutex. Corrupt records survive writes untouched so a bad entry is never
// silently destroyed.
type BookingRepository struct {
	store store.DocumentStore
	mu    sync.Mutex
}

func NewBookingRepository(docs store.DocumentStore) *BookingRepository {
	return &BookingRepository{store: docs}
}

// ListByUser returns the user's bookings in store-insertion order along with
// the count of records skipped as corrupt.
func (r *BookingRepository) ListByUser(ctx context.Context, owner string) ([]*booking.Booking, int, error) {
	records, err := r.loadRaw(ctx)
	if err != nil {
		return nil, 0, err
	}

	var out []*booking.Booking
	skipped := 0
	for _, raw := range records {
		b, ok := decodeStored(raw)
		if !ok {
			skipped++
			continue
		}
		if b.Owner() == owner {
			out = append(out, b)
		}
	}
	return out, skipped, nil
}

// ListByVenue returns the venue's bookings sorted by check-in date
// descending, the order the venue manager's upcoming-bookings view shows.
func (r *BookingRepository) ListByVenue(ctx context.Context, venueID string) ([]*booking.Booking, int, error) {
	records, err := r.loadRaw(ctx)
	if err != nil {
		return nil, 0, err
	}

	var out []*booking.Booking
	skipped := 0
	for _, raw := range records {
		b, ok := decodeStored(raw)
		if !ok {
			skipped++
			continue
		}
		if b.VenueID() == venueID {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Dates().Start().After(out[j].Dates().Start())
	})
	return out, skipped, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.loadRaw(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(bookingToStored(b))
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "encode booking", err)
	}
	records = append(records, raw)

	return r.saveRaw(ctx, records)
}

// Delete removes the booking only when it belongs to owner, returning the
// removed record. A matching id under a different owner is reported as not
// found, never removed.
func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID, owner string) (*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.loadRaw(ctx)
	if err != nil {
		return nil, err
	}

	kept := records[:0]
	var removed *booking.Booking
	for _, raw := range records {
		b, ok := decodeStored(raw)
		if ok && b.ID() == id && b.Owner() == owner {
			removed = b
			continue
		}
		kept = append(kept, raw)
	}
	if removed == nil {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found for owner", nil)
	}

	if err := r.saveRaw(ctx, kept); err != nil {
		return nil, err
	}
	return removed, nil
}

func (r *BookingRepository) loadRaw(ctx context.Context) ([]json.RawMessage, error) {
	doc, err := r.store.Get(ctx, bookingsKey)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "read bookings document", err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(doc, &records); err != nil {
		// the whole document is unreadable, which is worse than one bad
		// record: surface it instead of wiping the store on the next write
		return nil, infra.WrapRepoErr(infra.KindCorrupt, "decode bookings document", err)
	}
	return records, nil
}

func (r *BookingRepository) saveRaw(ctx context.Context, records []json.RawMessage) error {
	doc, err := json.Marshal(records)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "encode bookings document", err)
	}
	if err := r.store.Set(ctx, bookingsKey, doc); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "write bookings document", err)
	}
	return nil
}
