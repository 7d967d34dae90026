package booking

import "github.com/google/uuid"

// Bus topics for booking lifecycle events. Subscribers receive the payload
// structs below; publication happens in the command layer after a successful
// store write.
const (
	TopicCreated = "booking.created"
	TopicDeleted = "booking.deleted"
)

type CreatedEvent struct {
	BookingID uuid.UUID
	VenueID   string
	Dates     DateRange
}

type DeletedEvent struct {
	BookingID uuid.UUID
	VenueID   string
}
