package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Venue errors
	ErrVenueNotFound = errors.New("venue not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Access control errors
	ErrVenueAccessDenied = errors.New("caller does not manage this venue")

	// Identity errors
	ErrAuthenticationRequired = errors.New("authentication required")

	// Store errors
	ErrDataCorrupt  = errors.New("stored record corrupt")
	ErrStoreFailure = errors.New("store operation failed")

	// Upstream catalog errors
	ErrUpstreamFailure = errors.New("upstream catalog failure")
	ErrStaleLoad       = errors.New("venue load superseded by a newer request")
)
