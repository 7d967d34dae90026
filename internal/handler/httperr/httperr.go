package httperr

import (
	"errors"
	"net/http"

	"holidaze-booking/internal/domain/booking"
	"holidaze-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the JSON error envelope every failing endpoint returns.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// StatusOf maps a usecase error to its HTTP status and client-facing message.
// Unknown errors fall through to 500 so internals never leak.
func StatusOf(err error) (int, string) {
	switch {
	case errors.Is(err, booking.ErrInvalidRange):
		return http.StatusBadRequest, "Invalid date range"
	case errors.Is(err, errs.ErrAuthenticationRequired):
		return http.StatusUnauthorized, "Authentication required"
	case errors.Is(err, errs.ErrVenueAccessDenied):
		return http.StatusForbidden, "You do not manage this venue"
	case errors.Is(err, errs.ErrVenueNotFound):
		return http.StatusNotFound, "Venue not found"
	case errors.Is(err, errs.ErrBookingNotFound):
		return http.StatusNotFound, "Booking not found"
	case errors.Is(err, booking.ErrDateConflict):
		return http.StatusConflict, "Venue is already booked for the selected dates"
	case errors.Is(err, booking.ErrGuestCountExceeded):
		return http.StatusUnprocessableEntity, "Guest count exceeds venue capacity"
	case errors.Is(err, errs.ErrUpstreamFailure):
		return http.StatusBadGateway, "Venue catalog is unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// Abort resolves the status and message from err and writes the envelope.
func Abort(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	AbortWith(c, status, err, msg)
}

// AbortWith writes the envelope with an explicit status and message,
// preserving the original error on the context for logging.
func AbortWith(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWith: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
