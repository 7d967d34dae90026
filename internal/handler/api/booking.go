package api

import (
	"net/http"

	reqdto "holidaze-booking/internal/handler/dto/request"
	resdto "holidaze-booking/internal/handler/dto/response"
	"holidaze-booking/internal/handler/httperr"
	"holidaze-booking/internal/handler/middleware"
	"holidaze-booking/internal/pkg/errs"
	"holidaze-booking/internal/usecase/commands"
	"holidaze-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qs queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create booking
// @Description Book a venue for a date range
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWith(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error")
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWith(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	dateFrom, dateTo, err := req.ParseDates()
	if err != nil {
		httperr.AbortWith(c, http.StatusBadRequest, err, err.Error())
		return
	}

	input := commands.CreateBookingInput{
		VenueID:  req.VenueID,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Guests:   req.GuestCount(),
	}

	view, err := h.commands.CreateBooking(c.Request.Context(), input, identity.Email)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List user bookings
// @Description List all bookings made by the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWith(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error")
		return
	}

	result, err := h.queries.ListByUser(c.Request.Context(), identity.Email)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListResult(result))
}

// @Summary Delete booking
// @Description Cancel one of the current user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWith(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWith(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	if err := h.commands.DeleteBooking(c.Request.Context(), id, identity.Email); err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
