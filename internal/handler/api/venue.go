package api

import (
	"net/http"

	resdto "holidaze-booking/internal/handler/dto/response"
	"holidaze-booking/internal/handler/httperr"
	"holidaze-booking/internal/handler/middleware"
	"holidaze-booking/internal/pkg/errs"
	"holidaze-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	venueQueries queries.VenueQueries
}

func NewVenueHandler(venueQueries queries.VenueQueries) *VenueHandler {
	return &VenueHandler{venueQueries: venueQueries}
}

// @Summary Get venue detail
// @Description Get a venue with its availability calendar
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueDetailResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenueDetail(c *gin.Context) {
	detail, err := h.venueQueries.GetVenueDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVenueDetail(detail))
}

// @Summary List venue bookings
// @Description List all bookings held against a venue the caller manages
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /venues/{id}/bookings [get]
func (h *VenueHandler) GetVenueBookings(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWith(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error")
		return
	}

	result, err := h.venueQueries.ListVenueBookings(c.Request.Context(), c.Param("id"), identity.Email)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListResult(result))
}
