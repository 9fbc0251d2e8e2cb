package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "website-rentals/internal/handler/dto/request"
	resdto "website-rentals/internal/handler/dto/response"
	"website-rentals/internal/handler/httperr"
	"website-rentals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RentalHandler struct {
	availability queries.AvailabilityQueries
	timeslots    queries.TimeslotQueries
	defaultTZ    *time.Location
}

func NewRentalHandler(availability queries.AvailabilityQueries, timeslots queries.TimeslotQueries, defaultTZ *time.Location) *RentalHandler {
	return &RentalHandler{
		availability: availability,
		timeslots:    timeslots,
		defaultTZ:    defaultTZ,
	}
}

// @Summary Check rentability
// @Description Check whether a product can be rented for a window at a quantity
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Availability check request"
// @Success 200 {object} resdto.CanRentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/can-rent [post]
func (h *RentalHandler) CanRent(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	start, stop, err := req.Window()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental dates", nil)
		return
	}

	ok, err := h.availability.CanRent(c.Request.Context(), req.ProductID, start, stop, req.EffectiveQuantity())
	if err != nil {
		abortRentalQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CanRentResponse{CanRent: ok})
}

// @Summary Available quantity
// @Description Get how many units remain bookable for a window
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Availability check request"
// @Success 200 {object} resdto.AvailableQtyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/available-qty [post]
func (h *RentalHandler) AvailableQty(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	start, stop, err := req.Window()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental dates", nil)
		return
	}

	qty, err := h.availability.GetAvailableQuantity(c.Request.Context(), req.ProductID, start, stop)
	if err != nil {
		abortRentalQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AvailableQtyResponse{AvailableQty: qty})
}

// @Summary Hourly timeslots
// @Description List bookable hourly pickup and return times for a product
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body reqdto.TimeslotsRequest true "Timeslot request"
// @Success 200 {object} resdto.TimeslotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/timeslots [post]
func (h *RentalHandler) Timeslots(c *gin.Context) {
	var req reqdto.TimeslotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	query, err := req.ToQuery(h.defaultTZ)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid timeslot request", nil)
		return
	}

	view, err := h.timeslots.GetHourlyTimeslots(c.Request.Context(), query)
	if err != nil {
		abortRentalQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeslotsView(view))
}

func abortRentalQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Availability check failed", nil)
	}
}
