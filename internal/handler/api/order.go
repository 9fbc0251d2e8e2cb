package api

import (
	"errors"
	"net/http"

	"website-rentals/internal/handler/httperr"
	"website-rentals/internal/handler/middleware"
	"website-rentals/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingUser = errors.New("missing authenticated user")

type OrderHandler struct {
	cmds commands.OrderCommands
}

func NewOrderHandler(cmds commands.OrderCommands) *OrderHandler {
	return &OrderHandler{cmds: cmds}
}

// @Summary Confirm order
// @Description Confirm a draft order, re-checking rental availability and reserving the stock
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders/{id}/confirm [post]
func (h *OrderHandler) Confirm(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.ConfirmOrder(c.Request.Context(), orderID, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, commands.ErrOrderNotDraft):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order already processed", nil)
		case errors.Is(err, commands.ErrLineNotRentable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "A rental line is not available", nil)
		case errors.Is(err, commands.ErrScheduleConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Rental window was booked concurrently", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Confirm order failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}
