package api

import (
	"errors"
	"net/http"

	resdto "website-rentals/internal/handler/dto/response"
	"website-rentals/internal/handler/httperr"
	"website-rentals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	q queries.ProductQueries
}

func NewProductHandler(q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{q: q}
}

// @Summary Get product
// @Description Get a rentable product with its pricing rules
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}
