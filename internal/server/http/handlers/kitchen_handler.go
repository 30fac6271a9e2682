package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/plateful/takeaway/internal/domain/errors"
	"github.com/plateful/takeaway/internal/domain/model"
	"github.com/plateful/takeaway/internal/server/http/dto"
)

// KitchenHandler serves the kitchen board.
type KitchenHandler struct {
	facade KitchenFacade
}

// NewKitchenHandler constructs KitchenHandler.
func NewKitchenHandler(facade KitchenFacade) *KitchenHandler {
	return &KitchenHandler{facade: facade}
}

// List handles GET /api/kitchen/orders: active orders sorted by pickup
// time ascending, items embedded.
func (h *KitchenHandler) List(c *gin.Context) {
	orders, err := h.facade.ActiveOrders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderWithItemsResponse(order))
	}
	c.JSON(http.StatusOK, response)
}

// Advance handles POST /api/kitchen/orders/:id/advance. Only the two
// kitchen moves are offered; everything else is 409.
func (h *KitchenHandler) Advance(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.KitchenAdvance(c.Request.Context(), orderID, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}
