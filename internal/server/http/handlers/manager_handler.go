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

// ManagerHandler serves the manager dashboard.
type ManagerHandler struct {
	facade ManagerFacade
}

// NewManagerHandler constructs ManagerHandler.
func NewManagerHandler(facade ManagerFacade) *ManagerHandler {
	return &ManagerHandler{facade: facade}
}

// List handles GET /api/manager/orders: every order, newest first.
func (h *ManagerHandler) List(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, response)
}

// Detail handles GET /api/manager/orders/:id: the full order with its
// lines, used for the receipt view.
func (h *ManagerHandler) Detail(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.OrderDetail(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderWithItemsResponse(*order))
}

// SetStatus handles PUT /api/manager/orders/:id/status. Any known
// status is accepted; the manager path does not enforce the transition
// graph.
func (h *ManagerHandler) SetStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err = h.facade.ManagerSetStatus(c.Request.Context(), orderID, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUnknownStatus):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
