package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/plateful/takeaway/internal/domain/errors"
	"github.com/plateful/takeaway/internal/server/http/dto"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// OrderHandler serves slot listing and checkout.
type OrderHandler struct {
	facade CheckoutFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade CheckoutFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Slots handles GET /api/pickup/slots?date=2006-01-02. An empty slot
// list is a normal response: the client disables confirmation instead
// of treating it as an error.
func (h *OrderHandler) Slots(c *gin.Context) {
	date, err := time.ParseInLocation(dateLayout, c.Query("date"), time.Local)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	slots, err := h.facade.PickupSlots(date)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrPastPickup), errors.Is(err, domainErrors.ErrPickupTooFar):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	response := dto.SlotsResponse{Date: date.Format(dateLayout), Slots: make([]string, 0, len(slots))}
	for _, slot := range slots {
		response.Slots = append(response.Slots, slot.Format(timeLayout))
	}
	c.JSON(http.StatusOK, response)
}

// Checkout handles POST /api/orders. Validation failures return before
// any storage write; storage failures surface as opaque 500s with no
// retry. The endpoint is not idempotent, so the client must disable
// the submit control while a request is outstanding.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	pickup, err := time.ParseInLocation(dateLayout+" "+timeLayout, req.PickupDate+" "+req.PickupTime, time.Local)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.Checkout(c.Request.Context(), CurrentUserID(c), pickup, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyCart),
			errors.Is(err, domainErrors.ErrPickupRequired),
			errors.Is(err, domainErrors.ErrPastPickup),
			errors.Is(err, domainErrors.ErrPickupTooFar),
			errors.Is(err, domainErrors.ErrSlotUnavailable):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		ID:          order.ID,
		Number:      order.Number,
		PickupTime:  order.PickupTime,
		TotalAmount: order.TotalAmount,
	})
}
