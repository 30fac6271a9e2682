package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/plateful/takeaway/internal/domain/errors"
	"github.com/plateful/takeaway/internal/server/http/dto"
)

// CartHandler manages the per-user cart endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(c *gin.Context) {
	snap := h.facade.CartGet(CurrentUserID(c))
	c.JSON(http.StatusOK, toCartResponse(snap))
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	snap, err := h.facade.CartAdd(c.Request.Context(), CurrentUserID(c), req.ItemID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(snap))
}

// SetQuantity handles PUT /api/cart/items/:id. Quantity zero removes
// the line; negative values clamp to removal as well.
func (h *CartHandler) SetQuantity(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	snap := h.facade.CartSetQuantity(CurrentUserID(c), itemID, req.Quantity)
	c.JSON(http.StatusOK, toCartResponse(snap))
}

// RemoveItem handles DELETE /api/cart/items/:id. Removing an absent
// line is a no-op.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	snap := h.facade.CartRemove(CurrentUserID(c), itemID)
	c.JSON(http.StatusOK, toCartResponse(snap))
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	h.facade.CartClear(CurrentUserID(c))
	c.Status(http.StatusNoContent)
}
