package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateful/takeaway/internal/server/http/dto"
)

// FeedHandler streams order-board snapshots to staff views.
type FeedHandler struct {
	facade FeedFacade
}

// NewFeedHandler constructs FeedHandler.
func NewFeedHandler(facade FeedFacade) *FeedHandler {
	return &FeedHandler{facade: facade}
}

// Stream handles GET /api/staff/orders/feed as server-sent events. The
// first event is the current board; each further event is the full
// board re-fetched after a change. The subscription is released once,
// when the client disconnects.
func (h *FeedHandler) Stream(c *gin.Context) {
	id, ch, err := h.facade.SubscribeOrders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	defer h.facade.UnsubscribeOrders(id)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case snap, ok := <-ch:
			if !ok {
				return false
			}
			board := make([]dto.OrderResponse, 0, len(snap.Orders))
			for _, order := range snap.Orders {
				board = append(board, toOrderWithItemsResponse(order))
			}
			c.SSEvent("orders", board)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
