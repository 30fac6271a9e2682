package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/plateful/takeaway/internal/cart"
	"github.com/plateful/takeaway/internal/domain/model"
	"github.com/plateful/takeaway/internal/server/http/dto"
	"github.com/plateful/takeaway/internal/server/http/middleware"
	"github.com/plateful/takeaway/internal/usecase"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func toMenuItemResponse(item model.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
	}
}

func toCartLineResponse(line cart.Line) dto.CartLineResponse {
	return dto.CartLineResponse{
		Item:      toMenuItemResponse(line.Item),
		Quantity:  line.Quantity,
		LineTotal: line.Item.Price * float64(line.Quantity),
	}
}

func toCartResponse(snap usecase.CartSnapshot) dto.CartResponse {
	lines := make([]dto.CartLineResponse, 0, len(snap.Lines))
	for _, line := range snap.Lines {
		lines = append(lines, toCartLineResponse(line))
	}
	return dto.CartResponse{Lines: lines, Total: snap.Total, Count: snap.Count}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	display := order.Status.Display()
	return dto.OrderResponse{
		ID:            order.ID,
		Number:        order.Number,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		PickupTime:    order.PickupTime,
		TotalAmount:   order.TotalAmount,
		Notes:         order.Notes,
		Status:        string(order.Status),
		StatusLabel:   display.Label,
		StatusColor:   display.Color,
		CreatedAt:     order.CreatedAt,
	}
}

func toOrderWithItemsResponse(order model.OrderWithItems) dto.OrderResponse {
	resp := toOrderResponse(order.Order)
	resp.Items = make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ItemName:     item.ItemName,
			ItemCategory: item.ItemCategory,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.TotalPrice,
		})
	}
	return resp
}
