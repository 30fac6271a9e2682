package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateful/takeaway/internal/domain/model"
	"github.com/plateful/takeaway/internal/server/http/dto"
)

// MenuHandler serves the catalog.
type MenuHandler struct {
	facade MenuFacade
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade) *MenuHandler {
	return &MenuHandler{facade: facade}
}

// List handles GET /api/menu. Items come back grouped by category in
// the fixed display order; categories with no items are omitted.
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.facade.Menu(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	grouped := make(map[string][]dto.MenuItemResponse)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], toMenuItemResponse(item))
	}

	response := make([]dto.MenuCategoryResponse, 0, len(grouped))
	for _, category := range model.Categories {
		if entries, ok := grouped[category]; ok {
			response = append(response, dto.MenuCategoryResponse{Category: category, Items: entries})
			delete(grouped, category)
		}
	}
	// Categories outside the fixed set still render, after the known ones.
	for category, entries := range grouped {
		response = append(response, dto.MenuCategoryResponse{Category: category, Items: entries})
	}

	c.JSON(http.StatusOK, response)
}
