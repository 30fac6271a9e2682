package dto

// AddCartItemRequest puts one unit of a menu item into the cart.
type AddCartItemRequest struct {
	ItemID int64 `json:"item_id" binding:"required"`
}

// SetQuantityRequest replaces a line quantity. Zero or negative values
// remove the line.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse is one cart line with its derived total.
type CartLineResponse struct {
	Item      MenuItemResponse `json:"item"`
	Quantity  int              `json:"quantity"`
	LineTotal float64          `json:"line_total"`
}

// CartResponse is the full cart state.
type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total float64            `json:"total"`
	Count int                `json:"count"`
}
