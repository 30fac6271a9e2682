package dto

import "time"

// CheckoutRequest submits the current cart as an order. Date and time
// are the customer's slot selection; notes are free text.
type CheckoutRequest struct {
	PickupDate string `json:"pickup_date" binding:"required"` // 2006-01-02
	PickupTime string `json:"pickup_time" binding:"required"` // 15:04
	Notes      string `json:"notes"`
}

// CheckoutResponse confirms the persisted order.
type CheckoutResponse struct {
	ID          int64     `json:"id"`
	Number      string    `json:"number"`
	PickupTime  time.Time `json:"pickup_time"`
	TotalAmount float64   `json:"total_amount"`
}

// SlotsResponse lists valid pickup times for a date.
type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// OrderItemResponse is one snapshot line of a persisted order.
type OrderItemResponse struct {
	ItemName     string  `json:"item_name"`
	ItemCategory string  `json:"item_category"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
}

// OrderResponse is one order as rendered on staff views. Label and
// color come from the static status display table.
type OrderResponse struct {
	ID            int64               `json:"id"`
	Number        string              `json:"number"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	PickupTime    time.Time           `json:"pickup_time"`
	TotalAmount   float64             `json:"total_amount"`
	Notes         string              `json:"notes,omitempty"`
	Status        string              `json:"status"`
	StatusLabel   string              `json:"status_label"`
	StatusColor   string              `json:"status_color"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []OrderItemResponse `json:"items,omitempty"`
}

// AdvanceRequest asks the kitchen board to move an order forward.
type AdvanceRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatusRequest sets an order status from the manager dashboard.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
