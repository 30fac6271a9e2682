package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ActiveStatuses are the statuses shown on the kitchen board.
var ActiveStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
}

// Known reports whether s is one of the defined statuses.
func (s OrderStatus) Known() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition leaves s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// StatusDisplay carries the human label and badge color for a status.
// Rendering data only, not part of the lifecycle semantics.
type StatusDisplay struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusDisplays = map[OrderStatus]StatusDisplay{
	OrderStatusPending:   {Label: "En attente", Color: "yellow"},
	OrderStatusConfirmed: {Label: "Confirmée", Color: "blue"},
	OrderStatusPreparing: {Label: "En préparation", Color: "orange"},
	OrderStatusReady:     {Label: "Prête", Color: "green"},
	OrderStatusCompleted: {Label: "Terminée", Color: "gray"},
	OrderStatusCancelled: {Label: "Annulée", Color: "red"},
}

// Display returns the label/color pair for s. Unknown statuses map to a
// zero display rather than panicking.
func (s OrderStatus) Display() StatusDisplay {
	return statusDisplays[s]
}

// Order describes a persisted takeaway order. Status is the only field
// mutated after creation; the store assigns ID and Number on insert.
type Order struct {
	ID            int64
	Number        string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PickupTime    time.Time
	TotalAmount   float64
	Notes         string
	Status        OrderStatus
	CreatedAt     time.Time
}

// OrderItem is a priced line captured at submission time. Name, category
// and unit price are snapshots decoupled from the live menu catalog.
type OrderItem struct {
	ID           int64
	OrderID      int64
	ItemName     string
	ItemCategory string
	Quantity     int
	UnitPrice    float64
	TotalPrice   float64
}

// OrderWithItems bundles an order with its lines for staff views.
type OrderWithItems struct {
	Order
	Items []OrderItem
}
