package usecase

import (
	"context"
	"time"

	"github.com/plateful/takeaway/internal/cart"
	domainErrors "github.com/plateful/takeaway/internal/domain/errors"
	"github.com/plateful/takeaway/internal/domain/model"
	"github.com/plateful/takeaway/internal/domain/repository"
	"github.com/plateful/takeaway/internal/pickup"
)

// Customer is the identity snapshot stamped onto an order at submission.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// SubmitRequest carries everything checkout needs. Now is injected so
// slot validation is a pure function of its inputs.
type SubmitRequest struct {
	Lines    []cart.Line
	Pickup   time.Time
	Customer Customer
	Notes    string
	Now      time.Time
}

// OrderUseCase drives the order lifecycle.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Submit validates the checkout and persists the order with one item
// per cart line, capturing name, category and price at submission time.
// Validation failures happen before any storage call. The operation is
// not idempotent: resubmitting creates a second order.
func (u *OrderUseCase) Submit(ctx context.Context, req SubmitRequest) (*model.Order, error) {
	if len(req.Lines) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}
	if req.Pickup.IsZero() {
		return nil, domainErrors.ErrPickupRequired
	}
	if err := pickup.ValidateDate(req.Pickup, req.Now); err != nil {
		return nil, err
	}
	if !pickup.ValidMoment(req.Pickup, req.Now) {
		return nil, domainErrors.ErrSlotUnavailable
	}

	var total float64
	items := make([]model.OrderItem, 0, len(req.Lines))
	for _, line := range req.Lines {
		lineTotal := line.Item.Price * float64(line.Quantity)
		total += lineTotal
		items = append(items, model.OrderItem{
			ItemName:     line.Item.Name,
			ItemCategory: line.Item.Category,
			Quantity:     line.Quantity,
			UnitPrice:    line.Item.Price,
			TotalPrice:   lineTotal,
		})
	}

	order := &model.Order{
		CustomerName:  req.Customer.Name,
		CustomerEmail: req.Customer.Email,
		CustomerPhone: req.Customer.Phone,
		PickupTime:    req.Pickup,
		TotalAmount:   total,
		Notes:         req.Notes,
		Status:        model.OrderStatusPending,
	}

	return u.orders.Create(ctx, order, items)
}

// ActiveOrders returns the kitchen board: active statuses ordered by
// pickup time ascending, items embedded.
func (u *OrderUseCase) ActiveOrders(ctx context.Context) ([]model.OrderWithItems, error) {
	return u.orders.ListActive(ctx)
}

// AllOrders returns every order, newest first, for the manager view.
func (u *OrderUseCase) AllOrders(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// GetByID returns an order with its items.
func (u *OrderUseCase) GetByID(ctx context.Context, id int64) (*model.OrderWithItems, error) {
	return u.orders.GetByID(ctx, id)
}

// KitchenAdvance performs the two moves the kitchen board offers:
// pending or confirmed to preparing, and preparing to ready. Every
// other move, terminal states included, is rejected.
func (u *OrderUseCase) KitchenAdvance(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error) {
	current, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !kitchenMoveAllowed(current.Status, target) {
		return nil, domainErrors.ErrInvalidTransition
	}

	if err := u.orders.UpdateStatus(ctx, orderID, target); err != nil {
		return nil, err
	}
	updated := current.Order
	updated.Status = target
	return &updated, nil
}

// ManagerSetStatus sets any known status directly. The transition graph
// is deliberately not enforced on this path; the manager dashboard may
// move an order anywhere, terminal states included.
func (u *OrderUseCase) ManagerSetStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if !status.Known() {
		return domainErrors.ErrUnknownStatus
	}
	return u.orders.UpdateStatus(ctx, orderID, status)
}

func kitchenMoveAllowed(from, to model.OrderStatus) bool {
	switch to {
	case model.OrderStatusPreparing:
		return from == model.OrderStatusPending || from == model.OrderStatusConfirmed
	case model.OrderStatusReady:
		return from == model.OrderStatusPreparing
	}
	return false
}
