package repository

import (
	"context"

	"github.com/plateful/takeaway/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. Create
// persists the order and its item batch together; the store assigns the
// order id and the human-readable order number.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order, items []model.OrderItem) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.OrderWithItems, error)
	ListActive(ctx context.Context) ([]model.OrderWithItems, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
