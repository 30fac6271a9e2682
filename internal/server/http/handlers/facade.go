package handlers

import (
	"context"
	"time"

	"github.com/plateful/takeaway/internal/domain/model"
	"github.com/plateful/takeaway/internal/feed"
	pkgAuth "github.com/plateful/takeaway/internal/pkg/auth"
	"github.com/plateful/takeaway/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, phone, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (pkgAuth.Session, error)
	CurrentUser(ctx context.Context, userID int64) (*model.User, error)
}

// MenuFacade exposes the catalog.
type MenuFacade interface {
	Menu(ctx context.Context) ([]model.MenuItem, error)
}

// CartFacade manages the per-user cart.
type CartFacade interface {
	CartGet(userID int64) usecase.CartSnapshot
	CartAdd(ctx context.Context, userID, itemID int64) (usecase.CartSnapshot, error)
	CartSetQuantity(userID, itemID int64, quantity int) usecase.CartSnapshot
	CartRemove(userID, itemID int64) usecase.CartSnapshot
	CartClear(userID int64)
}

// CheckoutFacade turns a cart plus a pickup slot into an order.
type CheckoutFacade interface {
	PickupSlots(date time.Time) ([]time.Time, error)
	Checkout(ctx context.Context, userID int64, pickup time.Time, notes string) (*model.Order, error)
}

// KitchenFacade serves the kitchen board.
type KitchenFacade interface {
	ActiveOrders(ctx context.Context) ([]model.OrderWithItems, error)
	KitchenAdvance(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error)
}

// ManagerFacade serves the manager dashboard.
type ManagerFacade interface {
	AllOrders(ctx context.Context) ([]model.Order, error)
	OrderDetail(ctx context.Context, orderID int64) (*model.OrderWithItems, error)
	ManagerSetStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}

// FeedFacade exposes the realtime order feed.
type FeedFacade interface {
	SubscribeOrders(ctx context.Context) (int64, <-chan feed.Snapshot, error)
	UnsubscribeOrders(id int64)
}

// TakeawayFacade aggregates the full set of operations used across
// handlers.
type TakeawayFacade interface {
	AuthFacade
	MenuFacade
	CartFacade
	CheckoutFacade
	KitchenFacade
	ManagerFacade
	FeedFacade
}
