package test

import (
	"context"
	"time"

	"github.com/plateful/takeaway/internal/domain/model"
	"github.com/plateful/takeaway/internal/feed"
	pkgAuth "github.com/plateful/takeaway/internal/pkg/auth"
	"github.com/plateful/takeaway/internal/usecase"
)

// AuthFacadeStub implements handlers.AuthFacade with overridable funcs.
type AuthFacadeStub struct {
	RegisterFn     func(ctx context.Context, name, email, phone, password string) (*model.User, string, error)
	AuthenticateFn func(ctx context.Context, email, password string) (*model.User, string, error)
	ParseTokenFn   func(token string) (pkgAuth.Session, error)
	CurrentUserFn  func(ctx context.Context, userID int64) (*model.User, error)
}

func (s AuthFacadeStub) Register(ctx context.Context, name, email, phone, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, phone, password)
	}
	return &model.User{ID: 1, Name: name, Email: email, Role: model.RoleCustomer}, "token", nil
}

func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCustomer}, "token", nil
}

func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Session, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return pkgAuth.Session{UserID: 1, Role: model.RoleCustomer}, nil
}

func (s AuthFacadeStub) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx, userID)
	}
	return &model.User{ID: userID, Email: "user@example.com", Role: model.RoleCustomer}, nil
}

// CartFacadeStub implements handlers.CartFacade.
type CartFacadeStub struct {
	Snapshot usecase.CartSnapshot
	AddFn    func(ctx context.Context, userID, itemID int64) (usecase.CartSnapshot, error)
	SetFn    func(userID, itemID int64, quantity int) usecase.CartSnapshot
	Cleared  []int64
}

func (s *CartFacadeStub) CartGet(userID int64) usecase.CartSnapshot {
	return s.Snapshot
}

func (s *CartFacadeStub) CartAdd(ctx context.Context, userID, itemID int64) (usecase.CartSnapshot, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, itemID)
	}
	return s.Snapshot, nil
}

func (s *CartFacadeStub) CartSetQuantity(userID, itemID int64, quantity int) usecase.CartSnapshot {
	if s.SetFn != nil {
		return s.SetFn(userID, itemID, quantity)
	}
	return s.Snapshot
}

func (s *CartFacadeStub) CartRemove(userID, itemID int64) usecase.CartSnapshot {
	return s.Snapshot
}

func (s *CartFacadeStub) CartClear(userID int64) {
	s.Cleared = append(s.Cleared, userID)
}

// CheckoutFacadeStub implements handlers.CheckoutFacade.
type CheckoutFacadeStub struct {
	SlotsFn    func(date time.Time) ([]time.Time, error)
	CheckoutFn func(ctx context.Context, userID int64, pickup time.Time, notes string) (*model.Order, error)
}

func (s CheckoutFacadeStub) PickupSlots(date time.Time) ([]time.Time, error) {
	if s.SlotsFn != nil {
		return s.SlotsFn(date)
	}
	return nil, nil
}

func (s CheckoutFacadeStub) Checkout(ctx context.Context, userID int64, pickup time.Time, notes string) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, pickup, notes)
	}
	return &model.Order{ID: 1, Number: "CMD-000001", PickupTime: pickup, Status: model.OrderStatusPending}, nil
}

// KitchenFacadeStub implements handlers.KitchenFacade.
type KitchenFacadeStub struct {
	Orders    []model.OrderWithItems
	ListErr   error
	AdvanceFn func(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error)
}

func (s KitchenFacadeStub) ActiveOrders(ctx context.Context) ([]model.OrderWithItems, error) {
	return s.Orders, s.ListErr
}

func (s KitchenFacadeStub) KitchenAdvance(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, orderID, target)
	}
	return &model.Order{ID: orderID, Status: target}, nil
}

// ManagerFacadeStub implements handlers.ManagerFacade.
type ManagerFacadeStub struct {
	Orders      []model.Order
	Detail      *model.OrderWithItems
	SetStatusFn func(ctx context.Context, orderID int64, status model.OrderStatus) error
}

func (s ManagerFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	return s.Orders, nil
}

func (s ManagerFacadeStub) OrderDetail(ctx context.Context, orderID int64) (*model.OrderWithItems, error) {
	if s.Detail != nil {
		return s.Detail, nil
	}
	return &model.OrderWithItems{Order: model.Order{ID: orderID}}, nil
}

func (s ManagerFacadeStub) ManagerSetStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, orderID, status)
	}
	return nil
}

// FeedFacadeStub implements handlers.FeedFacade backed by a fixed
// channel. Unsubscribed records release calls.
type FeedFacadeStub struct {
	Ch           chan feed.Snapshot
	SubscribeErr error
	Unsubscribed []int64
}

func (s *FeedFacadeStub) SubscribeOrders(ctx context.Context) (int64, <-chan feed.Snapshot, error) {
	if s.SubscribeErr != nil {
		return 0, nil, s.SubscribeErr
	}
	return 1, s.Ch, nil
}

func (s *FeedFacadeStub) UnsubscribeOrders(id int64) {
	s.Unsubscribed = append(s.Unsubscribed, id)
}

// MenuFacadeStub implements handlers.MenuFacade.
type MenuFacadeStub struct {
	Items []model.MenuItem
	Err   error
}

func (s MenuFacadeStub) Menu(ctx context.Context) ([]model.MenuItem, error) {
	return s.Items, s.Err
}
