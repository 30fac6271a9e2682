package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/plateful/takeaway/internal/adapter/events"
	"github.com/plateful/takeaway/internal/domain/model"
	"github.com/plateful/takeaway/internal/feed"
	"github.com/plateful/takeaway/internal/pickup"
	pkgAuth "github.com/plateful/takeaway/internal/pkg/auth"
	"github.com/plateful/takeaway/internal/usecase"
)

// TakeawayFacade aggregates the use cases behind the HTTP surface and
// attaches the side channels: cart clearing after checkout, order
// events, the realtime feed.
type TakeawayFacade struct {
	auth       *usecase.AuthUseCase
	menu       *usecase.MenuUseCase
	cart       *usecase.CartUseCase
	orders     *usecase.OrderUseCase
	publisher  events.Publisher
	dispatcher *feed.Dispatcher
	logger     *slog.Logger
	now        func() time.Time
}

// NewTakeawayFacade constructs the facade.
func NewTakeawayFacade(
	auth *usecase.AuthUseCase,
	menu *usecase.MenuUseCase,
	cart *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	publisher events.Publisher,
	dispatcher *feed.Dispatcher,
	logger *slog.Logger,
) *TakeawayFacade {
	return &TakeawayFacade{
		auth:       auth,
		menu:       menu,
		cart:       cart,
		orders:     orders,
		publisher:  publisher,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// --- auth ---

func (f *TakeawayFacade) Register(ctx context.Context, name, email, phone, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, phone, password)
}

func (f *TakeawayFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *TakeawayFacade) ParseToken(token string) (pkgAuth.Session, error) {
	return f.auth.ParseToken(token)
}

func (f *TakeawayFacade) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

// --- menu ---

func (f *TakeawayFacade) Menu(ctx context.Context) ([]model.MenuItem, error) {
	return f.menu.List(ctx)
}

// --- cart ---

func (f *TakeawayFacade) CartGet(userID int64) usecase.CartSnapshot {
	return f.cart.Get(userID)
}

func (f *TakeawayFacade) CartAdd(ctx context.Context, userID, itemID int64) (usecase.CartSnapshot, error) {
	return f.cart.Add(ctx, userID, itemID)
}

func (f *TakeawayFacade) CartSetQuantity(userID, itemID int64, quantity int) usecase.CartSnapshot {
	return f.cart.SetQuantity(userID, itemID, quantity)
}

func (f *TakeawayFacade) CartRemove(userID, itemID int64) usecase.CartSnapshot {
	return f.cart.Remove(userID, itemID)
}

func (f *TakeawayFacade) CartClear(userID int64) {
	f.cart.Clear(userID)
}

// --- checkout ---

func (f *TakeawayFacade) PickupSlots(date time.Time) ([]time.Time, error) {
	now := f.now()
	if err := pickup.ValidateDate(date, now); err != nil {
		return nil, err
	}
	var slots []time.Time
	for slot := range pickup.Slots(date, now) {
		slots = append(slots, slot)
	}
	return slots, nil
}

// Checkout submits the user's cart. The cart is cleared only after the
// order is persisted; a rejected submission leaves it untouched.
func (f *TakeawayFacade) Checkout(ctx context.Context, userID int64, pickupAt time.Time, notes string) (*model.Order, error) {
	user, err := f.auth.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := f.cart.Get(userID)
	order, err := f.orders.Submit(ctx, usecase.SubmitRequest{
		Lines:  snap.Lines,
		Pickup: pickupAt,
		Customer: usecase.Customer{
			Name:  user.DisplayName(),
			Email: user.Email,
			Phone: user.Phone,
		},
		Notes: notes,
		Now:   f.now(),
	})
	if err != nil {
		return nil, err
	}

	f.cart.Clear(userID)
	f.publish(ctx, events.OrderEvent{
		Kind:        events.KindOrderCreated,
		OrderID:     order.ID,
		OrderNumber: order.Number,
		Status:      order.Status,
		PickupTime:  order.PickupTime,
		TotalAmount: order.TotalAmount,
		OccurredAt:  f.now(),
	})
	return order, nil
}

// --- kitchen ---

func (f *TakeawayFacade) ActiveOrders(ctx context.Context) ([]model.OrderWithItems, error) {
	return f.orders.ActiveOrders(ctx)
}

func (f *TakeawayFacade) KitchenAdvance(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error) {
	order, err := f.orders.KitchenAdvance(ctx, orderID, target)
	if err != nil {
		return nil, err
	}
	f.publish(ctx, events.OrderEvent{
		Kind:        events.KindStatusChanged,
		OrderID:     order.ID,
		OrderNumber: order.Number,
		Status:      order.Status,
		OccurredAt:  f.now(),
	})
	return order, nil
}

// --- manager ---

func (f *TakeawayFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.AllOrders(ctx)
}

func (f *TakeawayFacade) OrderDetail(ctx context.Context, orderID int64) (*model.OrderWithItems, error) {
	return f.orders.GetByID(ctx, orderID)
}

func (f *TakeawayFacade) ManagerSetStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if err := f.orders.ManagerSetStatus(ctx, orderID, status); err != nil {
		return err
	}
	if order, err := f.orders.GetByID(ctx, orderID); err == nil {
		f.publish(ctx, events.OrderEvent{
			Kind:        events.KindStatusChanged,
			OrderID:     order.ID,
			OrderNumber: order.Number,
			Status:      order.Status,
			OccurredAt:  f.now(),
		})
	}
	return nil
}

// --- feed ---

func (f *TakeawayFacade) SubscribeOrders(ctx context.Context) (int64, <-chan feed.Snapshot, error) {
	return f.dispatcher.Subscribe(ctx)
}

func (f *TakeawayFacade) UnsubscribeOrders(id int64) {
	f.dispatcher.Unsubscribe(id)
}

func (f *TakeawayFacade) publish(ctx context.Context, event events.OrderEvent) {
	if err := f.publisher.Publish(ctx, event); err != nil {
		f.logger.Error("publish order event failed",
			slog.String("kind", event.Kind),
			slog.String("order", event.OrderNumber),
			slog.String("error", err.Error()),
		)
	}
}
