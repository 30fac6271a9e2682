package usecase

import (
	"context"

	"github.com/plateful/takeaway/internal/cart"
	"github.com/plateful/takeaway/internal/domain/repository"
)

// CartSnapshot is the cart content handed to responses and checkout.
type CartSnapshot struct {
	Lines []cart.Line
	Total float64
	Count int
}

// CartUseCase manages per-user carts against the live menu.
type CartUseCase struct {
	store *cart.Store
	menu  repository.MenuRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(store *cart.Store, menu repository.MenuRepository) *CartUseCase {
	return &CartUseCase{store: store, menu: menu}
}

// Add puts one unit of the menu item into the user's cart.
func (u *CartUseCase) Add(ctx context.Context, userID, itemID int64) (CartSnapshot, error) {
	item, err := u.menu.GetByID(ctx, itemID)
	if err != nil {
		return CartSnapshot{}, err
	}

	var snap CartSnapshot
	u.store.With(userID, func(c *cart.Cart) {
		c.Add(*item)
		snap = snapshot(c)
	})
	return snap, nil
}

// SetQuantity updates a line quantity. Zero and negative quantities
// remove the line.
func (u *CartUseCase) SetQuantity(userID, itemID int64, quantity int) CartSnapshot {
	var snap CartSnapshot
	u.store.With(userID, func(c *cart.Cart) {
		c.SetQuantity(itemID, quantity)
		snap = snapshot(c)
	})
	return snap
}

// Remove deletes a line; removing an absent line is a no-op.
func (u *CartUseCase) Remove(userID, itemID int64) CartSnapshot {
	var snap CartSnapshot
	u.store.With(userID, func(c *cart.Cart) {
		c.Remove(itemID)
		snap = snapshot(c)
	})
	return snap
}

// Clear empties the user's cart.
func (u *CartUseCase) Clear(userID int64) {
	u.store.With(userID, func(c *cart.Cart) {
		c.Clear()
	})
}

// Get returns the current cart content.
func (u *CartUseCase) Get(userID int64) CartSnapshot {
	var snap CartSnapshot
	u.store.With(userID, func(c *cart.Cart) {
		snap = snapshot(c)
	})
	return snap
}

func snapshot(c *cart.Cart) CartSnapshot {
	return CartSnapshot{Lines: c.Lines(), Total: c.Total(), Count: c.Count()}
}
