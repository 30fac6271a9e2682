package usecase

import (
	"context"

	"github.com/plateful/takeaway/internal/domain/model"
	"github.com/plateful/takeaway/internal/domain/repository"
)

// MenuUseCase reads the immutable catalog.
type MenuUseCase struct {
	menu repository.MenuRepository
}

// NewMenuUseCase constructs MenuUseCase.
func NewMenuUseCase(menu repository.MenuRepository) *MenuUseCase {
	return &MenuUseCase{menu: menu}
}

// List returns the whole catalog.
func (u *MenuUseCase) List(ctx context.Context) ([]model.MenuItem, error) {
	return u.menu.List(ctx)
}

// GetByID returns a single catalog item.
func (u *MenuUseCase) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	return u.menu.GetByID(ctx, id)
}
