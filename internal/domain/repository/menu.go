package repository

import (
	"context"

	"github.com/plateful/takeaway/internal/domain/model"
)

// MenuRepository reads the immutable menu catalog.
type MenuRepository interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*model.MenuItem, error)
}
