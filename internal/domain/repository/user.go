package repository

import (
	"context"

	"github.com/plateful/takeaway/internal/domain/model"
)

// UserRepository describes persistence operations with accounts.
type UserRepository interface {
	Create(ctx context.Context, name, email, phone, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
