package test

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/plateful/takeaway/internal/domain/errors"
	"github.com/plateful/takeaway/internal/domain/model"
)

// UserRepositoryStub stores accounts in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Create registers an account unless it already exists or the stub has
// an explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, phone, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{
		ID:           s.Next,
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
		Role:         model.RoleCustomer,
		CreatedAt:    time.Now(),
	}
	s.Next++
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches an account by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches an account by id or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// MenuRepositoryStub serves a fixed catalog.
type MenuRepositoryStub struct {
	Items []model.MenuItem
	Err   error
}

// List returns the whole catalog.
func (s *MenuRepositoryStub) List(ctx context.Context) ([]model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// GetByID returns a catalog item or not found.
func (s *MenuRepositoryStub) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, item := range s.Items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub stores orders in-memory for tests. The stub
// assigns ids and order numbers the way the store would.
type OrderRepositoryStub struct {
	Orders  map[int64]*model.OrderWithItems
	Next    int64
	Err     error
	Created []int64
	Updates []StatusUpdate
}

// StatusUpdate records one UpdateStatus call.
type StatusUpdate struct {
	OrderID int64
	Status  model.OrderStatus
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.OrderWithItems), Next: 1}
}

// Create persists the order with its items and assigns id and number.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order, items []model.OrderItem) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	created := *order
	created.ID = s.Next
	created.Number = fmt.Sprintf("CMD-%06d", s.Next)
	created.CreatedAt = time.Now()
	s.Next++

	stored := make([]model.OrderItem, len(items))
	copy(stored, items)
	for i := range stored {
		stored[i].OrderID = created.ID
	}
	s.Orders[created.ID] = &model.OrderWithItems{Order: created, Items: stored}
	s.Created = append(s.Created, created.ID)
	return &created, nil
}

// GetByID returns the stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.OrderWithItems, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListActive returns orders in active statuses.
func (s *OrderRepositoryStub) ListActive(ctx context.Context) ([]model.OrderWithItems, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.OrderWithItems
	for _, order := range s.Orders {
		if !order.Status.Terminal() {
			result = append(result, *order)
		}
	}
	return result, nil
}

// ListAll returns every stored order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, order := range s.Orders {
		result = append(result, order.Order)
	}
	return result, nil
}

// UpdateStatus records the call and mutates the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.Err != nil {
		return s.Err
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.Status = status
	s.Updates = append(s.Updates, StatusUpdate{OrderID: orderID, Status: status})
	return nil
}
