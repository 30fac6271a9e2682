package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/plateful/takeaway/internal/domain/errors"
	"github.com/plateful/takeaway/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func finish(t *testing.T, mock pgxmockv3.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	createdAt := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Marie", "marie@example.com", "0612345678", "hash").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "role", "created_at"}).
			AddRow(int64(1), model.RoleCustomer, createdAt))

	user, err := storage.Users().Create(context.Background(), "Marie", "marie@example.com", "0612345678", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 || user.Email != "marie@example.com" || user.Role != model.RoleCustomer {
		t.Fatalf("unexpected user: %+v", user)
	}
	finish(t, mock)
}

func TestUserRepositoryCreateDuplicate(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Marie", "marie@example.com", "", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	if _, err := storage.Users().Create(context.Background(), "Marie", "marie@example.com", "", "hash"); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected already exists, got %v", err)
	}
	finish(t, mock)
}

func TestUserRepositoryGetByEmailNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT id, name, email, phone, password_hash, role, created_at FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "name", "email", "phone", "password_hash", "role", "created_at"}))

	if _, err := storage.Users().GetByEmail(context.Background(), "ghost@example.com"); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	finish(t, mock)
}

func TestMenuRepositoryList(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT id, name, description, price, category FROM menu_items ORDER BY id").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "name", "description", "price", "category"}).
			AddRow(int64(1), "Burger Classique", "", 9.50, "Burgers").
			AddRow(int64(2), "Frites Maison", "", 3.50, "Accompagnements"))

	items, err := storage.Menu().List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Burger Classique" {
		t.Fatalf("unexpected items: %+v", items)
	}
	finish(t, mock)
}

func TestMenuRepositoryGetByIDNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT id, name, description, price, category FROM menu_items WHERE id").
		WithArgs(int64(404)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "name", "description", "price", "category"}))

	if _, err := storage.Menu().GetByID(context.Background(), 404); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	finish(t, mock)
}

func TestOrderRepositoryCreateTransactional(t *testing.T) {
	storage, mock := newMockStorage(t)
	pickup := time.Date(2024, time.June, 3, 12, 30, 0, 0, time.UTC)
	createdAt := time.Now()

	order := &model.Order{
		CustomerName:  "Marie Dupont",
		CustomerEmail: "marie@example.com",
		PickupTime:    pickup,
		TotalAmount:   22.50,
		Status:        model.OrderStatusPending,
	}
	items := []model.OrderItem{
		{ItemName: "Burger Classique", ItemCategory: "Burgers", Quantity: 2, UnitPrice: 9.50, TotalPrice: 19.00},
		{ItemName: "Frites Maison", ItemCategory: "Accompagnements", Quantity: 1, UnitPrice: 3.50, TotalPrice: 3.50},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("Marie Dupont", "marie@example.com", "", pickup, 22.50, "", model.OrderStatusPending).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "number", "created_at"}).
			AddRow(int64(7), "CMD-000007", createdAt))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(int64(7), "Burger Classique", "Burgers", 2, 9.50, 19.00).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(int64(7), "Frites Maison", "Accompagnements", 1, 3.50, 3.50).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectCommit()

	created, err := storage.Orders().Create(context.Background(), order, items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 || created.Number != "CMD-000007" {
		t.Fatalf("unexpected created order: %+v", created)
	}
	finish(t, mock)
}

func TestOrderRepositoryCreateRollsBackOnItemFailure(t *testing.T) {
	storage, mock := newMockStorage(t)
	pickup := time.Date(2024, time.June, 3, 12, 30, 0, 0, time.UTC)

	order := &model.Order{CustomerName: "Marie", CustomerEmail: "m@e.fr", PickupTime: pickup, TotalAmount: 9.50, Status: model.OrderStatusPending}
	items := []model.OrderItem{{ItemName: "Burger Classique", ItemCategory: "Burgers", Quantity: 1, UnitPrice: 9.50, TotalPrice: 9.50}}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("Marie", "m@e.fr", "", pickup, 9.50, "", model.OrderStatusPending).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "number", "created_at"}).
			AddRow(int64(7), "CMD-000007", time.Now()))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(int64(7), "Burger Classique", "Burgers", 1, 9.50, 9.50).
		WillReturnError(errors.New("constraint violated"))
	mock.ExpectRollback()

	if _, err := storage.Orders().Create(context.Background(), order, items); err == nil {
		t.Fatal("expected item insert failure to surface")
	}
	finish(t, mock)
}

func TestOrderRepositoryGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	pickup := time.Date(2024, time.June, 3, 12, 30, 0, 0, time.UTC)
	createdAt := time.Now()

	mock.ExpectQuery("SELECT id, number, customer_name, customer_email, customer_phone, pickup_time, total_amount, notes, status, created_at").
		WithArgs(int64(7)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "number", "customer_name", "customer_email", "customer_phone", "pickup_time", "total_amount", "notes", "status", "created_at"}).
			AddRow(int64(7), "CMD-000007", "Marie", "m@e.fr", "", pickup, 9.50, "", model.OrderStatusPending, createdAt))
	mock.ExpectQuery("SELECT id, order_id, item_name, item_category, quantity, unit_price, total_price").
		WithArgs([]int64{7}).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "order_id", "item_name", "item_category", "quantity", "unit_price", "total_price"}).
			AddRow(int64(1), int64(7), "Burger Classique", "Burgers", 1, 9.50, 9.50))

	order, err := storage.Orders().GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Number != "CMD-000007" || len(order.Items) != 1 {
		t.Fatalf("unexpected order: %+v", order)
	}
	finish(t, mock)
}

func TestOrderRepositoryGetByIDNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT id, number, customer_name").
		WithArgs(int64(404)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "number", "customer_name", "customer_email", "customer_phone", "pickup_time", "total_amount", "notes", "status", "created_at"}))

	if _, err := storage.Orders().GetByID(context.Background(), 404); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	finish(t, mock)
}

func TestOrderRepositoryListActive(t *testing.T) {
	storage, mock := newMockStorage(t)
	pickup := time.Date(2024, time.June, 3, 12, 30, 0, 0, time.UTC)
	createdAt := time.Now()

	statuses := make([]string, 0, len(model.ActiveStatuses))
	for _, s := range model.ActiveStatuses {
		statuses = append(statuses, string(s))
	}

	mock.ExpectQuery("SELECT id, number, customer_name, customer_email, customer_phone, pickup_time, total_amount, notes, status, created_at").
		WithArgs(statuses).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "number", "customer_name", "customer_email", "customer_phone", "pickup_time", "total_amount", "notes", "status", "created_at"}).
			AddRow(int64(7), "CMD-000007", "Marie", "m@e.fr", "", pickup, 9.50, "", model.OrderStatusPreparing, createdAt))
	mock.ExpectQuery("SELECT id, order_id, item_name, item_category, quantity, unit_price, total_price").
		WithArgs([]int64{7}).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "order_id", "item_name", "item_category", "quantity", "unit_price", "total_price"}).
			AddRow(int64(1), int64(7), "Burger Classique", "Burgers", 1, 9.50, 9.50))

	orders, err := storage.Orders().ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 || orders[0].Status != model.OrderStatusPreparing || len(orders[0].Items) != 1 {
		t.Fatalf("unexpected orders: %+v", orders)
	}
	finish(t, mock)
}

func TestOrderRepositoryListActiveEmpty(t *testing.T) {
	storage, mock := newMockStorage(t)

	statuses := make([]string, 0, len(model.ActiveStatuses))
	for _, s := range model.ActiveStatuses {
		statuses = append(statuses, string(s))
	}
	mock.ExpectQuery("SELECT id, number, customer_name").
		WithArgs(statuses).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "number", "customer_name", "customer_email", "customer_phone", "pickup_time", "total_amount", "notes", "status", "created_at"}))

	orders, err := storage.Orders().ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders, got %+v", orders)
	}
	finish(t, mock)
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(model.OrderStatusReady, int64(7)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	if err := storage.Orders().UpdateStatus(context.Background(), 7, model.OrderStatusReady); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	finish(t, mock)
}

func TestOrderRepositoryUpdateStatusNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(model.OrderStatusReady, int64(404)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	if err := storage.Orders().UpdateStatus(context.Background(), 404, model.OrderStatusReady); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	finish(t, mock)
}

func TestHealthCheck(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectPing().WillReturnError(errors.New("ping"))
	if err := storage.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectPing()
	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	finish(t, mock)
}
