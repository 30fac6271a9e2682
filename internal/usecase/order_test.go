package usecase_test

import (
	"context"
	. "github.com/plateful/takeaway/internal/usecase"
	"testing"
	"time"

	"github.com/plateful/takeaway/internal/cart"
	domainErrors "github.com/plateful/takeaway/internal/domain/errors"
	"github.com/plateful/takeaway/internal/domain/model"
	testhelpers "github.com/plateful/takeaway/internal/test"
)

var (
	testNow    = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	testPickup = time.Date(2024, time.June, 3, 12, 30, 0, 0, time.UTC)
)

func testLines() []cart.Line {
	return []cart.Line{
		{Item: model.MenuItem{ID: 1, Name: "Burger Classique", Category: "Burgers", Price: 9.50}, Quantity: 2},
		{Item: model.MenuItem{ID: 2, Name: "Frites Maison", Category: "Accompagnements", Price: 3.50}, Quantity: 1},
	}
}

func TestOrderSubmitEmptyCart(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)

	_, err := uc.Submit(context.Background(), SubmitRequest{Pickup: testPickup, Now: testNow})
	if err != domainErrors.ErrEmptyCart {
		t.Fatalf("expected empty cart error, got %v", err)
	}
	if len(repo.Created) != 0 {
		t.Fatal("validation failures must not reach storage")
	}
}

func TestOrderSubmitPickupRequired(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)

	_, err := uc.Submit(context.Background(), SubmitRequest{Lines: testLines(), Now: testNow})
	if err != domainErrors.ErrPickupRequired {
		t.Fatalf("expected pickup required error, got %v", err)
	}
	if len(repo.Created) != 0 {
		t.Fatal("validation failures must not reach storage")
	}
}

func TestOrderSubmitPickupValidation(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)

	past := time.Date(2024, time.May, 30, 12, 0, 0, 0, time.UTC)
	if _, err := uc.Submit(context.Background(), SubmitRequest{Lines: testLines(), Pickup: past, Now: testNow}); err != domainErrors.ErrPastPickup {
		t.Fatalf("expected past pickup error, got %v", err)
	}

	tooFar := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	if _, err := uc.Submit(context.Background(), SubmitRequest{Lines: testLines(), Pickup: tooFar, Now: testNow}); err != domainErrors.ErrPickupTooFar {
		t.Fatalf("expected too far error, got %v", err)
	}

	offGrid := time.Date(2024, time.June, 3, 12, 7, 0, 0, time.UTC)
	if _, err := uc.Submit(context.Background(), SubmitRequest{Lines: testLines(), Pickup: offGrid, Now: testNow}); err != domainErrors.ErrSlotUnavailable {
		t.Fatalf("expected slot unavailable error, got %v", err)
	}

	// Same-day slot at exactly now+30m sits on the exclusion boundary.
	boundary := time.Date(2024, time.June, 1, 12, 30, 0, 0, time.UTC)
	if _, err := uc.Submit(context.Background(), SubmitRequest{Lines: testLines(), Pickup: boundary, Now: testNow}); err != domainErrors.ErrSlotUnavailable {
		t.Fatalf("expected slot unavailable error at the boundary, got %v", err)
	}

	if len(repo.Created) != 0 {
		t.Fatal("validation failures must not reach storage")
	}
}

func TestOrderSubmitSnapshotsPricing(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)

	order, err := uc.Submit(context.Background(), SubmitRequest{
		Lines:    testLines(),
		Pickup:   testPickup,
		Customer: Customer{Name: "Marie Dupont", Email: "marie@example.com", Phone: "0612345678"},
		Notes:    "sans oignons",
		Now:      testNow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if order.Number == "" {
		t.Fatal("expected an assigned order number")
	}
	if order.TotalAmount != 2*9.50+3.50 {
		t.Fatalf("unexpected total: %f", order.TotalAmount)
	}
	if order.CustomerName != "Marie Dupont" || order.Notes != "sans oignons" {
		t.Fatalf("unexpected order fields: %+v", order)
	}

	stored, err := repo.GetByID(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("stored order not found: %v", err)
	}
	if len(stored.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(stored.Items))
	}
	first := stored.Items[0]
	if first.ItemName != "Burger Classique" || first.ItemCategory != "Burgers" {
		t.Fatalf("item snapshot lost name or category: %+v", first)
	}
	if first.UnitPrice != 9.50 || first.Quantity != 2 || first.TotalPrice != 19.00 {
		t.Fatalf("item snapshot lost pricing: %+v", first)
	}

	var itemsTotal float64
	for _, item := range stored.Items {
		itemsTotal += item.TotalPrice
	}
	if itemsTotal != order.TotalAmount {
		t.Fatalf("order total %f diverges from item totals %f", order.TotalAmount, itemsTotal)
	}
}

func TestOrderSubmitNotIdempotent(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)

	req := SubmitRequest{Lines: testLines(), Pickup: testPickup, Now: testNow}
	first, err := uc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID == second.ID || first.Number == second.Number {
		t.Fatalf("resubmission must create a distinct order: %v vs %v", first.Number, second.Number)
	}
}

func seedOrder(repo *testhelpers.OrderRepositoryStub, status model.OrderStatus) int64 {
	order, _ := repo.Create(context.Background(), &model.Order{Status: status, PickupTime: testPickup}, nil)
	return order.ID
}

func TestKitchenAdvanceAllowedMoves(t *testing.T) {
	cases := []struct {
		from, to model.OrderStatus
	}{
		{model.OrderStatusPending, model.OrderStatusPreparing},
		{model.OrderStatusConfirmed, model.OrderStatusPreparing},
		{model.OrderStatusPreparing, model.OrderStatusReady},
	}
	for _, tc := range cases {
		repo := testhelpers.NewOrderRepositoryStub()
		uc := NewOrderUseCase(repo)
		id := seedOrder(repo, tc.from)

		updated, err := uc.KitchenAdvance(context.Background(), id, tc.to)
		if err != nil {
			t.Fatalf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if updated.Status != tc.to {
			t.Fatalf("%s -> %s: returned order has status %s", tc.from, tc.to, updated.Status)
		}
		if len(repo.Updates) != 1 || repo.Updates[0].Status != tc.to {
			t.Fatalf("%s -> %s: unexpected updates %+v", tc.from, tc.to, repo.Updates)
		}
	}
}

func TestKitchenAdvanceRejectedMoves(t *testing.T) {
	cases := []struct {
		from, to model.OrderStatus
	}{
		{model.OrderStatusPending, model.OrderStatusReady},
		{model.OrderStatusReady, model.OrderStatusPreparing},
		{model.OrderStatusReady, model.OrderStatusCompleted},
		{model.OrderStatusCompleted, model.OrderStatusPreparing},
		{model.OrderStatusCancelled, model.OrderStatusPreparing},
		{model.OrderStatusPending, model.OrderStatusCancelled},
		{model.OrderStatusPreparing, model.OrderStatusPreparing},
	}
	for _, tc := range cases {
		repo := testhelpers.NewOrderRepositoryStub()
		uc := NewOrderUseCase(repo)
		id := seedOrder(repo, tc.from)

		if _, err := uc.KitchenAdvance(context.Background(), id, tc.to); err != domainErrors.ErrInvalidTransition {
			t.Fatalf("%s -> %s: expected invalid transition, got %v", tc.from, tc.to, err)
		}
		if len(repo.Updates) != 0 {
			t.Fatalf("%s -> %s: rejected move must not touch storage", tc.from, tc.to)
		}
	}
}

func TestKitchenAdvanceUnknownOrder(t *testing.T) {
	uc := NewOrderUseCase(testhelpers.NewOrderRepositoryStub())
	if _, err := uc.KitchenAdvance(context.Background(), 404, model.OrderStatusPreparing); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

// The manager path is deliberately unconstrained: moves the kitchen path
// rejects, including moves out of terminal states, succeed here.
func TestManagerSetStatusUnconstrained(t *testing.T) {
	cases := []struct {
		from, to model.OrderStatus
	}{
		{model.OrderStatusPending, model.OrderStatusCompleted},
		{model.OrderStatusCompleted, model.OrderStatusPending},
		{model.OrderStatusCancelled, model.OrderStatusPreparing},
		{model.OrderStatusReady, model.OrderStatusConfirmed},
		{model.OrderStatusPending, model.OrderStatusCancelled},
	}
	for _, tc := range cases {
		repo := testhelpers.NewOrderRepositoryStub()
		uc := NewOrderUseCase(repo)
		id := seedOrder(repo, tc.from)

		if err := uc.ManagerSetStatus(context.Background(), id, tc.to); err != nil {
			t.Fatalf("%s -> %s: manager move must succeed, got %v", tc.from, tc.to, err)
		}
		if len(repo.Updates) != 1 || repo.Updates[0].Status != tc.to {
			t.Fatalf("%s -> %s: unexpected updates %+v", tc.from, tc.to, repo.Updates)
		}
	}
}

func TestManagerSetStatusUnknown(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)
	id := seedOrder(repo, model.OrderStatusPending)

	if err := uc.ManagerSetStatus(context.Background(), id, model.OrderStatus("burned")); err != domainErrors.ErrUnknownStatus {
		t.Fatalf("expected unknown status error, got %v", err)
	}
	if len(repo.Updates) != 0 {
		t.Fatal("unknown status must not reach storage")
	}
}

func TestManagerSetStatusUnknownOrder(t *testing.T) {
	uc := NewOrderUseCase(testhelpers.NewOrderRepositoryStub())
	if err := uc.ManagerSetStatus(context.Background(), 404, model.OrderStatusReady); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
