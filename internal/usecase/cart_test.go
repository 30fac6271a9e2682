package usecase_test

import (
	"context"
	. "github.com/plateful/takeaway/internal/usecase"
	"testing"

	"github.com/plateful/takeaway/internal/cart"
	domainErrors "github.com/plateful/takeaway/internal/domain/errors"
	"github.com/plateful/takeaway/internal/domain/model"
	testhelpers "github.com/plateful/takeaway/internal/test"
)

func newCartUseCase() (*CartUseCase, *testhelpers.MenuRepositoryStub) {
	menu := &testhelpers.MenuRepositoryStub{Items: []model.MenuItem{
		{ID: 1, Name: "Burger Classique", Price: 9.50, Category: "Burgers"},
		{ID: 2, Name: "Frites Maison", Price: 3.50, Category: "Accompagnements"},
	}}
	return NewCartUseCase(cart.NewStore(), menu), menu
}

func TestCartUseCaseAdd(t *testing.T) {
	uc, _ := newCartUseCase()

	snap, err := uc.Add(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Count != 1 || snap.Total != 9.50 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	snap, err = uc.Add(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Count != 2 || snap.Total != 19.00 {
		t.Fatalf("expected accumulated line, got %+v", snap)
	}
}

func TestCartUseCaseAddUnknownItem(t *testing.T) {
	uc, _ := newCartUseCase()

	if _, err := uc.Add(context.Background(), 1, 404); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if snap := uc.Get(1); snap.Count != 0 {
		t.Fatalf("failed add must not touch the cart: %+v", snap)
	}
}

func TestCartUseCaseSetQuantityAndRemove(t *testing.T) {
	uc, _ := newCartUseCase()
	if _, err := uc.Add(context.Background(), 1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Add(context.Background(), 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := uc.SetQuantity(1, 1, 3)
	if snap.Count != 4 || snap.Total != 3*9.50+3.50 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	snap = uc.SetQuantity(1, 2, 0)
	if snap.Count != 3 || len(snap.Lines) != 1 {
		t.Fatalf("zero quantity must remove the line: %+v", snap)
	}

	snap = uc.Remove(1, 1)
	if snap.Count != 0 || len(snap.Lines) != 0 {
		t.Fatalf("expected empty cart: %+v", snap)
	}
}

func TestCartUseCaseClearAndIsolation(t *testing.T) {
	uc, _ := newCartUseCase()
	if _, err := uc.Add(context.Background(), 1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Add(context.Background(), 2, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc.Clear(1)
	if snap := uc.Get(1); snap.Count != 0 {
		t.Fatalf("expected cleared cart for user 1: %+v", snap)
	}
	if snap := uc.Get(2); snap.Count != 1 {
		t.Fatalf("clear must not leak across users: %+v", snap)
	}
}
