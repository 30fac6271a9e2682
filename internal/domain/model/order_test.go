package model

import "testing"

func TestOrderStatusKnown(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled,
	} {
		if !s.Known() {
			t.Fatalf("%s must be known", s)
		}
	}
	if OrderStatus("burned").Known() {
		t.Fatal("undefined status must not be known")
	}
	if OrderStatus("").Known() {
		t.Fatal("empty status must not be known")
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	if !OrderStatusCompleted.Terminal() || !OrderStatusCancelled.Terminal() {
		t.Fatal("completed and cancelled are terminal")
	}
	for _, s := range ActiveStatuses {
		if s.Terminal() {
			t.Fatalf("%s must not be terminal", s)
		}
	}
}

func TestActiveStatusesExcludeTerminal(t *testing.T) {
	if len(ActiveStatuses) != 4 {
		t.Fatalf("expected 4 active statuses, got %d", len(ActiveStatuses))
	}
	for _, s := range ActiveStatuses {
		if s == OrderStatusCompleted || s == OrderStatusCancelled {
			t.Fatalf("terminal status %s on the board", s)
		}
	}
}

func TestOrderStatusDisplay(t *testing.T) {
	if d := OrderStatusPending.Display(); d.Label != "En attente" || d.Color != "yellow" {
		t.Fatalf("unexpected display: %+v", d)
	}
	if d := OrderStatusCancelled.Display(); d.Label != "Annulée" || d.Color != "red" {
		t.Fatalf("unexpected display: %+v", d)
	}
	if d := OrderStatus("burned").Display(); d != (StatusDisplay{}) {
		t.Fatalf("unknown status must map to zero display, got %+v", d)
	}
}
