package domain

import "testing"

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusReady,
		OrderStatusDelivered,
		OrderStatusCancelled,
	} {
		if !ValidOrderStatus(status) {
			t.Fatalf("expected %s to be valid", status)
		}
	}
	if ValidOrderStatus("shipped") {
		t.Fatalf("expected shipped to be invalid")
	}
	if ValidOrderStatus("") {
		t.Fatalf("expected empty status to be invalid")
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusConfirmed, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusDelivered, true},

		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusPreparing, OrderStatusCancelled, true},
		{OrderStatusReady, OrderStatusCancelled, true},

		{OrderStatusPending, OrderStatusPreparing, false},
		{OrderStatusPending, OrderStatusReady, false},
		{OrderStatusConfirmed, OrderStatusDelivered, false},
		{OrderStatusReady, OrderStatusConfirmed, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},

		{OrderStatusPending, OrderStatusPending, true},
		{OrderStatusDelivered, OrderStatusDelivered, true},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanTransition(%s, %s) = %t, want %t", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if !OrderStatusDelivered.IsTerminal() || !OrderStatusCancelled.IsTerminal() {
		t.Fatalf("delivered and cancelled must be terminal")
	}
	if OrderStatusPending.IsTerminal() || OrderStatusReady.IsTerminal() {
		t.Fatalf("pending and ready must not be terminal")
	}
}
