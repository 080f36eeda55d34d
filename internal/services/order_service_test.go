package services

import (
	"testing"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{models.OrderPending, models.OrderConfirmed, true},
		{models.OrderPending, models.OrderCancelled, true},
		{models.OrderConfirmed, models.OrderPreparing, true},
		{models.OrderConfirmed, models.OrderCancelled, true},
		{models.OrderPreparing, models.OrderOutForDelivery, true},
		{models.OrderOutForDelivery, models.OrderDelivered, true},

		{models.OrderPending, models.OrderDelivered, false},
		{models.OrderPending, models.OrderPreparing, false},
		{models.OrderPreparing, models.OrderCancelled, false},
		{models.OrderOutForDelivery, models.OrderCancelled, false},
		{models.OrderDelivered, models.OrderPending, false},
		{models.OrderDelivered, models.OrderCancelled, false},
		{models.OrderCancelled, models.OrderConfirmed, false},
		{models.OrderConfirmed, models.OrderConfirmed, false},
		{"", models.OrderConfirmed, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v; want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestPublishDoesNotBlock(t *testing.T) {
	blocked := make(chan models.OrderEvent) // unbuffered, nobody reading
	s := &OrderService{Events: blocked}

	// Returns immediately; a blocking send would hang the test.
	s.publish(models.Order{ID: "o1", Status: models.OrderPending, TotalAmount: 500})

	buffered := make(chan models.OrderEvent, 1)
	s.Events = buffered
	s.publish(models.Order{ID: "o2", UserID: 7, Status: models.OrderConfirmed, TotalAmount: 250})

	event := <-buffered
	if event.OrderID != "o2" || event.UserID != 7 || event.Status != models.OrderConfirmed || event.Total != 250 {
		t.Errorf("event = %+v", event)
	}
}

func TestPublishNilChannel(t *testing.T) {
	s := &OrderService{}
	s.publish(models.Order{ID: "o1"}) // must not panic
}
