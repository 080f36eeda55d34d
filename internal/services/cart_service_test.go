package services

import (
	"testing"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
)

func TestMergeItem(t *testing.T) {
	base := []models.CartItem{
		{ID: "a", ProductID: "p1", Variation: "Large", UnitPrice: 90, Quantity: 1},
		{ID: "b", ProductID: "p2", Variation: "", UnitPrice: 40, Quantity: 2},
	}

	t.Run("same product and variation bumps quantity", func(t *testing.T) {
		items := append([]models.CartItem(nil), base...)
		items = mergeItem(items, models.CartItem{ID: "c", ProductID: "p1", Variation: "Large", UnitPrice: 90, Quantity: 2})
		if len(items) != 2 {
			t.Fatalf("got %d lines; want 2", len(items))
		}
		if items[0].Quantity != 3 {
			t.Errorf("quantity = %d; want 3", items[0].Quantity)
		}
	})

	t.Run("same product different variation appends", func(t *testing.T) {
		items := append([]models.CartItem(nil), base...)
		items = mergeItem(items, models.CartItem{ID: "c", ProductID: "p1", Variation: "Small", UnitPrice: 50, Quantity: 1})
		if len(items) != 3 {
			t.Fatalf("got %d lines; want 3", len(items))
		}
	})

	t.Run("empty cart appends", func(t *testing.T) {
		items := mergeItem(nil, models.CartItem{ID: "a", ProductID: "p1", Quantity: 1})
		if len(items) != 1 {
			t.Fatalf("got %d lines; want 1", len(items))
		}
	})
}

func TestSetQuantity(t *testing.T) {
	base := []models.CartItem{
		{ID: "a", ProductID: "p1", Quantity: 1},
		{ID: "b", ProductID: "p2", Quantity: 2},
	}

	t.Run("updates existing line", func(t *testing.T) {
		items := append([]models.CartItem(nil), base...)
		items, ok := setQuantity(items, "b", 5)
		if !ok {
			t.Fatal("setQuantity returned false for existing line")
		}
		if items[1].Quantity != 5 {
			t.Errorf("quantity = %d; want 5", items[1].Quantity)
		}
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		items := append([]models.CartItem(nil), base...)
		items, ok := setQuantity(items, "a", 0)
		if !ok {
			t.Fatal("setQuantity returned false for existing line")
		}
		if len(items) != 1 || items[0].ID != "b" {
			t.Fatalf("items = %+v; want only line b", items)
		}
	})

	t.Run("unknown line reports false", func(t *testing.T) {
		items := append([]models.CartItem(nil), base...)
		if _, ok := setQuantity(items, "nope", 3); ok {
			t.Fatal("setQuantity returned true for missing line")
		}
	})
}

func TestBuildCart(t *testing.T) {
	cart := buildCart([]models.CartItem{
		{ID: "a", UnitPrice: 250, Quantity: 2},
		{ID: "b", UnitPrice: 90, Quantity: 1},
	})
	if cart.TotalItems != 3 {
		t.Errorf("TotalItems = %d; want 3", cart.TotalItems)
	}
	if cart.TotalAmount != 590 {
		t.Errorf("TotalAmount = %v; want 590", cart.TotalAmount)
	}

	empty := buildCart(nil)
	if empty.Items == nil {
		t.Error("empty cart should serialize with an empty items array, not null")
	}
	if empty.TotalItems != 0 || empty.TotalAmount != 0 {
		t.Errorf("empty cart totals = %d, %v; want zero", empty.TotalItems, empty.TotalAmount)
	}
}
