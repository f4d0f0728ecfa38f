package services

import (
	"errors"
	"testing"
	"time"

	"food_ordering/internal/models"
)

const testToken = "session-abc"

func newTestCart(items ...models.MenuItem) (CartService, *fakeCartStore) {
	store := newFakeCartStore()
	return NewCartService(store, newFakeMenuRepo(items...), 2.99, time.Hour), store
}

func TestCartAddSnapshotsItem(t *testing.T) {
	cart, _ := newTestCart(models.MenuItem{
		ID:          1,
		Name:        "Margherita Pizza",
		Price:       14.99,
		ImageURL:    "http://img/pizza.jpg",
		IsAvailable: true,
	})

	entry, err := cart.Add(testToken, 1)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if entry.Name != "Margherita Pizza" || entry.UnitPrice != 14.99 || entry.Quantity != 1 {
		t.Fatalf("unexpected entry after add: %+v", entry)
	}

	entry, err = cart.Add(testToken, 1)
	if err != nil {
		t.Fatalf("second Add returned error: %v", err)
	}
	if entry.Quantity != 2 {
		t.Fatalf("expected quantity 2 after second add, got %d", entry.Quantity)
	}
}

func TestCartAddUnknownItem(t *testing.T) {
	cart, _ := newTestCart()

	if _, err := cart.Add(testToken, 42); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestCartAddUnavailableItem(t *testing.T) {
	cart, _ := newTestCart(models.MenuItem{ID: 1, Name: "Hidden", Price: 9.99, IsAvailable: false})

	if _, err := cart.Add(testToken, 1); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound for unavailable item, got %v", err)
	}
}

func TestCartAddDecreaseToEmpty(t *testing.T) {
	cart, _ := newTestCart(models.MenuItem{ID: 1, Name: "Item A", Price: 10.00, IsAvailable: true})

	// add, add, decrease, decrease leaves an empty cart
	cart.Add(testToken, 1)
	cart.Add(testToken, 1)
	if err := cart.Update(testToken, 1, CartActionDecrease); err != nil {
		t.Fatalf("decrease returned error: %v", err)
	}
	if err := cart.Update(testToken, 1, CartActionDecrease); err != nil {
		t.Fatalf("second decrease returned error: %v", err)
	}

	entries, _ := cart.Snapshot(testToken)
	if len(entries) != 0 {
		t.Fatalf("expected empty cart, got %+v", entries)
	}
}

func TestCartQuantityNeverBelowOne(t *testing.T) {
	cart, _ := newTestCart(
		models.MenuItem{ID: 1, Name: "Item A", Price: 10.00, IsAvailable: true},
		models.MenuItem{ID: 2, Name: "Item B", Price: 5.00, IsAvailable: true},
	)

	cart.Add(testToken, 1)
	cart.Add(testToken, 2)
	cart.Update(testToken, 1, CartActionDecrease)
	cart.Update(testToken, 1, CartActionDecrease)
	cart.Update(testToken, 2, CartActionIncrease)

	entries, _ := cart.Snapshot(testToken)
	for _, entry := range entries {
		if entry.Quantity < 1 {
			t.Fatalf("entry %s has quantity %d", entry.Name, entry.Quantity)
		}
	}
	if len(entries) != 1 || entries[0].MenuItemID != 2 || entries[0].Quantity != 2 {
		t.Fatalf("unexpected cart state: %+v", entries)
	}
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	cart, _ := newTestCart(models.MenuItem{ID: 1, Name: "Item A", Price: 10.00, IsAvailable: true})

	cart.Add(testToken, 1)
	if err := cart.Update(testToken, 1, CartActionRemove); err != nil {
		t.Fatalf("remove returned error: %v", err)
	}
	if err := cart.Update(testToken, 1, CartActionRemove); err != nil {
		t.Fatalf("second remove returned error: %v", err)
	}

	entries, _ := cart.Snapshot(testToken)
	if len(entries) != 0 {
		t.Fatalf("expected empty cart after double remove, got %+v", entries)
	}
}

func TestCartUpdateAbsentItemIsNoOp(t *testing.T) {
	cart, _ := newTestCart(models.MenuItem{ID: 1, Name: "Item A", Price: 10.00, IsAvailable: true})

	cart.Add(testToken, 1)
	if err := cart.Update(testToken, 99, CartActionIncrease); err != nil {
		t.Fatalf("update of absent item returned error: %v", err)
	}

	entries, _ := cart.Snapshot(testToken)
	if len(entries) != 1 || entries[0].Quantity != 1 {
		t.Fatalf("cart changed by no-op update: %+v", entries)
	}
}

func TestCartSnapshotKeepsInsertionOrder(t *testing.T) {
	cart, _ := newTestCart(
		models.MenuItem{ID: 1, Name: "First", Price: 1.00, IsAvailable: true},
		models.MenuItem{ID: 2, Name: "Second", Price: 2.00, IsAvailable: true},
		models.MenuItem{ID: 3, Name: "Third", Price: 3.00, IsAvailable: true},
	)

	cart.Add(testToken, 2)
	cart.Add(testToken, 1)
	cart.Add(testToken, 3)
	cart.Add(testToken, 2) // increment must not reorder

	entries, _ := cart.Snapshot(testToken)
	want := []uint{2, 1, 3}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, id := range want {
		if entries[i].MenuItemID != id {
			t.Fatalf("position %d: expected item %d, got %d", i, id, entries[i].MenuItemID)
		}
	}
}

func TestCartTotals(t *testing.T) {
	cart, _ := newTestCart()

	entries := []models.CartEntry{
		{MenuItemID: 1, Name: "Item A", UnitPrice: 10.00, Quantity: 2},
		{MenuItemID: 2, Name: "Item B", UnitPrice: 5.00, Quantity: 1},
	}

	totals := cart.Totals(entries)
	if totals.Subtotal != 25.00 {
		t.Errorf("expected subtotal 25.00, got %.2f", totals.Subtotal)
	}
	if totals.DeliveryFee != 2.99 {
		t.Errorf("expected delivery fee 2.99, got %.2f", totals.DeliveryFee)
	}
	if totals.Total != 27.99 {
		t.Errorf("expected total 27.99, got %.2f", totals.Total)
	}
}

func TestCartTotalsEmpty(t *testing.T) {
	cart, _ := newTestCart()

	totals := cart.Totals(nil)
	if totals.Subtotal != 0 || totals.DeliveryFee != 0 || totals.Total != 0 {
		t.Fatalf("expected zero totals for empty cart, got %+v", totals)
	}
}

func TestCartCount(t *testing.T) {
	cart, _ := newTestCart()

	entries := []models.CartEntry{
		{MenuItemID: 1, Quantity: 2},
		{MenuItemID: 2, Quantity: 3},
	}
	if count := cart.Count(entries); count != 5 {
		t.Fatalf("expected count 5, got %d", count)
	}
}
