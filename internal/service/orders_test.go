package service

import (
	"context"
	"testing"
	"time"
)

func placeOrder(t *testing.T, d testDeps, userID, productID uint, qty int) uint {
	t.Helper()
	if _, err := d.cart.Add(context.Background(), userID, productID, qty); err != nil {
		t.Fatalf("add: %v", err)
	}
	res, err := d.checkout.Checkout(context.Background(), userID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	return res.OrderID
}

type testDeps struct {
	cart     CartService
	checkout CheckoutService
	orders   OrderService
}

func TestOrdersListNewestFirst(t *testing.T) {
	st := testStores(t)
	checkout, orders, _ := testCheckout(t, st)
	deps := testDeps{cart: NewCartService(st), checkout: checkout, orders: orders}

	u := seedUser(t, st, "lister@example.com")
	p := seedProduct(t, st, "Thing", "5.00", "USD", intp(100))

	first := placeOrder(t, deps, u.ID, p.ID, 1)
	time.Sleep(10 * time.Millisecond)
	second := placeOrder(t, deps, u.ID, p.ID, 2)

	got, err := orders.ListByUser(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("orders = %d, want 2", len(got))
	}
	if got[0].ID != second || got[1].ID != first {
		t.Fatalf("order ids = [%d %d], want newest first [%d %d]", got[0].ID, got[1].ID, second, first)
	}
	if len(got[0].Items) == 0 {
		t.Fatal("listed order missing materialized items")
	}
}

func TestOrdersOwnershipIsolation(t *testing.T) {
	st := testStores(t)
	checkout, orders, _ := testCheckout(t, st)
	deps := testDeps{cart: NewCartService(st), checkout: checkout, orders: orders}

	alice := seedUser(t, st, "alice2@example.com")
	bob := seedUser(t, st, "bob2@example.com")
	p := seedProduct(t, st, "Secret", "5.00", "USD", intp(10))

	orderID := placeOrder(t, deps, alice.ID, p.ID, 1)

	if _, err := orders.Get(bob.ID, orderID); !IsKind(err, KindNotFound) {
		t.Fatalf("foreign order get: err = %v, want not found", err)
	}
	if _, _, err := orders.Invoice(bob.ID, orderID); !IsKind(err, KindNotFound) {
		t.Fatalf("foreign invoice get: err = %v, want not found", err)
	}
	if _, err := orders.Get(alice.ID, orderID); err != nil {
		t.Fatalf("owner get: %v", err)
	}
}

func TestOrdersItemHistoryFlattens(t *testing.T) {
	st := testStores(t)
	checkout, orders, _ := testCheckout(t, st)
	cart := NewCartService(st)
	ctx := context.Background()

	u := seedUser(t, st, "flat@example.com")
	a := seedProduct(t, st, "Alpha", "1.00", "USD", intp(50))
	b := seedProduct(t, st, "Beta", "2.00", "USD", intp(50))

	// order 1: two lines
	if _, err := cart.Add(ctx, u.ID, a.ID, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := cart.Add(ctx, u.ID, b.ID, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := checkout.Checkout(ctx, u.ID); err != nil {
		t.Fatal(err)
	}
	// order 2: one line
	if _, err := cart.Add(ctx, u.ID, a.ID, 3); err != nil {
		t.Fatal(err)
	}
	if _, err := checkout.Checkout(ctx, u.ID); err != nil {
		t.Fatal(err)
	}

	items, err := orders.ItemHistory(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("history has %d items, want 3 across both orders", len(items))
	}
	for _, it := range items {
		if it.OrderID == 0 || it.NameSnapshot == "" {
			t.Fatalf("flattened item missing order linkage or snapshot: %+v", it)
		}
	}
}
