package service

import (
	"testing"

	"github.com/shopspring/decimal"
)

func strp(s string) *string { return &s }

func TestCatalogCreateValidation(t *testing.T) {
	st := testStores(t)
	catalog := NewCatalogService(st)

	cases := []struct {
		name string
		in   ProductInput
	}{
		{"empty name", ProductInput{Price: decimal.NewFromInt(1), Currency: "USD"}},
		{"negative price", ProductInput{Name: "X", Price: decimal.NewFromInt(-1), Currency: "USD"}},
		{"bad currency", ProductInput{Name: "X", Price: decimal.NewFromInt(1), Currency: "DOLLARS"}},
		{"negative stock", ProductInput{Name: "X", Price: decimal.NewFromInt(1), Currency: "USD", Stock: intp(-2)}},
	}
	for _, tc := range cases {
		if _, err := catalog.Create(tc.in); !IsKind(err, KindValidation) {
			t.Errorf("%s: err = %v, want validation", tc.name, err)
		}
	}
}

func TestCatalogDuplicateSKU(t *testing.T) {
	st := testStores(t)
	catalog := NewCatalogService(st)

	in := ProductInput{Name: "First", Price: decimal.NewFromInt(5), Currency: "USD", SKU: strp("SKU-1")}
	if _, err := catalog.Create(in); err != nil {
		t.Fatal(err)
	}
	in.Name = "Second"
	if _, err := catalog.Create(in); !IsKind(err, KindConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestCatalogDefaultsCurrency(t *testing.T) {
	st := testStores(t)
	catalog := NewCatalogService(st)

	p, err := catalog.Create(ProductInput{Name: "Plain", Price: decimal.NewFromInt(2)})
	if err != nil {
		t.Fatal(err)
	}
	if p.Currency != "USD" {
		t.Fatalf("currency = %q, want USD default", p.Currency)
	}
}

func TestCatalogUpdateAndDeleteMissing(t *testing.T) {
	st := testStores(t)
	catalog := NewCatalogService(st)

	in := ProductInput{Name: "X", Price: decimal.NewFromInt(1), Currency: "USD"}
	if _, err := catalog.Update(12345, in); !IsKind(err, KindNotFound) {
		t.Fatalf("update missing: err = %v, want not found", err)
	}
	if err := catalog.Delete(12345); !IsKind(err, KindNotFound) {
		t.Fatalf("delete missing: err = %v, want not found", err)
	}
}

func TestDecrementStockConditional(t *testing.T) {
	st := testStores(t)
	p := seedProduct(t, st, "Crate", "1.00", "USD", intp(5))

	ok, err := st.Products.DecrementStock(p.ID, 3)
	if err != nil || !ok {
		t.Fatalf("full decrement: ok=%v err=%v", ok, err)
	}
	if got := mustStock(t, st, p.ID); got != 2 {
		t.Fatalf("stock = %d, want 2", got)
	}

	// requesting more than remains: no negative stock, remainder floored
	ok, err = st.Products.DecrementStock(p.ID, 3)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("partial decrement reported as full")
	}
	if got := mustStock(t, st, p.ID); got != 0 {
		t.Fatalf("stock = %d, want floored 0", got)
	}
}

func TestDecrementStockIgnoresUntracked(t *testing.T) {
	st := testStores(t)
	p := seedProduct(t, st, "Stream", "1.00", "USD", nil)

	ok, err := st.Products.DecrementStock(p.ID, 10)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("untracked product reported a decrement")
	}
	got, err := st.Products.Get(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Stock != nil {
		t.Fatalf("untracked stock became %d", *got.Stock)
	}
}

func TestCatalogListPagination(t *testing.T) {
	st := testStores(t)
	catalog := NewCatalogService(st)

	for _, name := range []string{"A", "B", "C"} {
		seedProduct(t, st, name, "1.00", "USD", nil)
	}
	ps, err := catalog.List(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 1 || ps[0].Name != "B" {
		t.Fatalf("page = %+v, want just B", ps)
	}
}
