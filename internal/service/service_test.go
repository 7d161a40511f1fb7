package service

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/invoice"
	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/model"
	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/store"
)

// testStores opens a throwaway sqlite database. _txlock=immediate makes every
// transaction take the write lock up front so concurrent checkouts queue the
// way serialized postgres transactions would.
func testStores(t *testing.T) *store.Stores {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "shop.db") + "?_busy_timeout=5000&_txlock=immediate"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store.New(db)
}

func intp(n int) *int { return &n }

func seedUser(t *testing.T, st *store.Stores, email string) model.User {
	t.Helper()
	u := model.User{Email: email, PasswordHash: "x"}
	if err := st.Users.Create(&u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedProduct(t *testing.T, st *store.Stores, name, price, currency string, stock *int) model.Product {
	t.Helper()
	p := model.Product{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Currency: currency,
		Stock:    stock,
	}
	if err := st.Products.Create(&p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

// fakeEmail records sends instead of hitting SMTP.
type fakeEmail struct {
	mu    sync.Mutex
	sends []string
}

func (f *fakeEmail) Send(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, to)
	return nil
}

func testCheckout(t *testing.T, st *store.Stores) (CheckoutService, OrderService, *fakeEmail) {
	t.Helper()
	docs, err := invoice.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("invoice store: %v", err)
	}
	renderer := invoice.NewRenderer()
	email := &fakeEmail{}
	return NewCheckoutService(st, renderer, docs, email, nil),
		NewOrderService(st, renderer, docs),
		email
}

func mustStock(t *testing.T, st *store.Stores, productID uint) int {
	t.Helper()
	p, err := st.Products.Get(productID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if p.Stock == nil {
		t.Fatalf("product %d has untracked stock", productID)
	}
	return *p.Stock
}
