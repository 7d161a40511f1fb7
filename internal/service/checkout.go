package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/metrics"
	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/model"
	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/store"
)

// InvoiceRenderer turns a finalized order into document bytes.
type InvoiceRenderer interface {
	Render(o model.Order, customerEmail string) ([]byte, error)
}

// DocumentStore persists one rendered document per order.
type DocumentStore interface {
	Write(orderID uint, data []byte) (string, error)
	Read(orderID uint) ([]byte, error)
	Exists(orderID uint) bool
}

// CheckoutResult is what the checkout endpoint returns: the order identity
// plus a stable locator for the invoice document.
type CheckoutResult struct {
	OrderID     uint   `json:"order_id"`
	OrderRef    string `json:"order_ref"`
	TotalAmount string `json:"total_amount"`
	Currency    string `json:"currency"`
	InvoiceURL  string `json:"invoice_url"`
}

type CheckoutService interface {
	Checkout(ctx context.Context, userID uint) (CheckoutResult, error)
}

type checkoutService struct {
	stores   *store.Stores
	renderer InvoiceRenderer
	docs     DocumentStore
	email    EmailService
	metrics  *metrics.Checkout
}

func NewCheckoutService(stores *store.Stores, renderer InvoiceRenderer, docs DocumentStore, email EmailService, m *metrics.Checkout) CheckoutService {
	return &checkoutService{stores: stores, renderer: renderer, docs: docs, email: email, metrics: m}
}

func decimalFromInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout converts the user's cart into one immutable order. Validation,
// order creation, item snapshots, stock decrements and the cart clear commit
// together or not at all; invoice rendering and the confirmation mail happen
// after the transaction and never undo it.
func (s *checkoutService) Checkout(ctx context.Context, userID uint) (CheckoutResult, error) {
	var order model.Order
	err := s.stores.Transaction(ctx, func(tx *store.Stores) error {
		items, err := tx.Carts.ListWithProducts(userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return errEmptyCart()
		}

		// Re-load each product inside the transaction and validate before
		// any write. The authoritative race check is the conditional
		// decrement below; this pass rejects the obvious cases first.
		products := make([]model.Product, len(items))
		total := decimal.Zero
		currency := ""
		oitems := make([]model.OrderItem, 0, len(items))
		for i, it := range items {
			p, err := tx.Products.Get(it.ProductID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound("product")
			} else if err != nil {
				return err
			}
			if !p.Available(it.Qty) {
				return errInsufficientStock(p.Name)
			}
			if currency == "" {
				currency = p.Currency
			} else if currency != p.Currency {
				return errValidation("cart mixes currencies %s and %s", currency, p.Currency)
			}
			sub := p.Price.Mul(decimalFromInt(it.Qty))
			total = total.Add(sub)
			oitems = append(oitems, model.OrderItem{
				ProductID:    p.ID,
				NameSnapshot: p.Name,
				UnitPrice:    p.Price,
				Qty:          it.Qty,
				Subtotal:     sub,
			})
			products[i] = p
		}

		order = model.Order{
			UserID:      userID,
			OrderRef:    newOrderRef(),
			TotalAmount: total,
			Currency:    currency,
			Status:      model.OrderStatusPaid,
			Items:       oitems,
		}
		if err := tx.Orders.Create(&order); err != nil {
			return err
		}

		for i, it := range items {
			p := products[i]
			if !p.TracksStock() {
				continue
			}
			ok, err := tx.Products.DecrementStock(p.ID, it.Qty)
			if err != nil {
				return err
			}
			if !ok {
				// a concurrent checkout drained the stock between our
				// validation read and this decrement
				return errInsufficientStock(p.Name)
			}
		}

		return tx.Carts.Clear(userID)
	})
	if err != nil {
		s.metrics.Observe(string(ErrKind(err)), 0)
		return CheckoutResult{}, err
	}

	user, uerr := s.stores.Users.Get(userID)
	if uerr != nil {
		log.Printf("checkout: load user %d: %v", userID, uerr)
	}

	// The order is committed and listable from here on; a failed render only
	// leaves the invoice missing until the next retrieval regenerates it.
	if err := EnsureInvoice(s.stores, s.renderer, s.docs, &order, user.Email); err != nil {
		log.Printf("checkout: invoice for order %d: %v", order.ID, err)
	}

	if uerr == nil {
		total, _ := order.TotalAmount.Float64()
		if err := s.email.Send(user.Email, "Order confirmation",
			fmt.Sprintf("Thanks! Your order %s total %s %.2f was received.", order.OrderRef, order.Currency, total)); err != nil {
			log.Printf("checkout: confirmation mail for order %d: %v", order.ID, err)
		}
	}

	amount, _ := order.TotalAmount.Float64()
	s.metrics.Observe("success", amount)
	return CheckoutResult{
		OrderID:     order.ID,
		OrderRef:    order.OrderRef,
		TotalAmount: order.TotalAmount.StringFixed(2),
		Currency:    order.Currency,
		InvoiceURL:  fmt.Sprintf("/api/orders/%d/invoice", order.ID),
	}, nil
}

// EnsureInvoice renders and persists the order's document unless it already
// exists. Keyed by order id, safe to call repeatedly; it never creates a
// second order.
func EnsureInvoice(st *store.Stores, r InvoiceRenderer, docs DocumentStore, o *model.Order, customerEmail string) error {
	if o.InvoicePath != "" && docs.Exists(o.ID) {
		return nil
	}
	data, err := r.Render(*o, customerEmail)
	if err != nil {
		return err
	}
	path, err := docs.Write(o.ID, data)
	if err != nil {
		return err
	}
	if err := st.Orders.SetInvoicePath(o.ID, path); err != nil {
		return err
	}
	o.InvoicePath = path
	return nil
}
