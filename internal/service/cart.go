package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/model"
	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/store"
)

// CartLine is one cart row joined with the live product it references,
// priced at display time from current catalog data.
type CartLine struct {
	ID          uint   `json:"id"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPrice   string `json:"unit_price"`
	Currency    string `json:"currency"`
	Qty         int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

type CartService interface {
	Add(ctx context.Context, userID, productID uint, qty int) (model.CartItem, error)
	SetQuantity(ctx context.Context, userID, itemID uint, qty int) (model.CartItem, error)
	Remove(userID, itemID uint) error
	Clear(userID uint) error
	List(userID uint) ([]CartLine, error)
}

type cartService struct{ stores *store.Stores }

func NewCartService(stores *store.Stores) CartService { return &cartService{stores: stores} }

// Add merges qty into the user's line for the product. The stock check runs
// against the merged quantity inside the same transaction, so an add that
// would take the line past current stock rolls the merge back entirely.
func (s *cartService) Add(ctx context.Context, userID, productID uint, qty int) (model.CartItem, error) {
	if qty < 1 {
		return model.CartItem{}, errValidation("quantity must be at least 1")
	}
	var out model.CartItem
	err := s.stores.Transaction(ctx, func(tx *store.Stores) error {
		p, err := tx.Products.Get(productID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("product")
		} else if err != nil {
			return err
		}
		if err := tx.Carts.Merge(userID, productID, qty); err != nil {
			return err
		}
		it, err := tx.Carts.GetByProduct(userID, productID)
		if err != nil {
			return err
		}
		if !p.Available(it.Qty) {
			return errInsufficientStock(p.Name)
		}
		it.Product = p
		out = it
		return nil
	})
	return out, err
}

func (s *cartService) SetQuantity(ctx context.Context, userID, itemID uint, qty int) (model.CartItem, error) {
	if qty < 1 {
		return model.CartItem{}, errValidation("quantity must be at least 1")
	}
	var out model.CartItem
	err := s.stores.Transaction(ctx, func(tx *store.Stores) error {
		it, err := tx.Carts.GetOwned(userID, itemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("cart item")
		} else if err != nil {
			return err
		}
		p, err := tx.Products.Get(it.ProductID)
		if err != nil {
			return err
		}
		if !p.Available(qty) {
			return errInsufficientStock(p.Name)
		}
		if err := tx.Carts.SetQty(it.ID, qty); err != nil {
			return err
		}
		it.Qty = qty
		it.Product = p
		out = it
		return nil
	})
	return out, err
}

func (s *cartService) Remove(userID, itemID uint) error {
	ok, err := s.stores.Carts.DeleteOwned(userID, itemID)
	if err != nil {
		return err
	}
	if !ok {
		return errNotFound("cart item")
	}
	return nil
}

func (s *cartService) Clear(userID uint) error {
	return s.stores.Carts.Clear(userID)
}

func (s *cartService) List(userID uint) ([]CartLine, error) {
	items, err := s.stores.Carts.ListWithProducts(userID)
	if err != nil {
		return nil, err
	}
	lines := make([]CartLine, 0, len(items))
	for _, it := range items {
		sub := it.Product.Price.Mul(decimalFromInt(it.Qty))
		lines = append(lines, CartLine{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.Product.Name,
			UnitPrice:   it.Product.Price.StringFixed(2),
			Currency:    it.Product.Currency,
			Qty:         it.Qty,
			Subtotal:    sub.StringFixed(2),
		})
	}
	return lines, nil
}
