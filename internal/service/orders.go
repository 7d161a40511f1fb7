package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/model"
	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/store"
)

type OrderService interface {
	Get(userID, orderID uint) (model.Order, error)
	ListByUser(userID uint) ([]model.Order, error)
	ItemHistory(userID uint) ([]model.OrderItem, error)
	// Invoice returns the rendered document bytes and content type,
	// regenerating the document if it is missing.
	Invoice(userID, orderID uint) ([]byte, string, error)
}

type orderService struct {
	stores   *store.Stores
	renderer InvoiceRenderer
	docs     DocumentStore
}

func NewOrderService(stores *store.Stores, renderer InvoiceRenderer, docs DocumentStore) OrderService {
	return &orderService{stores: stores, renderer: renderer, docs: docs}
}

func (s *orderService) Get(userID, orderID uint) (model.Order, error) {
	o, err := s.stores.Orders.GetOwnedWithItems(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, errNotFound("order")
	}
	return o, err
}

func (s *orderService) ListByUser(userID uint) ([]model.Order, error) {
	return s.stores.Orders.ListByUser(userID)
}

func (s *orderService) ItemHistory(userID uint) ([]model.OrderItem, error) {
	return s.stores.Orders.ItemsByUser(userID)
}

func (s *orderService) Invoice(userID, orderID uint) ([]byte, string, error) {
	o, err := s.stores.Orders.GetOwnedWithItems(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", errNotFound("order")
	} else if err != nil {
		return nil, "", err
	}

	u, err := s.stores.Users.Get(userID)
	if err != nil {
		return nil, "", err
	}
	if err := EnsureInvoice(s.stores, s.renderer, s.docs, &o, u.Email); err != nil {
		return nil, "", errNotFound("invoice")
	}
	data, err := s.docs.Read(o.ID)
	if err != nil {
		return nil, "", errNotFound("invoice")
	}
	return data, "application/pdf", nil
}
