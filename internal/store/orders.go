package store

import (
	"gorm.io/gorm"

	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/model"
)

type OrderStore struct{ db *gorm.DB }

// Create inserts the order together with its attached items. Only the
// checkout engine calls this, inside its transaction.
func (s *OrderStore) Create(o *model.Order) error {
	return s.db.Create(o).Error
}

// GetOwnedWithItems materializes the full order aggregate, scoped to its
// owner. Another user's order id behaves exactly like a missing one.
func (s *OrderStore) GetOwnedWithItems(userID, orderID uint) (model.Order, error) {
	var o model.Order
	err := s.db.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	return o, err
}

func (s *OrderStore) ListByUser(userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&orders).Error
	return orders, err
}

// ItemsByUser flattens every order item across all of the user's orders.
func (s *OrderStore) ItemsByUser(userID uint) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := s.db.Model(&model.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ?", userID).
		Order("order_items.order_id asc, order_items.id asc").
		Find(&items).Error
	return items, err
}

// SetInvoicePath records the rendered document's location. This is the single
// write an order receives after creation.
func (s *OrderStore) SetInvoicePath(orderID uint, path string) error {
	return s.db.Model(&model.Order{}).Where("id = ?", orderID).
		Update("invoice_path", path).Error
}

func (s *OrderStore) CountByUser(userID uint) (int64, error) {
	var n int64
	return n, s.db.Model(&model.Order{}).Where("user_id = ?", userID).Count(&n).Error
}
