package store

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/model"
)

type CartStore struct{ db *gorm.DB }

// Merge adds qty to the user's cart line for the product, creating the line if
// it does not exist. The upsert rides on the (user_id, product_id) unique
// index, so concurrent adds for the same pairing cannot duplicate rows or lose
// an increment.
func (s *CartStore) Merge(userID, productID uint, qty int) error {
	item := model.CartItem{UserID: userID, ProductID: productID, Qty: qty}
	return s.db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"qty":        gorm.Expr("cart_items.qty + ?", qty),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&item).Error
}

func (s *CartStore) GetByProduct(userID, productID uint) (model.CartItem, error) {
	var it model.CartItem
	return it, s.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&it).Error
}

// GetOwned fetches a cart line only if it belongs to userID. A foreign or
// absent line is the same gorm.ErrRecordNotFound either way.
func (s *CartStore) GetOwned(userID, itemID uint) (model.CartItem, error) {
	var it model.CartItem
	return it, s.db.Where("id = ? AND user_id = ?", itemID, userID).First(&it).Error
}

func (s *CartStore) SetQty(itemID uint, qty int) error {
	return s.db.Model(&model.CartItem{}).Where("id = ?", itemID).Update("qty", qty).Error
}

func (s *CartStore) DeleteOwned(userID, itemID uint) (bool, error) {
	res := s.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&model.CartItem{})
	return res.RowsAffected == 1, res.Error
}

func (s *CartStore) Clear(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
}

func (s *CartStore) ListWithProducts(userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	return items, s.db.Preload("Product").Where("user_id = ?", userID).Order("id asc").Find(&items).Error
}
