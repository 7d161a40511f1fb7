package store

import (
	"gorm.io/gorm"

	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/model"
)

type ProductStore struct{ db *gorm.DB }

func (s *ProductStore) Create(p *model.Product) error {
	return s.db.Create(p).Error
}

func (s *ProductStore) Get(id uint) (model.Product, error) {
	var p model.Product
	return p, s.db.First(&p, id).Error
}

func (s *ProductStore) List(offset, limit int) ([]model.Product, error) {
	var ps []model.Product
	return ps, s.db.Order("id asc").Offset(offset).Limit(limit).Find(&ps).Error
}

func (s *ProductStore) Save(p *model.Product) error {
	return s.db.Save(p).Error
}

func (s *ProductStore) Delete(id uint) (bool, error) {
	res := s.db.Delete(&model.Product{}, id)
	return res.RowsAffected == 1, res.Error
}

// DecrementStock takes qty units off a tracked product's stock. The single
// conditional UPDATE linearizes concurrent check-and-decrement sequences: of
// two racing callers, only the first sees stock >= qty. It reports whether the
// full decrement applied; when it did not (a racing checkout drained stock
// first) the remainder is floored at zero instead of going negative.
// Untracked products (stock IS NULL) are never touched.
func (s *ProductStore) DecrementStock(id uint, qty int) (bool, error) {
	res := s.db.Model(&model.Product{}).
		Where("id = ? AND stock IS NOT NULL AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 1 {
		return true, nil
	}
	res = s.db.Model(&model.Product{}).
		Where("id = ? AND stock IS NOT NULL AND stock < ?", id, qty).
		UpdateColumn("stock", 0)
	return false, res.Error
}
