package store

import (
	"gorm.io/gorm"

	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/model"
)

type UserStore struct{ db *gorm.DB }

func (s *UserStore) Create(u *model.User) error {
	return s.db.Create(u).Error
}

func (s *UserStore) Get(id uint) (model.User, error) {
	var u model.User
	return u, s.db.First(&u, id).Error
}

func (s *UserStore) GetByEmail(email string) (model.User, error) {
	var u model.User
	return u, s.db.Where("email = ?", email).First(&u).Error
}
