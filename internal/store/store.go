// Package store holds the gorm-backed repositories. Every component receives
// its stores explicitly; there is no ambient process-wide database handle.
package store

import (
	"context"

	"gorm.io/gorm"
)

type Stores struct {
	db       *gorm.DB
	Users    *UserStore
	Products *ProductStore
	Carts    *CartStore
	Orders   *OrderStore
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		db:       db,
		Users:    &UserStore{db: db},
		Products: &ProductStore{db: db},
		Carts:    &CartStore{db: db},
		Orders:   &OrderStore{db: db},
	}
}

// Transaction runs fn with a Stores bundle bound to one database transaction.
// An error from fn rolls everything back.
func (s *Stores) Transaction(ctx context.Context, fn func(tx *Stores) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
