package service

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/model"
	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/store"
)

type ProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	SKU         *string         `json:"sku"`
	Stock       *int            `json:"stock"`
}

type CatalogService interface {
	Create(in ProductInput) (model.Product, error)
	Get(id uint) (model.Product, error)
	List(offset, limit int) ([]model.Product, error)
	Update(id uint, in ProductInput) (model.Product, error)
	Delete(id uint) error
}

type catalogService struct{ stores *store.Stores }

func NewCatalogService(stores *store.Stores) CatalogService {
	return &catalogService{stores: stores}
}

func validateProduct(in *ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return errValidation("product name is required")
	}
	if in.Price.IsNegative() {
		return errValidation("price must not be negative")
	}
	if in.Currency == "" {
		in.Currency = "USD"
	}
	in.Currency = strings.ToUpper(in.Currency)
	if len(in.Currency) != 3 {
		return errValidation("currency must be a 3-letter code")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return errValidation("stock must not be negative")
	}
	return nil
}

func (s *catalogService) Create(in ProductInput) (model.Product, error) {
	if err := validateProduct(&in); err != nil {
		return model.Product{}, err
	}
	p := model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Currency:    in.Currency,
		SKU:         in.SKU,
		Stock:       in.Stock,
	}
	if err := s.stores.Products.Create(&p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.Product{}, errConflict("sku already exists")
		}
		return model.Product{}, err
	}
	return p, nil
}

func (s *catalogService) Get(id uint) (model.Product, error) {
	p, err := s.stores.Products.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, errNotFound("product")
	}
	return p, err
}

func (s *catalogService) List(offset, limit int) ([]model.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.stores.Products.List(offset, limit)
}

func (s *catalogService) Update(id uint, in ProductInput) (model.Product, error) {
	if err := validateProduct(&in); err != nil {
		return model.Product{}, err
	}
	p, err := s.stores.Products.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, errNotFound("product")
	} else if err != nil {
		return model.Product{}, err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Currency = in.Currency
	p.SKU = in.SKU
	p.Stock = in.Stock
	if err := s.stores.Products.Save(&p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.Product{}, errConflict("sku already exists")
		}
		return model.Product{}, err
	}
	return p, nil
}

func (s *catalogService) Delete(id uint) error {
	ok, err := s.stores.Products.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return errNotFound("product")
	}
	return nil
}
