package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusPaid = "PAID"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	FullName     string    `json:"full_name,omitempty"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	CartItems []CartItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Orders    []Order    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return "users" }

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Currency    string          `gorm:"size:3;not null;default:USD" json:"currency"`
	SKU         *string         `gorm:"uniqueIndex" json:"sku,omitempty"`
	// nil means stock is untracked (unlimited); 0 means tracked and sold out.
	Stock     *int      `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) TracksStock() bool { return p.Stock != nil }

// Available reports whether qty units can be taken from current stock.
func (p *Product) Available(qty int) bool {
	return !p.TracksStock() || qty <= *p.Stock
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"-"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Qty       int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Product Product `json:"-"`
}

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"-"`
	OrderRef    string          `gorm:"uniqueIndex;not null" json:"order_ref"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Currency    string          `gorm:"size:3;not null" json:"currency"`
	Status      string          `gorm:"size:16;not null;default:PAID" json:"status"`
	// Written once after the checkout transaction commits; empty until the
	// invoice document has been rendered.
	InvoicePath string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`

	Items []OrderItem `json:"items"`
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey" json:"-"`
	OrderID   uint `gorm:"index;not null" json:"order_id"`
	ProductID uint `json:"product_id"`
	// Frozen copies of the product at order time; later catalog edits or
	// deletions never touch these.
	NameSnapshot string          `gorm:"not null" json:"name_snapshot"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Qty          int             `gorm:"not null" json:"quantity"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	CreatedAt    time.Time       `json:"-"`
}
