package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an independent marketplace catalog entity
type Product struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	Image       string          `gorm:"type:text" json:"image,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// HasStock checks whether the requested quantity can be fulfilled
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}
