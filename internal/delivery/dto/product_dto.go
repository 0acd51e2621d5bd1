package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Image       string          `json:"image"`
}

type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Image       string          `json:"image"`
}

type PurchaseItem struct {
	ID       int `json:"id" validate:"required"`
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type PurchaseRequest struct {
	Items []PurchaseItem `json:"items" validate:"required,min=1,dive"`
}

// Response DTOs

type ProductResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type PurchaseResponse struct {
	Products []ProductResponse `json:"products"`
}
