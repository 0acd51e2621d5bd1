package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAnimalRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Species     string          `json:"species" validate:"required,min=1,max=50"`
	Breed       string          `json:"breed" validate:"required,min=1,max=100"`
	Age         int             `json:"age" validate:"gte=0"`
	Gender      string          `json:"gender" validate:"omitempty,oneof=Male Female"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
	Fee         decimal.Decimal `json:"fee"`
	Images      []string        `json:"images"`
}

// UpdateAnimalRequest is a partial update: nil fields are left untouched.
type UpdateAnimalRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Species     *string          `json:"species" validate:"omitempty,min=1,max=50"`
	Breed       *string          `json:"breed" validate:"omitempty,min=1,max=100"`
	Age         *int             `json:"age" validate:"omitempty,gte=0"`
	Gender      *string          `json:"gender" validate:"omitempty,oneof=Male Female"`
	Status      *string          `json:"status" validate:"omitempty,oneof=AVAILABLE PENDING ADOPTED RESCUED"`
	Location    *string          `json:"location"`
	Description *string          `json:"description"`
	Fee         *decimal.Decimal `json:"fee"`
	Images      *[]string        `json:"images"`
}

type AnimalFilterRequest struct {
	Species string `json:"species"`
	Status  string `json:"status"`
}

// Response DTOs

type AnimalResponse struct {
	ID             uuid.UUID               `json:"id"`
	Name           string                  `json:"name"`
	Species        string                  `json:"species"`
	Breed          string                  `json:"breed"`
	Age            int                     `json:"age"`
	Gender         string                  `json:"gender"`
	Status         string                  `json:"status"`
	Location       string                  `json:"location"`
	Description    string                  `json:"description"`
	Fee            decimal.Decimal         `json:"fee"`
	Images         []string                `json:"images"`
	MedicalRecords []MedicalRecordResponse `json:"medical_records,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

type AnimalListResponse struct {
	Animals []AnimalResponse `json:"animals"`
	Total   int              `json:"total"`
}
