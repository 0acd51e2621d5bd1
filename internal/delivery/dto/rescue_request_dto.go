package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateRescueRequestRequest struct {
	PetName     string `json:"pet_name" validate:"omitempty,max=100"`
	Species     string `json:"species" validate:"required,min=1,max=50"`
	Breed       string `json:"breed" validate:"omitempty,max=100"`
	Location    string `json:"location" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
	Image       string `json:"image"`
}

// Response DTOs

type RescueRequestResponse struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	PetName     string             `json:"pet_name"`
	Species     string             `json:"species"`
	Breed       string             `json:"breed"`
	Location    string             `json:"location"`
	Description string             `json:"description"`
	Image       string             `json:"image,omitempty"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	User        *RequesterResponse `json:"user,omitempty"`
}

type RescueRequestListResponse struct {
	Requests []RescueRequestResponse `json:"requests"`
	Total    int                     `json:"total"`
}
