package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAdoptionRequestRequest struct {
	AnimalID uuid.UUID `json:"animal_id" validate:"required"`
	Message  string    `json:"message" validate:"required,min=1"`
}

// ReviewRequestRequest carries the terminal status an ADMIN (or RESCUE, for
// rescue reports) assigns to a pending request.
type ReviewRequestRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

// Response DTOs

type RequesterResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AdoptionRequestResponse struct {
	ID              uuid.UUID          `json:"id"`
	AnimalID        uuid.UUID          `json:"animal_id"`
	UserID          uuid.UUID          `json:"user_id"`
	Message         string             `json:"message"`
	Status          string             `json:"status"`
	ApplicationDate time.Time          `json:"application_date"`
	Animal          *AnimalResponse    `json:"animal,omitempty"`
	User            *RequesterResponse `json:"user,omitempty"`
}

type AdoptionRequestListResponse struct {
	Requests []AdoptionRequestResponse `json:"requests"`
	Total    int                       `json:"total"`
}
