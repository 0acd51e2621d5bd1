package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMedicalRecordRequest struct {
	AnimalID         uuid.UUID `json:"animal_id" validate:"required"`
	Diagnosis        string    `json:"diagnosis" validate:"required,min=1"`
	Treatment        string    `json:"treatment" validate:"required,min=1"`
	VeterinarianName string    `json:"veterinarian_name" validate:"omitempty,max=255"`
	Date             string    `json:"date" validate:"omitempty"` // Format: YYYY-MM-DD
}

// Response DTOs

type MedicalRecordResponse struct {
	ID               uuid.UUID `json:"id"`
	AnimalID         uuid.UUID `json:"animal_id"`
	Diagnosis        string    `json:"diagnosis"`
	Treatment        string    `json:"treatment"`
	VeterinarianName string    `json:"veterinarian_name"`
	Date             time.Time `json:"date"`
}
