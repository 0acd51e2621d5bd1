package dto

import "github.com/google/uuid"

// Request DTOs

type ToggleFavoriteRequest struct {
	AnimalID uuid.UUID `json:"animal_id" validate:"required"`
}

// Response DTOs

type ToggleFavoriteResponse struct {
	Favorited bool `json:"favorited"`
}
