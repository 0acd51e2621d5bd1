package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDonationRequest struct {
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Type      string          `json:"type" validate:"required,oneof=ONE_TIME MONTHLY"`
	TargetRaw string          `json:"target_raw"`
	Message   string          `json:"message"`
}

// Response DTOs

type DonationResponse struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	TargetRaw string          `json:"target_raw,omitempty"`
	Message   string          `json:"message,omitempty"`
	Date      time.Time       `json:"date"`
	Donor     string          `json:"donor,omitempty"`
}

type DonationListResponse struct {
	Donations []DonationResponse `json:"donations"`
	Total     int                `json:"total"`
}
