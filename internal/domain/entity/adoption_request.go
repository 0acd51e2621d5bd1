package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestStatus represents the review state of an adoption or rescue request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// Terminal reports whether the status is a final review outcome.
// A reviewed request is write-once: it never returns to PENDING.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// AdoptionRequest represents a user's application to adopt an animal
type AdoptionRequest struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	AnimalID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"animal_id"`
	UserID          uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	Message         string        `gorm:"type:text;not null" json:"message"`
	Status          RequestStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	ApplicationDate time.Time     `gorm:"autoCreateTime" json:"application_date"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Animal *Animal `gorm:"foreignKey:AnimalID" json:"animal,omitempty"`
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AdoptionRequest) TableName() string {
	return "adoption_requests"
}

func (a *AdoptionRequest) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsPending checks if the request is still awaiting review
func (a *AdoptionRequest) IsPending() bool {
	return a.Status == RequestStatusPending
}
