package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RescueRequest represents a found/stray pet report filed by a user.
// Approval does not create an Animal row: registering a rescued animal
// is a separate intake step performed by the rescue team.
type RescueRequest struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	PetName     string        `gorm:"type:varchar(100);not null;default:'Unknown'" json:"pet_name"`
	Species     string        `gorm:"type:varchar(50)" json:"species"`
	Breed       string        `gorm:"type:varchar(100)" json:"breed"`
	Location    string        `gorm:"type:varchar(255)" json:"location"`
	Description string        `gorm:"type:text" json:"description"`
	Image       string        `gorm:"type:text" json:"image,omitempty"`
	Status      RequestStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (RescueRequest) TableName() string {
	return "rescue_requests"
}

func (r *RescueRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.PetName == "" {
		r.PetName = "Unknown"
	}
	return nil
}

// IsPending checks if the report is still awaiting review
func (r *RescueRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}
