package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MedicalRecord represents a single veterinary entry owned by one animal
type MedicalRecord struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AnimalID         uuid.UUID `gorm:"type:uuid;not null;index" json:"animal_id"`
	Diagnosis        string    `gorm:"type:text;not null" json:"diagnosis"`
	Treatment        string    `gorm:"type:text;not null" json:"treatment"`
	VeterinarianName string    `gorm:"type:varchar(255)" json:"veterinarian_name"`
	Date             time.Time `gorm:"not null" json:"date"`

	// Relationships
	Animal *Animal `gorm:"foreignKey:AnimalID" json:"animal,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

func (m *MedicalRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	return nil
}
