package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AnimalStatus represents the adoption lifecycle state of an animal
type AnimalStatus string

const (
	AnimalStatusAvailable AnimalStatus = "AVAILABLE"
	AnimalStatusPending   AnimalStatus = "PENDING"
	AnimalStatusAdopted   AnimalStatus = "ADOPTED"
	AnimalStatusRescued   AnimalStatus = "RESCUED"
)

// Animal represents a pet listed for adoption
type Animal struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Species     string          `gorm:"type:varchar(50);not null;index" json:"species"`
	Breed       string          `gorm:"type:varchar(100);not null" json:"breed"`
	Age         int             `gorm:"not null;default:0" json:"age"`
	Gender      string          `gorm:"type:varchar(10)" json:"gender"`
	Status      AnimalStatus    `gorm:"type:varchar(20);not null;default:'AVAILABLE';index" json:"status"`
	Location    string          `gorm:"type:varchar(255)" json:"location"`
	Description string          `gorm:"type:text" json:"description"`
	Fee         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"fee"`
	Images      StringList      `gorm:"type:jsonb" json:"images"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	MedicalRecords []MedicalRecord `gorm:"foreignKey:AnimalID;constraint:OnDelete:CASCADE" json:"medical_records,omitempty"`
}

func (Animal) TableName() string {
	return "animals"
}

func (a *Animal) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsAvailable checks if the animal can still receive adoption requests
func (a *Animal) IsAvailable() bool {
	return a.Status == AnimalStatusAvailable
}

// IsAdopted checks if the animal has been adopted
func (a *Animal) IsAdopted() bool {
	return a.Status == AnimalStatusAdopted
}

// StringList stores a list of image URLs as a JSON column
type StringList []string

// Value implements driver.Valuer
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}

	var result []string
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*s = StringList(result)
	return nil
}
