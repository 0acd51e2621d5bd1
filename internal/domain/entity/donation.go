package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DonationType distinguishes one-off gifts from recurring pledges
type DonationType string

const (
	DonationTypeOneTime DonationType = "ONE_TIME"
	DonationTypeMonthly DonationType = "MONTHLY"
)

// Donation is an append-only ledger entry. There is no update or delete path.
type Donation struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Type      DonationType    `gorm:"type:varchar(20);not null" json:"type"`
	TargetRaw string          `gorm:"type:varchar(255)" json:"target_raw,omitempty"`
	Message   string          `gorm:"type:text" json:"message,omitempty"`
	Date      time.Time       `gorm:"autoCreateTime;index" json:"date"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Donation) TableName() string {
	return "donations"
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
