package repository

import (
	"petconnect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DonationRepository interface {
	Create(db *gorm.DB, donation *entity.Donation) error
	FindAll(db *gorm.DB) ([]entity.Donation, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Donation, error)
	SumAmount(db *gorm.DB) (decimal.Decimal, error)
	SumAmountByUserID(db *gorm.DB, userID uuid.UUID) (decimal.Decimal, error)
	CountByUserID(db *gorm.DB, userID uuid.UUID) (int64, error)
}
