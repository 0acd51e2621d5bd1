package repository

import (
	"petconnect/internal/domain/entity"
	domainRepo "petconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type donationRepository struct{}

func NewDonationRepository() domainRepo.DonationRepository {
	return &donationRepository{}
}

func (r *donationRepository) Create(db *gorm.DB, donation *entity.Donation) error {
	return db.Create(donation).Error
}

func (r *donationRepository) FindAll(db *gorm.DB) ([]entity.Donation, error) {
	var donations []entity.Donation
	err := db.Preload("User").Order("date DESC").Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Donation, error) {
	var donations []entity.Donation
	err := db.Where("user_id = ?", userID).Order("date DESC").Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) SumAmount(db *gorm.DB) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := db.Model(&entity.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *donationRepository) SumAmountByUserID(db *gorm.DB, userID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := db.Model(&entity.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&sum).Error
	return sum, err
}

func (r *donationRepository) CountByUserID(db *gorm.DB, userID uuid.UUID) (int64, error) {
	var total int64
	err := db.Model(&entity.Donation{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}
