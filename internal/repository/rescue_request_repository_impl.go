package repository

import (
	"errors"

	"petconnect/internal/domain/entity"
	domainRepo "petconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type rescueRequestRepository struct{}

func NewRescueRequestRepository() domainRepo.RescueRequestRepository {
	return &rescueRequestRepository{}
}

func (r *rescueRequestRepository) Create(db *gorm.DB, request *entity.RescueRequest) error {
	return db.Create(request).Error
}

func (r *rescueRequestRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.RescueRequest, error) {
	var request entity.RescueRequest
	err := db.Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *rescueRequestRepository) FindAll(db *gorm.DB) ([]entity.RescueRequest, error) {
	var requests []entity.RescueRequest
	err := db.Preload("User").Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *rescueRequestRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.RescueRequest, error) {
	var requests []entity.RescueRequest
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *rescueRequestRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.RequestStatus) error {
	return db.Model(&entity.RescueRequest{}).Where("id = ?", id).Update("status", status).Error
}
