package repository

import (
	"errors"

	"petconnect/internal/domain/entity"
	domainRepo "petconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type adoptionRequestRepository struct{}

func NewAdoptionRequestRepository() domainRepo.AdoptionRequestRepository {
	return &adoptionRequestRepository{}
}

func (r *adoptionRequestRepository) Create(db *gorm.DB, request *entity.AdoptionRequest) error {
	return db.Create(request).Error
}

func (r *adoptionRequestRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.AdoptionRequest, error) {
	var request entity.AdoptionRequest
	err := db.Preload("Animal").Preload("User").Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *adoptionRequestRepository) FindAll(db *gorm.DB) ([]entity.AdoptionRequest, error) {
	var requests []entity.AdoptionRequest
	err := db.Preload("Animal").Preload("User").
		Order("application_date DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *adoptionRequestRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.AdoptionRequest, error) {
	var requests []entity.AdoptionRequest
	err := db.Preload("Animal").
		Where("user_id = ?", userID).
		Order("application_date DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *adoptionRequestRepository) FindPendingByUserAndAnimal(db *gorm.DB, userID, animalID uuid.UUID) (*entity.AdoptionRequest, error) {
	var request entity.AdoptionRequest
	err := db.Where("user_id = ? AND animal_id = ? AND status = ?", userID, animalID, entity.RequestStatusPending).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *adoptionRequestRepository) FindPendingByAnimal(db *gorm.DB, animalID uuid.UUID) ([]entity.AdoptionRequest, error) {
	var requests []entity.AdoptionRequest
	err := db.Where("animal_id = ? AND status = ?", animalID, entity.RequestStatusPending).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *adoptionRequestRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.RequestStatus) error {
	return db.Model(&entity.AdoptionRequest{}).Where("id = ?", id).Update("status", status).Error
}

func (r *adoptionRequestRepository) CountByStatus(db *gorm.DB, status entity.RequestStatus) (int64, error) {
	var total int64
	err := db.Model(&entity.AdoptionRequest{}).Where("status = ?", status).Count(&total).Error
	return total, err
}

func (r *adoptionRequestRepository) CountByUserID(db *gorm.DB, userID uuid.UUID) (int64, error) {
	var total int64
	err := db.Model(&entity.AdoptionRequest{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}
