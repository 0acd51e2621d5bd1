package repository

import (
	"petconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdoptionRequestRepository interface {
	Create(db *gorm.DB, request *entity.AdoptionRequest) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.AdoptionRequest, error)
	FindAll(db *gorm.DB) ([]entity.AdoptionRequest, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.AdoptionRequest, error)
	FindPendingByUserAndAnimal(db *gorm.DB, userID, animalID uuid.UUID) (*entity.AdoptionRequest, error)
	FindPendingByAnimal(db *gorm.DB, animalID uuid.UUID) ([]entity.AdoptionRequest, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.RequestStatus) error
	CountByStatus(db *gorm.DB, status entity.RequestStatus) (int64, error)
	CountByUserID(db *gorm.DB, userID uuid.UUID) (int64, error)
}
