package repository

import (
	"petconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RescueRequestRepository interface {
	Create(db *gorm.DB, request *entity.RescueRequest) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.RescueRequest, error)
	FindAll(db *gorm.DB) ([]entity.RescueRequest, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.RescueRequest, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.RequestStatus) error
}
