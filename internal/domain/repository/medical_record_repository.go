package repository

import (
	"petconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error)
	FindByAnimalID(db *gorm.DB, animalID uuid.UUID) ([]entity.MedicalRecord, error)
	Delete(db *gorm.DB, id uuid.UUID) error
}
