package repository

import (
	"petconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnimalRepository interface {
	Create(db *gorm.DB, animal *entity.Animal) error
	FindAll(db *gorm.DB, filter *entity.AnimalFilter) ([]entity.Animal, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Animal, error)
	Update(db *gorm.DB, animal *entity.Animal) error
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AnimalStatus) error
	Delete(db *gorm.DB, id uuid.UUID) error
	Count(db *gorm.DB) (int64, error)
	CountByStatus(db *gorm.DB, status entity.AnimalStatus) (int64, error)
}
