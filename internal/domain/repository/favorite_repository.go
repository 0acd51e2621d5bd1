package repository

import (
	"petconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavoriteRepository manages the user ↔ animal many-to-many relation
type FavoriteRepository interface {
	IsFavorited(db *gorm.DB, userID, animalID uuid.UUID) (bool, error)
	Add(db *gorm.DB, userID, animalID uuid.UUID) error
	Remove(db *gorm.DB, userID, animalID uuid.UUID) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Animal, error)
	CountByUserID(db *gorm.DB, userID uuid.UUID) (int64, error)
}
