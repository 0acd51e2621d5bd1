package repository

import (
	"petconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindByEmailOrUsername(db *gorm.DB, email, username string) (*entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	FindByRole(db *gorm.DB, role string) ([]entity.User, error)
}
