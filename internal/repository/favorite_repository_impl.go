package repository

import (
	"petconnect/internal/domain/entity"
	domainRepo "petconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type favoriteRepository struct{}

func NewFavoriteRepository() domainRepo.FavoriteRepository {
	return &favoriteRepository{}
}

func (r *favoriteRepository) IsFavorited(db *gorm.DB, userID, animalID uuid.UUID) (bool, error) {
	var count int64
	err := db.Table("user_favorite_animals").
		Where("user_id = ? AND animal_id = ?", userID, animalID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) Add(db *gorm.DB, userID, animalID uuid.UUID) error {
	user := entity.User{ID: userID}
	animal := entity.Animal{ID: animalID}
	return db.Model(&user).Association("FavoriteAnimals").Append(&animal)
}

func (r *favoriteRepository) Remove(db *gorm.DB, userID, animalID uuid.UUID) error {
	user := entity.User{ID: userID}
	animal := entity.Animal{ID: animalID}
	return db.Model(&user).Association("FavoriteAnimals").Delete(&animal)
}

func (r *favoriteRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Animal, error) {
	user := entity.User{ID: userID}
	var animals []entity.Animal
	err := db.Model(&user).Association("FavoriteAnimals").Find(&animals)
	if err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *favoriteRepository) CountByUserID(db *gorm.DB, userID uuid.UUID) (int64, error) {
	user := entity.User{ID: userID}
	return db.Model(&user).Association("FavoriteAnimals").Count(), nil
}
