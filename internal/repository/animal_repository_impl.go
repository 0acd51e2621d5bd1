package repository

import (
	"errors"

	"petconnect/internal/domain/entity"
	domainRepo "petconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type animalRepository struct{}

func NewAnimalRepository() domainRepo.AnimalRepository {
	return &animalRepository{}
}

func (r *animalRepository) Create(db *gorm.DB, animal *entity.Animal) error {
	return db.Create(animal).Error
}

func (r *animalRepository) FindAll(db *gorm.DB, filter *entity.AnimalFilter) ([]entity.Animal, error) {
	var animals []entity.Animal

	query := db.Preload("MedicalRecords").Order("created_at DESC")
	if filter != nil {
		if filter.Species != "" && filter.Species != "All" {
			query = query.Where("species = ?", filter.Species)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	if err := query.Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *animalRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Animal, error) {
	var animal entity.Animal
	err := db.Preload("MedicalRecords").Where("id = ?", id).First(&animal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &animal, nil
}

func (r *animalRepository) Update(db *gorm.DB, animal *entity.Animal) error {
	return db.Save(animal).Error
}

func (r *animalRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AnimalStatus) error {
	return db.Model(&entity.Animal{}).Where("id = ?", id).Update("status", status).Error
}

func (r *animalRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Animal{}).Error
}

func (r *animalRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Animal{}).Count(&total).Error
	return total, err
}

func (r *animalRepository) CountByStatus(db *gorm.DB, status entity.AnimalStatus) (int64, error) {
	var total int64
	err := db.Model(&entity.Animal{}).Where("status = ?", status).Count(&total).Error
	return total, err
}
