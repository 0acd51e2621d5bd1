package usecase

import (
	"context"
	"errors"

	"petconnect/internal/converter"
	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/entity"
	"petconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAnimalNotFound = errors.New("animal not found")
)

type AnimalUsecase interface {
	Create(ctx context.Context, req *dto.CreateAnimalRequest) (*dto.AnimalResponse, error)
	GetAll(ctx context.Context, filter *entity.AnimalFilter) (*dto.AnimalListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AnimalResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAnimalRequest) (*dto.AnimalResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type animalUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	animalRepo repository.AnimalRepository
}

func NewAnimalUsecase(db *gorm.DB, log *logrus.Logger, animalRepo repository.AnimalRepository) AnimalUsecase {
	return &animalUsecase{
		db:         db,
		log:        log,
		animalRepo: animalRepo,
	}
}

// Create registers a new animal (the intake flow). Age and fee default to
// zero and new listings always start AVAILABLE.
func (u *animalUsecase) Create(ctx context.Context, req *dto.CreateAnimalRequest) (*dto.AnimalResponse, error) {
	animal := &entity.Animal{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Age:         req.Age,
		Gender:      req.Gender,
		Status:      entity.AnimalStatusAvailable,
		Location:    req.Location,
		Description: req.Description,
		Fee:         req.Fee,
		Images:      req.Images,
	}
	if animal.Images == nil {
		animal.Images = entity.StringList{}
	}

	if err := u.animalRepo.Create(u.db.WithContext(ctx), animal); err != nil {
		u.log.Warnf("Failed to create animal: %+v", err)
		return nil, err
	}

	u.log.Infof("Animal created: id=%s, name=%s, species=%s", animal.ID, animal.Name, animal.Species)
	return converter.AnimalToResponse(animal), nil
}

func (u *animalUsecase) GetAll(ctx context.Context, filter *entity.AnimalFilter) (*dto.AnimalListResponse, error) {
	animals, err := u.animalRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list animals: %+v", err)
		return nil, err
	}

	return &dto.AnimalListResponse{
		Animals: converter.AnimalsToResponses(animals),
		Total:   len(animals),
	}, nil
}

func (u *animalUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AnimalResponse, error) {
	animal, err := u.animalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find animal %s: %+v", id, err)
		return nil, err
	}
	if animal == nil {
		return nil, ErrAnimalNotFound
	}

	return converter.AnimalToResponse(animal), nil
}

// Update applies a partial update; only fields present in the request change.
// Status changes through this path are manual corrections by staff, the
// adoption flow sets ADOPTED on its own.
func (u *animalUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAnimalRequest) (*dto.AnimalResponse, error) {
	db := u.db.WithContext(ctx)

	animal, err := u.animalRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find animal %s: %+v", id, err)
		return nil, err
	}
	if animal == nil {
		return nil, ErrAnimalNotFound
	}

	if req.Name != nil {
		animal.Name = *req.Name
	}
	if req.Species != nil {
		animal.Species = *req.Species
	}
	if req.Breed != nil {
		animal.Breed = *req.Breed
	}
	if req.Age != nil {
		animal.Age = *req.Age
	}
	if req.Gender != nil {
		animal.Gender = *req.Gender
	}
	if req.Status != nil {
		animal.Status = entity.AnimalStatus(*req.Status)
	}
	if req.Location != nil {
		animal.Location = *req.Location
	}
	if req.Description != nil {
		animal.Description = *req.Description
	}
	if req.Fee != nil {
		animal.Fee = *req.Fee
	}
	if req.Images != nil {
		animal.Images = *req.Images
	}

	if err := u.animalRepo.Update(db, animal); err != nil {
		u.log.Warnf("Failed to update animal %s: %+v", id, err)
		return nil, err
	}

	return converter.AnimalToResponse(animal), nil
}

func (u *animalUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	animal, err := u.animalRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find animal %s: %+v", id, err)
		return err
	}
	if animal == nil {
		return ErrAnimalNotFound
	}

	if err := u.animalRepo.Delete(db, id); err != nil {
		u.log.Warnf("Failed to delete animal %s: %+v", id, err)
		return err
	}

	u.log.Infof("Animal deleted: id=%s, name=%s", id, animal.Name)
	return nil
}
