package usecase

import (
	"context"

	"petconnect/internal/converter"
	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FavoriteUsecase interface {
	Toggle(ctx context.Context, userID, animalID uuid.UUID) (*dto.ToggleFavoriteResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]dto.AnimalResponse, error)
}

type favoriteUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	favoriteRepo repository.FavoriteRepository
	animalRepo   repository.AnimalRepository
}

func NewFavoriteUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	favoriteRepo repository.FavoriteRepository,
	animalRepo repository.AnimalRepository,
) FavoriteUsecase {
	return &favoriteUsecase{
		db:           db,
		log:          log,
		favoriteRepo: favoriteRepo,
		animalRepo:   animalRepo,
	}
}

// Toggle flips the favorite state for the given user and animal. Applying it
// twice always returns to the starting state.
func (u *favoriteUsecase) Toggle(ctx context.Context, userID, animalID uuid.UUID) (*dto.ToggleFavoriteResponse, error) {
	db := u.db.WithContext(ctx)

	animal, err := u.animalRepo.FindByID(db, animalID)
	if err != nil {
		u.log.Warnf("Failed to find animal %s: %+v", animalID, err)
		return nil, err
	}
	if animal == nil {
		return nil, ErrAnimalNotFound
	}

	favorited, err := u.favoriteRepo.IsFavorited(db, userID, animalID)
	if err != nil {
		u.log.Warnf("Failed to check favorite state: %+v", err)
		return nil, err
	}

	if favorited {
		if err := u.favoriteRepo.Remove(db, userID, animalID); err != nil {
			u.log.Warnf("Failed to remove favorite: %+v", err)
			return nil, err
		}
	} else {
		if err := u.favoriteRepo.Add(db, userID, animalID); err != nil {
			u.log.Warnf("Failed to add favorite: %+v", err)
			return nil, err
		}
	}

	return &dto.ToggleFavoriteResponse{Favorited: !favorited}, nil
}

func (u *favoriteUsecase) List(ctx context.Context, userID uuid.UUID) ([]dto.AnimalResponse, error) {
	animals, err := u.favoriteRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list favorites for user %s: %+v", userID, err)
		return nil, err
	}

	return converter.AnimalsToResponses(animals), nil
}
