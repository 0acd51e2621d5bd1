package usecase

import (
	"context"

	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/entity"
	"petconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type StatsUsecase interface {
	GetStats(ctx context.Context, userID uuid.UUID, role string) (*dto.StatsResponse, error)
}

type statsUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	animalRepo   repository.AnimalRepository
	adoptionRepo repository.AdoptionRequestRepository
	donationRepo repository.DonationRepository
	favoriteRepo repository.FavoriteRepository
}

func NewStatsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	animalRepo repository.AnimalRepository,
	adoptionRepo repository.AdoptionRequestRepository,
	donationRepo repository.DonationRepository,
	favoriteRepo repository.FavoriteRepository,
) StatsUsecase {
	return &statsUsecase{
		db:           db,
		log:          log,
		animalRepo:   animalRepo,
		adoptionRepo: adoptionRepo,
		donationRepo: donationRepo,
		favoriteRepo: favoriteRepo,
	}
}

// GetStats returns dashboard numbers shaped by the caller's role.
func (u *statsUsecase) GetStats(ctx context.Context, userID uuid.UUID, role string) (*dto.StatsResponse, error) {
	db := u.db.WithContext(ctx)

	switch role {
	case entity.RoleAdmin:
		return u.adminStats(db)
	case entity.RoleRescue:
		return u.rescueStats(db)
	default:
		return u.memberStats(db, userID)
	}
}

func (u *statsUsecase) adminStats(db *gorm.DB) (*dto.StatsResponse, error) {
	pending, err := u.adoptionRepo.CountByStatus(db, entity.RequestStatusPending)
	if err != nil {
		u.log.Warnf("Failed to count pending requests: %+v", err)
		return nil, err
	}

	animals, err := u.animalRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count animals: %+v", err)
		return nil, err
	}

	revenue, err := u.donationRepo.SumAmount(db)
	if err != nil {
		u.log.Warnf("Failed to sum donations: %+v", err)
		return nil, err
	}

	return &dto.StatsResponse{
		PendingApprovals: &pending,
		TotalAnimals:     &animals,
		PlatformRevenue:  &revenue,
	}, nil
}

func (u *statsUsecase) rescueStats(db *gorm.DB) (*dto.StatsResponse, error) {
	available, err := u.animalRepo.CountByStatus(db, entity.AnimalStatusAvailable)
	if err != nil {
		u.log.Warnf("Failed to count available animals: %+v", err)
		return nil, err
	}

	pending, err := u.adoptionRepo.CountByStatus(db, entity.RequestStatusPending)
	if err != nil {
		u.log.Warnf("Failed to count pending requests: %+v", err)
		return nil, err
	}

	return &dto.StatsResponse{
		ActiveListings:   &available,
		PendingInquiries: &pending,
	}, nil
}

func (u *statsUsecase) memberStats(db *gorm.DB, userID uuid.UUID) (*dto.StatsResponse, error) {
	applications, err := u.adoptionRepo.CountByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to count applications for user %s: %+v", userID, err)
		return nil, err
	}

	favorites, err := u.favoriteRepo.CountByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to count favorites for user %s: %+v", userID, err)
		return nil, err
	}

	contributed, err := u.donationRepo.SumAmountByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to sum donations for user %s: %+v", userID, err)
		return nil, err
	}

	impact, err := u.donationRepo.CountByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to count donations for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.StatsResponse{
		MyApplications:   &applications,
		Favorites:        &favorites,
		TotalContributed: &contributed,
		ImpactCount:      &impact,
	}, nil
}
