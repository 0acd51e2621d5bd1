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

var ErrInvalidDonationAmount = errors.New("donation amount must be positive")

type DonationUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateDonationRequest) (*dto.DonationResponse, error)
	List(ctx context.Context, userID uuid.UUID, role string) (*dto.DonationListResponse, error)
}

type donationUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	donationRepo repository.DonationRepository
}

func NewDonationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	donationRepo repository.DonationRepository,
) DonationUsecase {
	return &donationUsecase{
		db:           db,
		log:          log,
		donationRepo: donationRepo,
	}
}

// Create records a donation. The ledger is append-only, there is no update
// or delete path.
func (u *donationUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateDonationRequest) (*dto.DonationResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidDonationAmount
	}

	donation := &entity.Donation{
		UserID:    userID,
		Amount:    req.Amount,
		Type:      entity.DonationType(req.Type),
		TargetRaw: req.TargetRaw,
		Message:   req.Message,
	}

	if err := u.donationRepo.Create(u.db.WithContext(ctx), donation); err != nil {
		u.log.Warnf("Failed to create donation: %+v", err)
		return nil, err
	}

	return converter.DonationToResponse(donation), nil
}

// List returns the caller's own donations, or every donation for ADMIN.
func (u *donationUsecase) List(ctx context.Context, userID uuid.UUID, role string) (*dto.DonationListResponse, error) {
	db := u.db.WithContext(ctx)

	var donations []entity.Donation
	var err error
	if role == entity.RoleAdmin {
		donations, err = u.donationRepo.FindAll(db)
	} else {
		donations, err = u.donationRepo.FindByUserID(db, userID)
	}
	if err != nil {
		u.log.Warnf("Failed to list donations: %+v", err)
		return nil, err
	}

	return &dto.DonationListResponse{
		Donations: converter.DonationsToResponses(donations),
		Total:     len(donations),
	}, nil
}
