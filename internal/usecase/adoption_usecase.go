package usecase

import (
	"context"
	"errors"
	"fmt"

	"petconnect/internal/converter"
	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/entity"
	"petconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound        = errors.New("adoption request not found")
	ErrAnimalNotAvailable     = errors.New("animal is not available for adoption")
	ErrDuplicateRequest       = errors.New("you already have a pending request for this animal")
	ErrRequestAlreadyReviewed = errors.New("request has already been reviewed")
	ErrInvalidReviewStatus    = errors.New("status must be APPROVED or REJECTED")
)

type AdoptionUsecase interface {
	Submit(ctx context.Context, userID uuid.UUID, req *dto.CreateAdoptionRequestRequest) (*dto.AdoptionRequestResponse, error)
	List(ctx context.Context, userID uuid.UUID, role string) (*dto.AdoptionRequestListResponse, error)
	Review(ctx context.Context, requestID uuid.UUID, status entity.RequestStatus) (*dto.AdoptionRequestResponse, error)
}

type adoptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	adoptionRepo     repository.AdoptionRequestRepository
	animalRepo       repository.AnimalRepository
	notificationRepo repository.NotificationRepository
}

func NewAdoptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	adoptionRepo repository.AdoptionRequestRepository,
	animalRepo repository.AnimalRepository,
	notificationRepo repository.NotificationRepository,
) AdoptionUsecase {
	return &adoptionUsecase{
		db:               db,
		log:              log,
		adoptionRepo:     adoptionRepo,
		animalRepo:       animalRepo,
		notificationRepo: notificationRepo,
	}
}

// Submit files a new adoption application. The animal must exist and still be
// AVAILABLE, and a user can hold at most one pending request per animal.
func (u *adoptionUsecase) Submit(ctx context.Context, userID uuid.UUID, req *dto.CreateAdoptionRequestRequest) (*dto.AdoptionRequestResponse, error) {
	db := u.db.WithContext(ctx)

	animal, err := u.animalRepo.FindByID(db, req.AnimalID)
	if err != nil {
		u.log.Warnf("Failed to find animal %s: %+v", req.AnimalID, err)
		return nil, err
	}
	if animal == nil {
		return nil, ErrAnimalNotFound
	}
	if !animal.IsAvailable() {
		return nil, ErrAnimalNotAvailable
	}

	existing, err := u.adoptionRepo.FindPendingByUserAndAnimal(db, userID, req.AnimalID)
	if err != nil {
		u.log.Warnf("Failed to check existing request: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateRequest
	}

	request := &entity.AdoptionRequest{
		AnimalID: req.AnimalID,
		UserID:   userID,
		Message:  req.Message,
		Status:   entity.RequestStatusPending,
	}

	if err := u.adoptionRepo.Create(db, request); err != nil {
		u.log.Warnf("Failed to create adoption request: %+v", err)
		return nil, err
	}

	u.log.Infof("Adoption request submitted: id=%s, animal=%s, user=%s", request.ID, req.AnimalID, userID)
	return converter.AdoptionRequestToResponse(request), nil
}

// List returns the caller's own requests; admins see every request.
func (u *adoptionUsecase) List(ctx context.Context, userID uuid.UUID, role string) (*dto.AdoptionRequestListResponse, error) {
	db := u.db.WithContext(ctx)

	var requests []entity.AdoptionRequest
	var err error
	if role == entity.RoleAdmin {
		requests, err = u.adoptionRepo.FindAll(db)
	} else {
		requests, err = u.adoptionRepo.FindByUserID(db, userID)
	}
	if err != nil {
		u.log.Warnf("Failed to list adoption requests: %+v", err)
		return nil, err
	}

	return &dto.AdoptionRequestListResponse{
		Requests: converter.AdoptionRequestsToResponses(requests),
		Total:    len(requests),
	}, nil
}

// Review resolves a pending request to a terminal status. The whole cascade
// runs in one transaction: on APPROVED the request, the animal status, the
// requester's notification and the rejection of competing pending requests
// commit together or not at all.
func (u *adoptionUsecase) Review(ctx context.Context, requestID uuid.UUID, status entity.RequestStatus) (*dto.AdoptionRequestResponse, error) {
	if !status.Terminal() {
		return nil, ErrInvalidReviewStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.adoptionRepo.FindByID(tx, requestID)
	if err != nil {
		u.log.Warnf("Failed to find adoption request %s: %+v", requestID, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}
	if !request.IsPending() {
		return nil, ErrRequestAlreadyReviewed
	}

	animalName := ""
	if request.Animal != nil {
		animalName = request.Animal.Name
	}

	if err := u.adoptionRepo.UpdateStatus(tx, requestID, status); err != nil {
		u.log.Warnf("Failed to update adoption request %s: %+v", requestID, err)
		return nil, err
	}

	switch status {
	case entity.RequestStatusApproved:
		if err := u.animalRepo.UpdateStatus(tx, request.AnimalID, entity.AnimalStatusAdopted); err != nil {
			u.log.Warnf("Failed to mark animal %s adopted: %+v", request.AnimalID, err)
			return nil, err
		}

		notification := &entity.Notification{
			UserID:  request.UserID,
			Title:   "Adoption Request Approved! 🎉",
			Message: fmt.Sprintf("Congratulations! Your request to adopt %s has been approved. The rescue team will contact you shortly.", animalName),
			Type:    entity.NotificationTypeSuccess,
		}
		if err := u.notificationRepo.Create(tx, notification); err != nil {
			u.log.Warnf("Failed to create approval notification: %+v", err)
			return nil, err
		}

		// The animal is gone: close out every other pending application for it
		if err := u.rejectCompetingRequests(tx, request, animalName); err != nil {
			return nil, err
		}

	case entity.RequestStatusRejected:
		notification := &entity.Notification{
			UserID:  request.UserID,
			Title:   "Update on Your Adoption Request",
			Message: fmt.Sprintf("We're sorry to inform you that your request to adopt %s was not approved at this time.", animalName),
			Type:    entity.NotificationTypeInfo,
		}
		if err := u.notificationRepo.Create(tx, notification); err != nil {
			u.log.Warnf("Failed to create rejection notification: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit adoption review: %+v", err)
		return nil, err
	}

	u.log.Infof("Adoption request reviewed: id=%s, status=%s", requestID, status)

	// Reload outside the transaction to reflect the final state
	updated, err := u.adoptionRepo.FindByID(u.db.WithContext(ctx), requestID)
	if err != nil || updated == nil {
		request.Status = status
		return converter.AdoptionRequestToResponse(request), nil
	}
	return converter.AdoptionRequestToResponse(updated), nil
}

func (u *adoptionUsecase) rejectCompetingRequests(tx *gorm.DB, approved *entity.AdoptionRequest, animalName string) error {
	pending, err := u.adoptionRepo.FindPendingByAnimal(tx, approved.AnimalID)
	if err != nil {
		u.log.Warnf("Failed to find competing requests for animal %s: %+v", approved.AnimalID, err)
		return err
	}

	for i := range pending {
		other := &pending[i]
		if other.ID == approved.ID {
			continue
		}
		if err := u.adoptionRepo.UpdateStatus(tx, other.ID, entity.RequestStatusRejected); err != nil {
			u.log.Warnf("Failed to reject competing request %s: %+v", other.ID, err)
			return err
		}
		notification := &entity.Notification{
			UserID:  other.UserID,
			Title:   "Update on Your Adoption Request",
			Message: fmt.Sprintf("%s has found a home with another adopter. Thank you for wanting to help.", animalName),
			Type:    entity.NotificationTypeInfo,
		}
		if err := u.notificationRepo.Create(tx, notification); err != nil {
			u.log.Warnf("Failed to create competing-rejection notification: %+v", err)
			return err
		}
	}

	return nil
}
