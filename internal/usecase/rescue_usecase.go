package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"petconnect/internal/converter"
	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/entity"
	"petconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRescueRequestNotFound = errors.New("rescue request not found")
)

type RescueUsecase interface {
	Submit(ctx context.Context, userID uuid.UUID, req *dto.CreateRescueRequestRequest) (*dto.RescueRequestResponse, error)
	List(ctx context.Context, userID uuid.UUID, role string) (*dto.RescueRequestListResponse, error)
	Review(ctx context.Context, requestID uuid.UUID, status entity.RequestStatus) (*dto.RescueRequestResponse, error)
}

type rescueUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	rescueRepo       repository.RescueRequestRepository
	notificationRepo repository.NotificationRepository
}

func NewRescueUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	rescueRepo repository.RescueRequestRepository,
	notificationRepo repository.NotificationRepository,
) RescueUsecase {
	return &rescueUsecase{
		db:               db,
		log:              log,
		rescueRepo:       rescueRepo,
		notificationRepo: notificationRepo,
	}
}

// Submit files a found/stray pet report. The pet name defaults to "Unknown"
// since reporters rarely know it.
func (u *rescueUsecase) Submit(ctx context.Context, userID uuid.UUID, req *dto.CreateRescueRequestRequest) (*dto.RescueRequestResponse, error) {
	request := &entity.RescueRequest{
		UserID:      userID,
		PetName:     req.PetName,
		Species:     req.Species,
		Breed:       req.Breed,
		Location:    req.Location,
		Description: req.Description,
		Image:       req.Image,
		Status:      entity.RequestStatusPending,
	}

	if err := u.rescueRepo.Create(u.db.WithContext(ctx), request); err != nil {
		u.log.Warnf("Failed to create rescue request: %+v", err)
		return nil, err
	}

	u.log.Infof("Rescue request submitted: id=%s, user=%s, location=%s", request.ID, userID, req.Location)
	return converter.RescueRequestToResponse(request), nil
}

// List returns the caller's own reports; the rescue organisation side
// (ADMIN/RESCUE) sees every report with reporter info.
func (u *rescueUsecase) List(ctx context.Context, userID uuid.UUID, role string) (*dto.RescueRequestListResponse, error) {
	db := u.db.WithContext(ctx)

	var requests []entity.RescueRequest
	var err error
	if role == entity.RoleAdmin || role == entity.RoleRescue {
		requests, err = u.rescueRepo.FindAll(db)
	} else {
		requests, err = u.rescueRepo.FindByUserID(db, userID)
	}
	if err != nil {
		u.log.Warnf("Failed to list rescue requests: %+v", err)
		return nil, err
	}

	return &dto.RescueRequestListResponse{
		Requests: converter.RescueRequestsToResponses(requests),
		Total:    len(requests),
	}, nil
}

// Review resolves a pending report to a terminal status and notifies the
// reporter, in one transaction. Approval deliberately does NOT create an
// Animal row: the report and the intake of a rescued animal are separate
// workflows connected only by the rescue team's process.
func (u *rescueUsecase) Review(ctx context.Context, requestID uuid.UUID, status entity.RequestStatus) (*dto.RescueRequestResponse, error) {
	if !status.Terminal() {
		return nil, ErrInvalidReviewStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.rescueRepo.FindByID(tx, requestID)
	if err != nil {
		u.log.Warnf("Failed to find rescue request %s: %+v", requestID, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRescueRequestNotFound
	}
	if !request.IsPending() {
		return nil, ErrRequestAlreadyReviewed
	}

	if err := u.rescueRepo.UpdateStatus(tx, requestID, status); err != nil {
		u.log.Warnf("Failed to update rescue request %s: %+v", requestID, err)
		return nil, err
	}

	notificationType := entity.NotificationTypeSuccess
	if status == entity.RequestStatusRejected {
		notificationType = entity.NotificationTypeWarning
	}
	notification := &entity.Notification{
		UserID:  request.UserID,
		Title:   "Rescue Request Updated",
		Message: fmt.Sprintf("Your rescue request for %s has been %s.", request.PetName, strings.ToLower(string(status))),
		Type:    notificationType,
	}
	if err := u.notificationRepo.Create(tx, notification); err != nil {
		u.log.Warnf("Failed to create rescue notification: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit rescue review: %+v", err)
		return nil, err
	}

	u.log.Infof("Rescue request reviewed: id=%s, status=%s", requestID, status)

	request.Status = status
	return converter.RescueRequestToResponse(request), nil
}
