package usecase

import (
	"context"
	"testing"

	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/entity"
	"petconnect/internal/repository"

	"gorm.io/gorm"
)

func newRescueUsecase(t *testing.T) (RescueUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	uc := NewRescueUsecase(
		db,
		newTestLogger(),
		repository.NewRescueRequestRepository(),
		repository.NewNotificationRepository(),
	)
	return uc, db
}

func TestSubmitRescueRequestDefaultsPetName(t *testing.T) {
	uc, db := newRescueUsecase(t)
	user := seedUser(t, db, entity.RoleUser)

	request, err := uc.Submit(context.Background(), user.ID, &dto.CreateRescueRequestRequest{
		Species:     "Cat",
		Location:    "Main St bridge",
		Description: "Injured stray under the bridge",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if request.PetName != "Unknown" {
		t.Errorf("PetName = %q, want %q", request.PetName, "Unknown")
	}
	if request.Status != string(entity.RequestStatusPending) {
		t.Errorf("Status = %q, want PENDING", request.Status)
	}
}

func TestReviewRescueRequestDoesNotCreateAnimal(t *testing.T) {
	uc, db := newRescueUsecase(t)
	user := seedUser(t, db, entity.RoleUser)

	request, err := uc.Submit(context.Background(), user.ID, &dto.CreateRescueRequestRequest{
		PetName:     "Ginger",
		Species:     "Cat",
		Location:    "Park",
		Description: "Abandoned kitten",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	reviewed, err := uc.Review(context.Background(), request.ID, entity.RequestStatusApproved)
	if err != nil {
		t.Fatalf("Review() error = %v", err)
	}
	if reviewed.Status != string(entity.RequestStatusApproved) {
		t.Errorf("Status = %q, want APPROVED", reviewed.Status)
	}

	// a rescue report is not an intake: no animal row appears
	var animals int64
	db.Model(&entity.Animal{}).Count(&animals)
	if animals != 0 {
		t.Errorf("animal count = %d, want 0", animals)
	}

	// the reporter was notified
	var notes int64
	db.Model(&entity.Notification{}).Where("user_id = ?", user.ID).Count(&notes)
	if notes != 1 {
		t.Errorf("reporter notifications = %d, want 1", notes)
	}
}

func TestReviewRescueRequestIsWriteOnce(t *testing.T) {
	uc, db := newRescueUsecase(t)
	user := seedUser(t, db, entity.RoleUser)

	request, err := uc.Submit(context.Background(), user.ID, &dto.CreateRescueRequestRequest{
		Species:     "Dog",
		Location:    "Highway exit",
		Description: "Lost dog",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if _, err := uc.Review(context.Background(), request.ID, entity.RequestStatusApproved); err != nil {
		t.Fatalf("Review() error = %v", err)
	}

	if _, err := uc.Review(context.Background(), request.ID, entity.RequestStatusRejected); err != ErrRequestAlreadyReviewed {
		t.Errorf("Review() error = %v, want ErrRequestAlreadyReviewed", err)
	}
}

func TestListRescueRequestsByRole(t *testing.T) {
	uc, db := newRescueUsecase(t)
	reporter := seedUser(t, db, entity.RoleUser)
	other := seedUser(t, db, entity.RoleUser)
	rescueMember := seedUser(t, db, entity.RoleRescue)

	if _, err := uc.Submit(context.Background(), reporter.ID, &dto.CreateRescueRequestRequest{
		Species: "Dog", Location: "Alley", Description: "Stray",
	}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	own, err := uc.List(context.Background(), other.ID, entity.RoleUser)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if own.Total != 0 {
		t.Errorf("other user sees %d requests, want 0", own.Total)
	}

	all, err := uc.List(context.Background(), rescueMember.ID, entity.RoleRescue)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if all.Total != 1 {
		t.Errorf("rescue member sees %d requests, want 1", all.Total)
	}
}
