package usecase

import (
	"context"
	"testing"

	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/entity"
	"petconnect/internal/repository"

	"gorm.io/gorm"
)

func newAdoptionUsecase(t *testing.T) (AdoptionUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	uc := NewAdoptionUsecase(
		db,
		newTestLogger(),
		repository.NewAdoptionRequestRepository(),
		repository.NewAnimalRepository(),
		repository.NewNotificationRepository(),
	)
	return uc, db
}

func TestSubmitAdoptionRequest(t *testing.T) {
	uc, db := newAdoptionUsecase(t)
	user := seedUser(t, db, entity.RoleUser)
	animal := seedAnimal(t, db, entity.AnimalStatusAvailable)

	request, err := uc.Submit(context.Background(), user.ID, &dto.CreateAdoptionRequestRequest{
		AnimalID: animal.ID,
		Message:  "We have a big garden.",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if request.Status != string(entity.RequestStatusPending) {
		t.Errorf("Status = %q, want PENDING", request.Status)
	}
}

func TestSubmitAdoptionRequestAnimalNotAvailable(t *testing.T) {
	uc, db := newAdoptionUsecase(t)
	user := seedUser(t, db, entity.RoleUser)
	animal := seedAnimal(t, db, entity.AnimalStatusAdopted)

	_, err := uc.Submit(context.Background(), user.ID, &dto.CreateAdoptionRequestRequest{
		AnimalID: animal.ID,
		Message:  "Please.",
	})
	if err != ErrAnimalNotAvailable {
		t.Errorf("Submit() error = %v, want ErrAnimalNotAvailable", err)
	}
}

func TestSubmitAdoptionRequestDuplicatePending(t *testing.T) {
	uc, db := newAdoptionUsecase(t)
	user := seedUser(t, db, entity.RoleUser)
	animal := seedAnimal(t, db, entity.AnimalStatusAvailable)

	req := &dto.CreateAdoptionRequestRequest{AnimalID: animal.ID, Message: "First."}
	if _, err := uc.Submit(context.Background(), user.ID, req); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if _, err := uc.Submit(context.Background(), user.ID, req); err != ErrDuplicateRequest {
		t.Errorf("Submit() error = %v, want ErrDuplicateRequest", err)
	}
}

func TestReviewApprovalCascade(t *testing.T) {
	uc, db := newAdoptionUsecase(t)
	winner := seedUser(t, db, entity.RoleUser)
	loser := seedUser(t, db, entity.RoleUser)
	animal := seedAnimal(t, db, entity.AnimalStatusAvailable)

	winning, err := uc.Submit(context.Background(), winner.ID, &dto.CreateAdoptionRequestRequest{
		AnimalID: animal.ID, Message: "Pick me.",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	losing, err := uc.Submit(context.Background(), loser.ID, &dto.CreateAdoptionRequestRequest{
		AnimalID: animal.ID, Message: "No, me.",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	reviewed, err := uc.Review(context.Background(), winning.ID, entity.RequestStatusApproved)
	if err != nil {
		t.Fatalf("Review() error = %v", err)
	}
	if reviewed.Status != string(entity.RequestStatusApproved) {
		t.Errorf("Status = %q, want APPROVED", reviewed.Status)
	}

	// the animal moved to ADOPTED in the same transaction
	var updatedAnimal entity.Animal
	if err := db.First(&updatedAnimal, "id = ?", animal.ID).Error; err != nil {
		t.Fatalf("failed to reload animal: %v", err)
	}
	if updatedAnimal.Status != entity.AnimalStatusAdopted {
		t.Errorf("animal.Status = %q, want ADOPTED", updatedAnimal.Status)
	}

	// the competing pending request was rejected
	var competing entity.AdoptionRequest
	if err := db.First(&competing, "id = ?", losing.ID).Error; err != nil {
		t.Fatalf("failed to reload competing request: %v", err)
	}
	if competing.Status != entity.RequestStatusRejected {
		t.Errorf("competing.Status = %q, want REJECTED", competing.Status)
	}

	// both requesters were notified
	var winnerNotes, loserNotes int64
	db.Model(&entity.Notification{}).Where("user_id = ?", winner.ID).Count(&winnerNotes)
	db.Model(&entity.Notification{}).Where("user_id = ?", loser.ID).Count(&loserNotes)
	if winnerNotes != 1 {
		t.Errorf("winner notifications = %d, want 1", winnerNotes)
	}
	if loserNotes != 1 {
		t.Errorf("loser notifications = %d, want 1", loserNotes)
	}
}

func TestReviewRejection(t *testing.T) {
	uc, db := newAdoptionUsecase(t)
	user := seedUser(t, db, entity.RoleUser)
	animal := seedAnimal(t, db, entity.AnimalStatusAvailable)

	request, err := uc.Submit(context.Background(), user.ID, &dto.CreateAdoptionRequestRequest{
		AnimalID: animal.ID, Message: "Please.",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if _, err := uc.Review(context.Background(), request.ID, entity.RequestStatusRejected); err != nil {
		t.Fatalf("Review() error = %v", err)
	}

	// a rejection never touches the animal
	var updatedAnimal entity.Animal
	if err := db.First(&updatedAnimal, "id = ?", animal.ID).Error; err != nil {
		t.Fatalf("failed to reload animal: %v", err)
	}
	if updatedAnimal.Status != entity.AnimalStatusAvailable {
		t.Errorf("animal.Status = %q, want AVAILABLE", updatedAnimal.Status)
	}
}

func TestReviewIsWriteOnce(t *testing.T) {
	uc, db := newAdoptionUsecase(t)
	user := seedUser(t, db, entity.RoleUser)
	animal := seedAnimal(t, db, entity.AnimalStatusAvailable)

	request, err := uc.Submit(context.Background(), user.ID, &dto.CreateAdoptionRequestRequest{
		AnimalID: animal.ID, Message: "Please.",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if _, err := uc.Review(context.Background(), request.ID, entity.RequestStatusRejected); err != nil {
		t.Fatalf("Review() error = %v", err)
	}

	if _, err := uc.Review(context.Background(), request.ID, entity.RequestStatusApproved); err != ErrRequestAlreadyReviewed {
		t.Errorf("Review() error = %v, want ErrRequestAlreadyReviewed", err)
	}
}

func TestReviewInvalidStatus(t *testing.T) {
	uc, db := newAdoptionUsecase(t)
	user := seedUser(t, db, entity.RoleUser)
	animal := seedAnimal(t, db, entity.AnimalStatusAvailable)

	request, err := uc.Submit(context.Background(), user.ID, &dto.CreateAdoptionRequestRequest{
		AnimalID: animal.ID, Message: "Please.",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if _, err := uc.Review(context.Background(), request.ID, entity.RequestStatusPending); err != ErrInvalidReviewStatus {
		t.Errorf("Review() error = %v, want ErrInvalidReviewStatus", err)
	}
}

func TestListOwnRequestsOnly(t *testing.T) {
	uc, db := newAdoptionUsecase(t)
	alice := seedUser(t, db, entity.RoleUser)
	bob := seedUser(t, db, entity.RoleUser)
	admin := seedUser(t, db, entity.RoleAdmin)
	a1 := seedAnimal(t, db, entity.AnimalStatusAvailable)
	a2 := seedAnimal(t, db, entity.AnimalStatusAvailable)

	if _, err := uc.Submit(context.Background(), alice.ID, &dto.CreateAdoptionRequestRequest{AnimalID: a1.ID, Message: "Hi"}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if _, err := uc.Submit(context.Background(), bob.ID, &dto.CreateAdoptionRequestRequest{AnimalID: a2.ID, Message: "Hi"}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	own, err := uc.List(context.Background(), alice.ID, entity.RoleUser)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if own.Total != 1 {
		t.Errorf("own.Total = %d, want 1", own.Total)
	}

	all, err := uc.List(context.Background(), admin.ID, entity.RoleAdmin)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if all.Total != 2 {
		t.Errorf("all.Total = %d, want 2", all.Total)
	}
}
