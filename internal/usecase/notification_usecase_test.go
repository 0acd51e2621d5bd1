package usecase

import (
	"context"
	"testing"

	"petconnect/internal/domain/entity"
	"petconnect/internal/repository"

	"gorm.io/gorm"
)

func newNotificationUsecase(t *testing.T) (NotificationUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	uc := NewNotificationUsecase(db, newTestLogger(), repository.NewNotificationRepository())
	return uc, db
}

func seedNotification(t *testing.T, db *gorm.DB, user *entity.User) *entity.Notification {
	t.Helper()

	notification := &entity.Notification{
		UserID:  user.ID,
		Title:   "Test",
		Message: "Something happened",
		Type:    entity.NotificationTypeInfo,
	}
	if err := db.Create(notification).Error; err != nil {
		t.Fatalf("failed to seed notification: %v", err)
	}
	return notification
}

func TestMarkNotificationRead(t *testing.T) {
	uc, db := newNotificationUsecase(t)
	user := seedUser(t, db, entity.RoleUser)
	notification := seedNotification(t, db, user)

	if err := uc.MarkRead(context.Background(), user.ID, notification.ID); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}

	var got entity.Notification
	if err := db.First(&got, "id = ?", notification.ID).Error; err != nil {
		t.Fatalf("failed to reload notification: %v", err)
	}
	if !got.IsRead {
		t.Error("IsRead = false, want true")
	}
}

func TestMarkReadRejectsOtherUsersNotification(t *testing.T) {
	uc, db := newNotificationUsecase(t)
	owner := seedUser(t, db, entity.RoleUser)
	intruder := seedUser(t, db, entity.RoleUser)
	notification := seedNotification(t, db, owner)

	if err := uc.MarkRead(context.Background(), intruder.ID, notification.ID); err != ErrNotificationNotFound {
		t.Errorf("MarkRead() error = %v, want ErrNotificationNotFound", err)
	}
}

func TestListNotificationsOwnOnly(t *testing.T) {
	uc, db := newNotificationUsecase(t)
	alice := seedUser(t, db, entity.RoleUser)
	bob := seedUser(t, db, entity.RoleUser)
	seedNotification(t, db, alice)
	seedNotification(t, db, alice)
	seedNotification(t, db, bob)

	result, err := uc.List(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2", result.Total)
	}
}
