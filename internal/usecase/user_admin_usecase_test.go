package usecase

import (
	"context"
	"testing"

	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/entity"
	"petconnect/internal/repository"
)

func newUserAdminUsecase(t *testing.T) (UserAdminUsecase, AuthUsecase) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository()
	adminUC := NewUserAdminUsecase(db, newTestLogger(), userRepo)
	authUC := NewAuthUsecase(db, newTestLogger(), userRepo, repository.NewFavoriteRepository(), newTestJWTService(), newFakeTokenStore())
	return adminUC, authUC
}

func TestAdminCreateUserWithExplicitRole(t *testing.T) {
	adminUC, authUC := newUserAdminUsecase(t)

	user, err := adminUC.Create(context.Background(), &dto.AdminCreateUserRequest{
		Email:    "vet@example.com",
		Username: "drvet",
		Password: "secret123",
		Name:     "Dr. Vet",
		Role:     entity.RoleVet,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.Role != entity.RoleVet {
		t.Errorf("Role = %q, want VET", user.Role)
	}

	// the created account can log in with the given credentials
	result, err := authUC.Login(context.Background(), &dto.LoginRequest{
		Username: "drvet",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.User.Role != entity.RoleVet {
		t.Errorf("login Role = %q, want VET", result.User.Role)
	}
}

func TestAdminCreateUserDuplicate(t *testing.T) {
	adminUC, _ := newUserAdminUsecase(t)

	req := &dto.AdminCreateUserRequest{
		Email:    "rescue@example.com",
		Username: "rescueteam",
		Password: "secret123",
		Name:     "Rescue Team",
		Role:     entity.RoleRescue,
	}
	if _, err := adminUC.Create(context.Background(), req); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := adminUC.Create(context.Background(), req); err != ErrEmailAlreadyExists {
		t.Errorf("Create() error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestAdminListUsers(t *testing.T) {
	adminUC, _ := newUserAdminUsecase(t)

	for _, role := range []string{entity.RoleAdmin, entity.RoleUser, entity.RoleDonor} {
		if _, err := adminUC.Create(context.Background(), &dto.AdminCreateUserRequest{
			Email:    role + "@example.com",
			Username: "list-" + role,
			Password: "secret123",
			Name:     "Listed " + role,
			Role:     role,
		}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	result, err := adminUC.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if result.Total != 3 {
		t.Errorf("Total = %d, want 3", result.Total)
	}
}
