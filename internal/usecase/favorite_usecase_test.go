package usecase

import (
	"context"
	"testing"

	"petconnect/internal/domain/entity"
	"petconnect/internal/repository"

	"gorm.io/gorm"
)

func newFavoriteUsecase(t *testing.T) (FavoriteUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	uc := NewFavoriteUsecase(db, newTestLogger(), repository.NewFavoriteRepository(), repository.NewAnimalRepository())
	return uc, db
}

func TestToggleFavoriteIsItsOwnInverse(t *testing.T) {
	uc, db := newFavoriteUsecase(t)
	user := seedUser(t, db, entity.RoleUser)
	animal := seedAnimal(t, db, entity.AnimalStatusAvailable)

	first, err := uc.Toggle(context.Background(), user.ID, animal.ID)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !first.Favorited {
		t.Error("first toggle: Favorited = false, want true")
	}

	second, err := uc.Toggle(context.Background(), user.ID, animal.ID)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if second.Favorited {
		t.Error("second toggle: Favorited = true, want false")
	}

	favorites, err := uc.List(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("len(favorites) = %d, want 0 after double toggle", len(favorites))
	}
}

func TestToggleFavoriteUnknownAnimal(t *testing.T) {
	uc, db := newFavoriteUsecase(t)
	user := seedUser(t, db, entity.RoleUser)
	animal := seedAnimal(t, db, entity.AnimalStatusAvailable)

	if err := db.Delete(&entity.Animal{}, "id = ?", animal.ID).Error; err != nil {
		t.Fatalf("failed to delete animal: %v", err)
	}

	if _, err := uc.Toggle(context.Background(), user.ID, animal.ID); err != ErrAnimalNotFound {
		t.Errorf("Toggle() error = %v, want ErrAnimalNotFound", err)
	}
}

func TestListFavorites(t *testing.T) {
	uc, db := newFavoriteUsecase(t)
	user := seedUser(t, db, entity.RoleUser)
	a1 := seedAnimal(t, db, entity.AnimalStatusAvailable)
	a2 := seedAnimal(t, db, entity.AnimalStatusAvailable)

	if _, err := uc.Toggle(context.Background(), user.ID, a1.ID); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if _, err := uc.Toggle(context.Background(), user.ID, a2.ID); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	favorites, err := uc.List(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(favorites) != 2 {
		t.Errorf("len(favorites) = %d, want 2", len(favorites))
	}
}
