package usecase

import (
	"context"
	"testing"

	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/entity"
	"petconnect/internal/repository"

	"gorm.io/gorm"
)

func newAnimalUsecase(t *testing.T) (AnimalUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	uc := NewAnimalUsecase(db, newTestLogger(), repository.NewAnimalRepository())
	return uc, db
}

func TestCreateAnimalDefaults(t *testing.T) {
	uc, _ := newAnimalUsecase(t)

	animal, err := uc.Create(context.Background(), &dto.CreateAnimalRequest{
		Name:    "Rex",
		Species: "Dog",
		Breed:   "Labrador",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if animal.Age != 0 {
		t.Errorf("Age = %d, want 0", animal.Age)
	}
	if !animal.Fee.IsZero() {
		t.Errorf("Fee = %s, want 0", animal.Fee)
	}
	if animal.Status != string(entity.AnimalStatusAvailable) {
		t.Errorf("Status = %q, want AVAILABLE", animal.Status)
	}
	if animal.Images == nil {
		t.Error("Images = nil, want empty slice")
	}
}

func TestUpdateAnimalPartial(t *testing.T) {
	uc, db := newAnimalUsecase(t)
	animal := seedAnimal(t, db, entity.AnimalStatusAvailable)

	newName := "Buddy"
	updated, err := uc.Update(context.Background(), animal.ID, &dto.UpdateAnimalRequest{
		Name: &newName,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Name != "Buddy" {
		t.Errorf("Name = %q, want %q", updated.Name, "Buddy")
	}
	// untouched fields survive a partial update
	if updated.Species != animal.Species {
		t.Errorf("Species = %q, want %q", updated.Species, animal.Species)
	}
	if updated.Status != string(animal.Status) {
		t.Errorf("Status = %q, want %q", updated.Status, animal.Status)
	}
}

func TestGetAnimalsSpeciesFilter(t *testing.T) {
	uc, db := newAnimalUsecase(t)
	seedAnimal(t, db, entity.AnimalStatusAvailable)
	cat := &entity.Animal{Name: "Whiskers", Species: "Cat", Breed: "Tabby", Status: entity.AnimalStatusAvailable}
	if err := db.Create(cat).Error; err != nil {
		t.Fatalf("failed to seed cat: %v", err)
	}

	cats, err := uc.GetAll(context.Background(), &entity.AnimalFilter{Species: "Cat"})
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if cats.Total != 1 {
		t.Errorf("cats.Total = %d, want 1", cats.Total)
	}

	// "All" disables the species filter
	all, err := uc.GetAll(context.Background(), &entity.AnimalFilter{Species: "All"})
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if all.Total != 2 {
		t.Errorf("all.Total = %d, want 2", all.Total)
	}
}

func TestGetAnimalNotFound(t *testing.T) {
	uc, db := newAnimalUsecase(t)
	animal := seedAnimal(t, db, entity.AnimalStatusAvailable)

	if err := uc.Delete(context.Background(), animal.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := uc.GetByID(context.Background(), animal.ID); err != ErrAnimalNotFound {
		t.Errorf("GetByID() error = %v, want ErrAnimalNotFound", err)
	}
}
