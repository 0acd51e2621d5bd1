package usecase

import (
	"context"
	"errors"
	"time"

	"petconnect/internal/converter"
	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/entity"
	"petconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicalRecordNotFound = errors.New("medical record not found")
	ErrInvalidDateFormat     = errors.New("invalid date format, use YYYY-MM-DD")
)

type MedicalRecordUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]dto.MedicalRecordResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type medicalRecordUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	recordRepo repository.MedicalRecordRepository
	animalRepo repository.AnimalRepository
	userRepo   repository.UserRepository
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	animalRepo repository.AnimalRepository,
	userRepo repository.UserRepository,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:         db,
		log:        log,
		recordRepo: recordRepo,
		animalRepo: animalRepo,
		userRepo:   userRepo,
	}
}

// Create adds a veterinary entry to an animal. When no veterinarian name is
// given the caller's own name is recorded.
func (u *medicalRecordUsecase) Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	db := u.db.WithContext(ctx)

	animal, err := u.animalRepo.FindByID(db, req.AnimalID)
	if err != nil {
		u.log.Warnf("Failed to find animal %s: %+v", req.AnimalID, err)
		return nil, err
	}
	if animal == nil {
		return nil, ErrAnimalNotFound
	}

	vetName := req.VeterinarianName
	if vetName == "" {
		caller, err := u.userRepo.FindByID(db, callerID)
		if err != nil {
			u.log.Warnf("Failed to find caller %s: %+v", callerID, err)
			return nil, err
		}
		if caller != nil {
			vetName = caller.Name
		}
	}

	var date time.Time
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
	}

	record := &entity.MedicalRecord{
		AnimalID:         req.AnimalID,
		Diagnosis:        req.Diagnosis,
		Treatment:        req.Treatment,
		VeterinarianName: vetName,
		Date:             date,
	}

	if err := u.recordRepo.Create(db, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]dto.MedicalRecordResponse, error) {
	records, err := u.recordRepo.FindByAnimalID(u.db.WithContext(ctx), animalID)
	if err != nil {
		u.log.Warnf("Failed to list medical records for animal %s: %+v", animalID, err)
		return nil, err
	}

	return converter.MedicalRecordsToResponses(records), nil
}

func (u *medicalRecordUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	record, err := u.recordRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find medical record %s: %+v", id, err)
		return err
	}
	if record == nil {
		return ErrMedicalRecordNotFound
	}

	if err := u.recordRepo.Delete(db, id); err != nil {
		u.log.Warnf("Failed to delete medical record %s: %+v", id, err)
		return err
	}

	return nil
}
