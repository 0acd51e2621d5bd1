package handler

import (
	"encoding/json"
	"net/http"

	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/entity"
	"petconnect/internal/usecase"
	"petconnect/pkg/response"
	"petconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AnimalHandler struct {
	animalUsecase usecase.AnimalUsecase
	validator     *validator.CustomValidator
}

func NewAnimalHandler(animalUsecase usecase.AnimalUsecase, validator *validator.CustomValidator) *AnimalHandler {
	return &AnimalHandler{
		animalUsecase: animalUsecase,
		validator:     validator,
	}
}

func (h *AnimalHandler) CreateAnimal(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	animal, err := h.animalUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create animal")
		return
	}

	response.Success(w, http.StatusCreated, "Animal created successfully", animal)
}

func (h *AnimalHandler) GetAnimals(w http.ResponseWriter, r *http.Request) {
	filter := &entity.AnimalFilter{
		Species: r.URL.Query().Get("species"),
		Status:  r.URL.Query().Get("status"),
	}

	animals, err := h.animalUsecase.GetAll(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get animals")
		return
	}

	response.Success(w, http.StatusOK, "Animals retrieved successfully", animals)
}

func (h *AnimalHandler) GetAnimal(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	animalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid animal ID", nil)
		return
	}

	animal, err := h.animalUsecase.GetByID(r.Context(), animalID)
	if err != nil {
		switch err {
		case usecase.ErrAnimalNotFound:
			response.NotFound(w, "Animal not found")
		default:
			response.InternalServerError(w, "Failed to get animal")
		}
		return
	}

	response.Success(w, http.StatusOK, "Animal retrieved successfully", animal)
}

func (h *AnimalHandler) UpdateAnimal(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	animalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid animal ID", nil)
		return
	}

	var req dto.UpdateAnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	animal, err := h.animalUsecase.Update(r.Context(), animalID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAnimalNotFound:
			response.NotFound(w, "Animal not found")
		default:
			response.InternalServerError(w, "Failed to update animal")
		}
		return
	}

	response.Success(w, http.StatusOK, "Animal updated successfully", animal)
}

func (h *AnimalHandler) DeleteAnimal(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	animalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid animal ID", nil)
		return
	}

	if err := h.animalUsecase.Delete(r.Context(), animalID); err != nil {
		switch err {
		case usecase.ErrAnimalNotFound:
			response.NotFound(w, "Animal not found")
		default:
			response.InternalServerError(w, "Failed to delete animal")
		}
		return
	}

	response.Success(w, http.StatusOK, "Animal deleted successfully", nil)
}
