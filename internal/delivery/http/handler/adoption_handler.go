package handler

import (
	"encoding/json"
	"net/http"

	"petconnect/internal/delivery/dto"
	"petconnect/internal/delivery/http/middleware"
	"petconnect/internal/domain/entity"
	"petconnect/internal/usecase"
	"petconnect/pkg/response"
	"petconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdoptionHandler struct {
	adoptionUsecase usecase.AdoptionUsecase
	validator       *validator.CustomValidator
}

func NewAdoptionHandler(adoptionUsecase usecase.AdoptionUsecase, validator *validator.CustomValidator) *AdoptionHandler {
	return &AdoptionHandler{
		adoptionUsecase: adoptionUsecase,
		validator:       validator,
	}
}

func (h *AdoptionHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreateAdoptionRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.adoptionUsecase.Submit(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAnimalNotFound:
			response.NotFound(w, "Animal not found")
		case usecase.ErrAnimalNotAvailable:
			response.Error(w, http.StatusBadRequest, "Animal is not available for adoption", nil)
		case usecase.ErrDuplicateRequest:
			response.Conflict(w, "You already have a pending request for this animal")
		default:
			response.InternalServerError(w, "Failed to submit adoption request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Adoption request submitted successfully", request)
}

func (h *AdoptionHandler) GetRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	requests, err := h.adoptionUsecase.List(r.Context(), userID, role)
	if err != nil {
		response.InternalServerError(w, "Failed to get adoption requests")
		return
	}

	response.Success(w, http.StatusOK, "Adoption requests retrieved successfully", requests)
}

func (h *AdoptionHandler) ReviewRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	var req dto.ReviewRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.adoptionUsecase.Review(r.Context(), requestID, entity.RequestStatus(req.Status))
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Adoption request not found")
		case usecase.ErrInvalidReviewStatus:
			response.Error(w, http.StatusBadRequest, "Status must be APPROVED or REJECTED", nil)
		case usecase.ErrRequestAlreadyReviewed:
			response.Conflict(w, "Request has already been reviewed")
		default:
			response.InternalServerError(w, "Failed to review adoption request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Adoption request reviewed successfully", request)
}
