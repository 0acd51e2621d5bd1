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

type RescueHandler struct {
	rescueUsecase usecase.RescueUsecase
	validator     *validator.CustomValidator
}

func NewRescueHandler(rescueUsecase usecase.RescueUsecase, validator *validator.CustomValidator) *RescueHandler {
	return &RescueHandler{
		rescueUsecase: rescueUsecase,
		validator:     validator,
	}
}

func (h *RescueHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreateRescueRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.rescueUsecase.Submit(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to submit rescue request")
		return
	}

	response.Success(w, http.StatusCreated, "Rescue request submitted successfully", request)
}

func (h *RescueHandler) GetRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	requests, err := h.rescueUsecase.List(r.Context(), userID, role)
	if err != nil {
		response.InternalServerError(w, "Failed to get rescue requests")
		return
	}

	response.Success(w, http.StatusOK, "Rescue requests retrieved successfully", requests)
}

func (h *RescueHandler) ReviewRequest(w http.ResponseWriter, r *http.Request) {
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

	request, err := h.rescueUsecase.Review(r.Context(), requestID, entity.RequestStatus(req.Status))
	if err != nil {
		switch err {
		case usecase.ErrRescueRequestNotFound:
			response.NotFound(w, "Rescue request not found")
		case usecase.ErrInvalidReviewStatus:
			response.Error(w, http.StatusBadRequest, "Status must be APPROVED or REJECTED", nil)
		case usecase.ErrRequestAlreadyReviewed:
			response.Conflict(w, "Request has already been reviewed")
		default:
			response.InternalServerError(w, "Failed to review rescue request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Rescue request reviewed successfully", request)
}
