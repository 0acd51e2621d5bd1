package handler

import (
	"encoding/json"
	"net/http"

	"petconnect/internal/delivery/dto"
	"petconnect/internal/delivery/http/middleware"
	"petconnect/internal/usecase"
	"petconnect/pkg/response"
	"petconnect/pkg/validator"
)

type DonationHandler struct {
	donationUsecase usecase.DonationUsecase
	validator       *validator.CustomValidator
}

func NewDonationHandler(donationUsecase usecase.DonationUsecase, validator *validator.CustomValidator) *DonationHandler {
	return &DonationHandler{
		donationUsecase: donationUsecase,
		validator:       validator,
	}
}

func (h *DonationHandler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreateDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	donation, err := h.donationUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDonationAmount:
			response.Error(w, http.StatusBadRequest, "Donation amount must be positive", nil)
		default:
			response.InternalServerError(w, "Failed to create donation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Donation recorded successfully", donation)
}

func (h *DonationHandler) GetDonations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	donations, err := h.donationUsecase.List(r.Context(), userID, role)
	if err != nil {
		response.InternalServerError(w, "Failed to get donations")
		return
	}

	response.Success(w, http.StatusOK, "Donations retrieved successfully", donations)
}
