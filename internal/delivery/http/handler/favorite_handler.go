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

type FavoriteHandler struct {
	favoriteUsecase usecase.FavoriteUsecase
	validator       *validator.CustomValidator
}

func NewFavoriteHandler(favoriteUsecase usecase.FavoriteUsecase, validator *validator.CustomValidator) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUsecase: favoriteUsecase,
		validator:       validator,
	}
}

func (h *FavoriteHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.ToggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.favoriteUsecase.Toggle(r.Context(), userID, req.AnimalID)
	if err != nil {
		switch err {
		case usecase.ErrAnimalNotFound:
			response.NotFound(w, "Animal not found")
		default:
			response.InternalServerError(w, "Failed to toggle favorite")
		}
		return
	}

	response.Success(w, http.StatusOK, "Favorite toggled successfully", result)
}

func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	animals, err := h.favoriteUsecase.List(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get favorites")
		return
	}

	response.Success(w, http.StatusOK, "Favorites retrieved successfully", animals)
}
