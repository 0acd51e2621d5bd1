package handler

import (
	"encoding/json"
	"net/http"

	"petconnect/internal/delivery/dto"
	"petconnect/internal/usecase"
	"petconnect/pkg/response"
	"petconnect/pkg/validator"
)

type AdminUserHandler struct {
	userAdminUsecase usecase.UserAdminUsecase
	validator        *validator.CustomValidator
}

func NewAdminUserHandler(userAdminUsecase usecase.UserAdminUsecase, validator *validator.CustomValidator) *AdminUserHandler {
	return &AdminUserHandler{
		userAdminUsecase: userAdminUsecase,
		validator:        validator,
	}
}

func (h *AdminUserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userAdminUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *AdminUserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminCreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userAdminUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusBadRequest, "Email already exists", nil)
		case usecase.ErrUsernameAlreadyExists:
			response.Error(w, http.StatusBadRequest, "Username already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create user")
		}
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}
