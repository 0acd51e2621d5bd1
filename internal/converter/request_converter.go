package converter

import (
	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/entity"
)

// AdoptionRequestToResponse converts an AdoptionRequest entity to its DTO.
// Animal and requester info are included when they were preloaded.
func AdoptionRequestToResponse(request *entity.AdoptionRequest) *dto.AdoptionRequestResponse {
	if request == nil {
		return nil
	}

	response := &dto.AdoptionRequestResponse{
		ID:              request.ID,
		AnimalID:        request.AnimalID,
		UserID:          request.UserID,
		Message:         request.Message,
		Status:          string(request.Status),
		ApplicationDate: request.ApplicationDate,
	}

	if request.Animal != nil {
		response.Animal = AnimalToResponse(request.Animal)
	}
	if request.User != nil {
		response.User = &dto.RequesterResponse{
			Name:  request.User.Name,
			Email: request.User.Email,
		}
	}

	return response
}

// AdoptionRequestsToResponses converts a slice of AdoptionRequest entities to DTOs
func AdoptionRequestsToResponses(requests []entity.AdoptionRequest) []dto.AdoptionRequestResponse {
	responses := make([]dto.AdoptionRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *AdoptionRequestToResponse(&requests[i])
	}
	return responses
}

// RescueRequestToResponse converts a RescueRequest entity to its DTO
func RescueRequestToResponse(request *entity.RescueRequest) *dto.RescueRequestResponse {
	if request == nil {
		return nil
	}

	response := &dto.RescueRequestResponse{
		ID:          request.ID,
		UserID:      request.UserID,
		PetName:     request.PetName,
		Species:     request.Species,
		Breed:       request.Breed,
		Location:    request.Location,
		Description: request.Description,
		Image:       request.Image,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
	}

	if request.User != nil {
		response.User = &dto.RequesterResponse{
			Name:  request.User.Name,
			Email: request.User.Email,
		}
	}

	return response
}

// RescueRequestsToResponses converts a slice of RescueRequest entities to DTOs
func RescueRequestsToResponses(requests []entity.RescueRequest) []dto.RescueRequestResponse {
	responses := make([]dto.RescueRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *RescueRequestToResponse(&requests[i])
	}
	return responses
}
