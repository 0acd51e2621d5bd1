package converter

import (
	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/entity"
)

// DonationToResponse converts a Donation entity to DonationResponse DTO
func DonationToResponse(donation *entity.Donation) *dto.DonationResponse {
	if donation == nil {
		return nil
	}

	response := &dto.DonationResponse{
		ID:        donation.ID,
		UserID:    donation.UserID,
		Amount:    donation.Amount,
		Type:      string(donation.Type),
		TargetRaw: donation.TargetRaw,
		Message:   donation.Message,
		Date:      donation.Date,
	}

	if donation.User != nil {
		response.Donor = donation.User.Name
	}

	return response
}

// DonationsToResponses converts a slice of Donation entities to DTOs
func DonationsToResponses(donations []entity.Donation) []dto.DonationResponse {
	responses := make([]dto.DonationResponse, len(donations))
	for i := range donations {
		responses[i] = *DonationToResponse(&donations[i])
	}
	return responses
}
