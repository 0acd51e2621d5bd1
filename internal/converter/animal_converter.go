package converter

import (
	"petconnect/internal/delivery/dto"
	"petconnect/internal/domain/entity"
)

// AnimalToResponse converts an Animal entity to AnimalResponse DTO.
// Medical records are included when they were preloaded.
func AnimalToResponse(animal *entity.Animal) *dto.AnimalResponse {
	if animal == nil {
		return nil
	}

	response := &dto.AnimalResponse{
		ID:          animal.ID,
		Name:        animal.Name,
		Species:     animal.Species,
		Breed:       animal.Breed,
		Age:         animal.Age,
		Gender:      animal.Gender,
		Status:      string(animal.Status),
		Location:    animal.Location,
		Description: animal.Description,
		Fee:         animal.Fee,
		Images:      animal.Images,
		CreatedAt:   animal.CreatedAt,
		UpdatedAt:   animal.UpdatedAt,
	}
	if response.Images == nil {
		response.Images = []string{}
	}

	if len(animal.MedicalRecords) > 0 {
		response.MedicalRecords = MedicalRecordsToResponses(animal.MedicalRecords)
	}

	return response
}

// AnimalsToResponses converts a slice of Animal entities to AnimalResponse DTOs
func AnimalsToResponses(animals []entity.Animal) []dto.AnimalResponse {
	responses := make([]dto.AnimalResponse, len(animals))
	for i := range animals {
		responses[i] = *AnimalToResponse(&animals[i])
	}
	return responses
}

// MedicalRecordToResponse converts a MedicalRecord entity to its DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:               record.ID,
		AnimalID:         record.AnimalID,
		Diagnosis:        record.Diagnosis,
		Treatment:        record.Treatment,
		VeterinarianName: record.VeterinarianName,
		Date:             record.Date,
	}
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities to DTOs
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i])
	}
	return responses
}
