package entity

// AnimalFilter is a domain-level filter for querying animals.
// Used by repository layer to avoid coupling with delivery DTOs.
type AnimalFilter struct {
	Species string // "" or "All" means no species filter
	Status  string
}
