package dto

import (
	"github.com/shopspring/decimal"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
)

// ListParams defines the shared pagination query parameters for list endpoints.
type ListParams struct {
	Limit  int `form:"limit,default=50" binding:"omitempty,min=1"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ApartmentResponse defines the apartment data returned by the API.
type ApartmentResponse struct {
	ApartmentID string `json:"apartmentID"`
	Name        string `json:"name"`
	VillageID   string `json:"villageID"`
	VillageName string `json:"villageName"`
	Phase       int    `json:"phase"`
	OwnerID     string `json:"ownerID"`
	OwnerName   string `json:"ownerName"`
}

// ToApartmentResponse converts a domain.ApartmentInfo to an ApartmentResponse DTO
func ToApartmentResponse(apartment *domain.ApartmentInfo) ApartmentResponse {
	return ApartmentResponse{
		ApartmentID: apartment.ApartmentID,
		Name:        apartment.Name,
		VillageID:   apartment.VillageID,
		VillageName: apartment.VillageName,
		Phase:       apartment.Phase,
		OwnerID:     apartment.OwnerID,
		OwnerName:   apartment.OwnerName,
	}
}

// ListApartmentsResponse wraps the list of apartments.
type ListApartmentsResponse struct {
	Apartments []ApartmentResponse `json:"apartments"`
}

// ToListApartmentsResponse converts a slice of domain.ApartmentInfo to its response DTO
func ToListApartmentsResponse(apartments []domain.ApartmentInfo) ListApartmentsResponse {
	responses := make([]ApartmentResponse, len(apartments))
	for i, apartment := range apartments {
		responses[i] = ToApartmentResponse(&apartment)
	}
	return ListApartmentsResponse{Apartments: responses}
}

// VillageResponse defines the village data returned by the API.
type VillageResponse struct {
	VillageID        string          `json:"villageID"`
	Name             string          `json:"name"`
	ElectricityPrice decimal.Decimal `json:"electricityPrice"`
	WaterPrice       decimal.Decimal `json:"waterPrice"`
	Phases           int             `json:"phases"`
}

// ToVillageResponse converts a domain.Village to a VillageResponse DTO
func ToVillageResponse(village *domain.Village) VillageResponse {
	return VillageResponse{
		VillageID:        village.VillageID,
		Name:             village.Name,
		ElectricityPrice: village.ElectricityPrice,
		WaterPrice:       village.WaterPrice,
		Phases:           village.Phases,
	}
}

// ListVillagesResponse wraps the list of villages.
type ListVillagesResponse struct {
	Villages []VillageResponse `json:"villages"`
}

// ToListVillagesResponse converts a slice of domain.Village to its response DTO
func ToListVillagesResponse(villages []domain.Village) ListVillagesResponse {
	responses := make([]VillageResponse, len(villages))
	for i, village := range villages {
		responses[i] = ToVillageResponse(&village)
	}
	return ListVillagesResponse{Villages: responses}
}
