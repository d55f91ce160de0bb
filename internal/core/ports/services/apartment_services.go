package services

import (
	"context"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
)

// ApartmentReaderSvc defines read operations for apartment data, always
// evaluated under the caller's visibility scope.
type ApartmentReaderSvc interface {
	// GetApartmentByID retrieves an apartment the caller may see. Returns
	// apperrors.ErrNotFound for unknown ids and apperrors.ErrForbidden for
	// apartments outside the caller's scope, in that order.
	GetApartmentByID(ctx context.Context, identity domain.Identity, apartmentID string) (*domain.ApartmentInfo, error)

	// ListApartments retrieves a page of apartments the caller may see.
	ListApartments(ctx context.Context, identity domain.Identity, filter domain.ApartmentFilter, limit, offset int) ([]domain.ApartmentInfo, error)
}

// ApartmentSvcFacade combines all apartment-related service interfaces.
type ApartmentSvcFacade interface {
	ApartmentReaderSvc
}

// VillageReaderSvc defines read operations for village data.
type VillageReaderSvc interface {
	// GetVillageByID retrieves a village by ID.
	GetVillageByID(ctx context.Context, villageID string) (*domain.Village, error)

	// ListVillages retrieves a paginated list of villages.
	ListVillages(ctx context.Context, limit, offset int) ([]domain.Village, error)
}

// VillageSvcFacade combines all village-related service interfaces.
type VillageSvcFacade interface {
	VillageReaderSvc
}
