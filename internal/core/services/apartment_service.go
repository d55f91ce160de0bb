package services

import (
	"context"
	"log/slog"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	portsrepo "github.com/touristvillage/portfolio_backend/internal/core/ports/repositories"
	portssvc "github.com/touristvillage/portfolio_backend/internal/core/ports/services"
)

// apartmentServiceImpl implements the ApartmentSvcFacade interface
type apartmentServiceImpl struct {
	BaseService
	apartmentRepo portsrepo.ApartmentRepositoryFacade
}

// NewApartmentServiceImpl creates a new apartment service
func NewApartmentServiceImpl(repo portsrepo.ApartmentRepositoryFacade) portssvc.ApartmentSvcFacade {
	return &apartmentServiceImpl{apartmentRepo: repo}
}

// Ensure apartmentServiceImpl implements the ApartmentSvcFacade interface
var _ portssvc.ApartmentSvcFacade = (*apartmentServiceImpl)(nil)

// GetApartmentByID returns one apartment the caller may see.
func (s *apartmentServiceImpl) GetApartmentByID(ctx context.Context, identity domain.Identity, apartmentID string) (*domain.ApartmentInfo, error) {
	info, err := requireApartmentView(ctx, s.apartmentRepo, identity, apartmentID)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// ListApartments returns a page of apartments inside the caller's scope.
func (s *apartmentServiceImpl) ListApartments(ctx context.Context, identity domain.Identity, filter domain.ApartmentFilter, limit, offset int) ([]domain.ApartmentInfo, error) {
	apartments, err := s.apartmentRepo.ListVisibleApartments(ctx, scopeForIdentity(identity), filter, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list apartments", slog.String("user_id", identity.UserID))
		return nil, err
	}
	return apartments, nil
}
