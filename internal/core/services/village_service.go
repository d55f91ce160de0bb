package services

import (
	"context"
	"log/slog"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	portsrepo "github.com/touristvillage/portfolio_backend/internal/core/ports/repositories"
	portssvc "github.com/touristvillage/portfolio_backend/internal/core/ports/services"
)

// villageServiceImpl implements the VillageSvcFacade interface
type villageServiceImpl struct {
	BaseService
	villageRepo portsrepo.VillageRepositoryFacade
}

// NewVillageServiceImpl creates a new village service
func NewVillageServiceImpl(repo portsrepo.VillageRepositoryFacade) portssvc.VillageSvcFacade {
	return &villageServiceImpl{villageRepo: repo}
}

// Ensure villageServiceImpl implements the VillageSvcFacade interface
var _ portssvc.VillageSvcFacade = (*villageServiceImpl)(nil)

// GetVillageByID returns one village.
func (s *villageServiceImpl) GetVillageByID(ctx context.Context, villageID string) (*domain.Village, error) {
	village, err := s.villageRepo.FindVillageByID(ctx, villageID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find village", slog.String("village_id", villageID))
		return nil, err
	}
	return village, nil
}

// ListVillages returns a page of villages.
func (s *villageServiceImpl) ListVillages(ctx context.Context, limit, offset int) ([]domain.Village, error) {
	villages, err := s.villageRepo.ListVillages(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list villages")
		return nil, err
	}
	return villages, nil
}
