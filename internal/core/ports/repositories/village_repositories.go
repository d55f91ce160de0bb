package repositories

import (
	"context"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
)

// VillageReader defines read operations for village data.
type VillageReader interface {
	// FindVillageByID retrieves a specific village by its ID.
	FindVillageByID(ctx context.Context, villageID string) (*domain.Village, error)

	// ListVillages retrieves a paginated list of villages.
	ListVillages(ctx context.Context, limit int, offset int) ([]domain.Village, error)
}

// VillageRepositoryFacade combines all village-related repository interfaces.
type VillageRepositoryFacade interface {
	VillageReader
}
