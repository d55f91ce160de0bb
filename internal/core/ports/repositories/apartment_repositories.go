package repositories

import (
	"context"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
)

// ApartmentReader defines read operations for apartment data. Every listing
// method takes the caller's visibility scope; the store ANDs the scope into
// the query so invisible apartments never leave the database.
type ApartmentReader interface {
	// FindApartmentByID retrieves a specific apartment regardless of scope.
	// Callers check existence first, then visibility, so a denied caller gets
	// a distinct forbidden outcome rather than a not-found.
	FindApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error)

	// FindApartmentInfo retrieves one apartment with village and owner names resolved.
	FindApartmentInfo(ctx context.Context, apartmentID string) (*domain.ApartmentInfo, error)

	// IsApartmentVisible reports whether the apartment falls inside the scope.
	IsApartmentVisible(ctx context.Context, scope domain.ApartmentScope, apartmentID string) (bool, error)

	// ListVisibleApartmentIDs returns the ids of every apartment matching the
	// scope and filter, with no page window. This is the full filtered set
	// the summary totals are computed over.
	ListVisibleApartmentIDs(ctx context.Context, scope domain.ApartmentScope, filter domain.ApartmentFilter) ([]string, error)

	// ListVisibleApartments returns a page of apartments matching the scope
	// and filter, ordered by name then id for a stable page sequence.
	ListVisibleApartments(ctx context.Context, scope domain.ApartmentScope, filter domain.ApartmentFilter, limit, offset int) ([]domain.ApartmentInfo, error)

	// ListOwnedApartmentIDs returns the ids of every apartment a user owns.
	ListOwnedApartmentIDs(ctx context.Context, ownerID string) ([]string, error)
}

// ApartmentRepositoryFacade combines all apartment-related repository interfaces.
type ApartmentRepositoryFacade interface {
	ApartmentReader
}
