package services

import (
	"context"

	"github.com/touristvillage/portfolio_backend/internal/apperrors"
	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	portsrepo "github.com/touristvillage/portfolio_backend/internal/core/ports/repositories"
)

// scopeForIdentity translates the caller's role into the apartment visibility
// scope applied to every portfolio query. Super admins see everything, village
// admins see their village, owners see apartments they own and renters see
// apartments they have booked.
func scopeForIdentity(identity domain.Identity) domain.ApartmentScope {
	switch identity.Role {
	case domain.RoleSuperAdmin:
		return domain.ApartmentScope{}
	case domain.RoleAdmin:
		return domain.ApartmentScope{VillageID: identity.ResponsibleVillageID}
	case domain.RoleRenter:
		uid := identity.UserID
		return domain.ApartmentScope{BookedByUserID: &uid}
	default:
		uid := identity.UserID
		return domain.ApartmentScope{OwnerID: &uid}
	}
}

// requireApartmentView checks existence before visibility so a caller cannot
// probe for apartments outside their scope: unknown ids yield not-found,
// known-but-hidden ids yield forbidden.
func requireApartmentView(ctx context.Context, repo portsrepo.ApartmentRepositoryFacade, identity domain.Identity, apartmentID string) (*domain.ApartmentInfo, error) {
	info, err := repo.FindApartmentInfo(ctx, apartmentID)
	if err != nil {
		return nil, err
	}
	visible, err := repo.IsApartmentVisible(ctx, scopeForIdentity(identity), apartmentID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, apperrors.ErrForbidden
	}
	return info, nil
}
