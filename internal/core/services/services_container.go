package services

import (
	portsrepo "github.com/touristvillage/portfolio_backend/internal/core/ports/repositories"
	portssvc "github.com/touristvillage/portfolio_backend/internal/core/ports/services"
	"github.com/touristvillage/portfolio_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Invoice = NewInvoiceServiceImpl(
		repos.ApartmentRepo,
		repos.PaymentRepo,
		repos.ServiceRequestRepo,
		repos.UtilityReadingRepo,
		WithBookingRepository(repos.BookingRepo),
		WithUserRepository(repos.UserRepo),
	)

	container.Apartment = NewApartmentServiceImpl(repos.ApartmentRepo)
	container.Village = NewVillageServiceImpl(repos.VillageRepo)
	container.User = NewUserServiceImpl(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}
