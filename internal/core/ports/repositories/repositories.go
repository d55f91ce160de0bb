package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ApartmentRepo      ApartmentRepositoryFacade
	BookingRepo        BookingRepositoryFacade
	UserRepo           UserRepositoryFacade
	VillageRepo        VillageRepositoryFacade
	PaymentRepo        PaymentRepositoryFacade
	ServiceRequestRepo ServiceRequestRepositoryFacade
	UtilityReadingRepo UtilityReadingRepositoryFacade
}
