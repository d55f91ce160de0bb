package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
)

// MockApartmentRepository is a mock type for the ApartmentRepositoryFacade interface
type MockApartmentRepository struct {
	mock.Mock
}

func (m *MockApartmentRepository) FindApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) FindApartmentInfo(ctx context.Context, apartmentID string) (*domain.ApartmentInfo, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApartmentInfo), args.Error(1)
}

func (m *MockApartmentRepository) IsApartmentVisible(ctx context.Context, scope domain.ApartmentScope, apartmentID string) (bool, error) {
	args := m.Called(ctx, scope, apartmentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApartmentRepository) ListVisibleApartmentIDs(ctx context.Context, scope domain.ApartmentScope, filter domain.ApartmentFilter) ([]string, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockApartmentRepository) ListVisibleApartments(ctx context.Context, scope domain.ApartmentScope, filter domain.ApartmentFilter, limit, offset int) ([]domain.ApartmentInfo, error) {
	args := m.Called(ctx, scope, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApartmentInfo), args.Error(1)
}

func (m *MockApartmentRepository) ListOwnedApartmentIDs(ctx context.Context, ownerID string) ([]string, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockBookingRepository is a mock type for the BookingRepositoryFacade interface
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindLatestRenterBooking(ctx context.Context, apartmentID string) (*domain.Booking, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UserBelongsToVillage(ctx context.Context, userID string, villageID string) (bool, error) {
	args := m.Called(ctx, userID, villageID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockPaymentRepository is a mock type for the PaymentRepositoryFacade interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) AggregateByApartment(ctx context.Context, apartmentIDs []string, filter domain.TxnFilter) (map[string]domain.MoneyByCurrency, error) {
	args := m.Called(ctx, apartmentIDs, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.MoneyByCurrency), args.Error(1)
}

func (m *MockPaymentRepository) ListLines(ctx context.Context, scope domain.LineScope, filter domain.TxnFilter) ([]domain.InvoiceLine, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceLine), args.Error(1)
}

func (m *MockPaymentRepository) AggregateByRenter(ctx context.Context, apartmentID string) ([]domain.RenterContribution, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RenterContribution), args.Error(1)
}

// MockServiceRequestRepository is a mock type for the ServiceRequestRepositoryFacade interface
type MockServiceRequestRepository struct {
	mock.Mock
}

func (m *MockServiceRequestRepository) AggregateByApartment(ctx context.Context, apartmentIDs []string, filter domain.TxnFilter) (map[string]domain.MoneyByCurrency, error) {
	args := m.Called(ctx, apartmentIDs, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.MoneyByCurrency), args.Error(1)
}

func (m *MockServiceRequestRepository) ListLines(ctx context.Context, scope domain.LineScope, filter domain.TxnFilter) ([]domain.InvoiceLine, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceLine), args.Error(1)
}

func (m *MockServiceRequestRepository) AggregateByRenter(ctx context.Context, apartmentID string) ([]domain.RenterContribution, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RenterContribution), args.Error(1)
}

// MockUtilityReadingRepository is a mock type for the UtilityReadingRepositoryFacade interface
type MockUtilityReadingRepository struct {
	mock.Mock
}

func (m *MockUtilityReadingRepository) AggregateByApartment(ctx context.Context, apartmentIDs []string, filter domain.TxnFilter) (map[string]domain.MoneyByCurrency, error) {
	args := m.Called(ctx, apartmentIDs, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.MoneyByCurrency), args.Error(1)
}

func (m *MockUtilityReadingRepository) ListLines(ctx context.Context, scope domain.LineScope, filter domain.TxnFilter) ([]domain.InvoiceLine, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceLine), args.Error(1)
}
