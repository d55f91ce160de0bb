package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/touristvillage/portfolio_backend/internal/apperrors"
	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	portssvc "github.com/touristvillage/portfolio_backend/internal/core/ports/services"
	"github.com/touristvillage/portfolio_backend/internal/core/services"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockApartments *MockApartmentRepository
	mockBookings   *MockBookingRepository
	mockUsers      *MockUserRepository
	mockPayments   *MockPaymentRepository
	mockRequests   *MockServiceRequestRepository
	mockUtilities  *MockUtilityReadingRepository
	service        portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockApartments = new(MockApartmentRepository)
	suite.mockBookings = new(MockBookingRepository)
	suite.mockUsers = new(MockUserRepository)
	suite.mockPayments = new(MockPaymentRepository)
	suite.mockRequests = new(MockServiceRequestRepository)
	suite.mockUtilities = new(MockUtilityReadingRepository)
	suite.service = services.NewInvoiceServiceImpl(
		suite.mockApartments,
		suite.mockPayments,
		suite.mockRequests,
		suite.mockUtilities,
		services.WithBookingRepository(suite.mockBookings),
		services.WithUserRepository(suite.mockUsers),
	)
}

func money(pairs ...any) domain.MoneyByCurrency {
	m := domain.NewMoneyByCurrency()
	for i := 0; i < len(pairs); i += 2 {
		m.Add(pairs[i].(domain.Currency), decimal.NewFromInt(int64(pairs[i+1].(int))))
	}
	return m
}

func (suite *InvoiceServiceTestSuite) TestApartmentSummary_ReconcilesThreeSources() {
	ctx := context.Background()
	identity := domain.Identity{UserID: "owner-1", Role: domain.RoleOwner}

	suite.mockApartments.On("ListVisibleApartmentIDs", ctx, mock.Anything, mock.Anything).
		Return([]string{"apt-1"}, nil).Once()
	suite.mockPayments.On("AggregateByApartment", ctx, []string{"apt-1"}, mock.Anything).
		Return(map[string]domain.MoneyByCurrency{"apt-1": money(domain.EGP, 500)}, nil).Once()
	suite.mockRequests.On("AggregateByApartment", ctx, []string{"apt-1"}, mock.Anything).
		Return(map[string]domain.MoneyByCurrency{"apt-1": money(domain.EGP, 200)}, nil).Once()
	suite.mockUtilities.On("AggregateByApartment", ctx, []string{"apt-1"}, mock.Anything).
		Return(map[string]domain.MoneyByCurrency{"apt-1": money(domain.EGP, 100)}, nil).Once()
	suite.mockApartments.On("ListVisibleApartments", ctx, mock.Anything, mock.Anything, 50, 0).
		Return([]domain.ApartmentInfo{{ApartmentID: "apt-1", Name: "A1", OwnerID: "owner-1"}}, nil).Once()

	report, err := suite.service.ApartmentSummary(ctx, identity, domain.SummaryQuery{Page: 1, Limit: 50})

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)

	row := report.Rows[0]
	suite.True(row.MoneySpent.Get(domain.EGP).Equal(decimal.NewFromInt(500)))
	suite.True(row.MoneyRequested.Get(domain.EGP).Equal(decimal.NewFromInt(300)))
	suite.True(row.NetMoney.Get(domain.EGP).Equal(decimal.NewFromInt(-200)))

	suite.True(report.Totals.MoneySpent.Get(domain.EGP).Equal(decimal.NewFromInt(500)))
	suite.True(report.Totals.NetMoney.Get(domain.EGP).Equal(decimal.NewFromInt(-200)))
	suite.Equal(int64(1), report.Pagination.Total)

	suite.mockApartments.AssertExpectations(suite.T())
	suite.mockPayments.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestApartmentSummary_CurrenciesNeverMerge() {
	ctx := context.Background()
	identity := domain.Identity{UserID: "admin-1", Role: domain.RoleSuperAdmin}

	suite.mockApartments.On("ListVisibleApartmentIDs", ctx, mock.Anything, mock.Anything).
		Return([]string{"apt-1"}, nil).Once()
	suite.mockPayments.On("AggregateByApartment", ctx, mock.Anything, mock.Anything).
		Return(map[string]domain.MoneyByCurrency{"apt-1": money(domain.EGP, 100, domain.GBP, 50)}, nil).Once()
	suite.mockRequests.On("AggregateByApartment", ctx, mock.Anything, mock.Anything).
		Return(map[string]domain.MoneyByCurrency{}, nil).Once()
	suite.mockUtilities.On("AggregateByApartment", ctx, mock.Anything, mock.Anything).
		Return(map[string]domain.MoneyByCurrency{}, nil).Once()
	suite.mockApartments.On("ListVisibleApartments", ctx, mock.Anything, mock.Anything, 50, 0).
		Return([]domain.ApartmentInfo{{ApartmentID: "apt-1"}}, nil).Once()

	report, err := suite.service.ApartmentSummary(ctx, identity, domain.SummaryQuery{Page: 1, Limit: 50})

	suite.Require().NoError(err)
	suite.True(report.Totals.MoneySpent.Get(domain.EGP).Equal(decimal.NewFromInt(100)))
	suite.True(report.Totals.MoneySpent.Get(domain.GBP).Equal(decimal.NewFromInt(50)))
	suite.True(report.Totals.NetMoney.Get(domain.EGP).Equal(decimal.NewFromInt(-100)))
	suite.True(report.Totals.NetMoney.Get(domain.GBP).Equal(decimal.NewFromInt(-50)))
}

func (suite *InvoiceServiceTestSuite) TestApartmentSummary_TotalsCoverEveryPage() {
	ctx := context.Background()
	identity := domain.Identity{UserID: "admin-1", Role: domain.RoleSuperAdmin}

	// Three visible apartments, page window of one.
	suite.mockApartments.On("ListVisibleApartmentIDs", ctx, mock.Anything, mock.Anything).
		Return([]string{"apt-1", "apt-2", "apt-3"}, nil).Once()
	suite.mockPayments.On("AggregateByApartment", ctx, []string{"apt-1", "apt-2", "apt-3"}, mock.Anything).
		Return(map[string]domain.MoneyByCurrency{
			"apt-1": money(domain.EGP, 10),
			"apt-2": money(domain.EGP, 20),
			"apt-3": money(domain.EGP, 30),
		}, nil).Once()
	suite.mockRequests.On("AggregateByApartment", ctx, mock.Anything, mock.Anything).
		Return(map[string]domain.MoneyByCurrency{}, nil).Once()
	suite.mockUtilities.On("AggregateByApartment", ctx, mock.Anything, mock.Anything).
		Return(map[string]domain.MoneyByCurrency{}, nil).Once()
	suite.mockApartments.On("ListVisibleApartments", ctx, mock.Anything, mock.Anything, 1, 0).
		Return([]domain.ApartmentInfo{{ApartmentID: "apt-1"}}, nil).Once()

	report, err := suite.service.ApartmentSummary(ctx, identity, domain.SummaryQuery{Page: 1, Limit: 1})

	suite.Require().NoError(err)
	suite.Len(report.Rows, 1)
	suite.True(report.Totals.MoneySpent.Get(domain.EGP).Equal(decimal.NewFromInt(60)))
	suite.Equal(int64(3), report.Pagination.Total)
	suite.Equal(3, report.Pagination.TotalPages)
}

func (suite *InvoiceServiceTestSuite) TestPreviousYearsTotals_RequiresBeforeYear() {
	ctx := context.Background()
	identity := domain.Identity{UserID: "admin-1", Role: domain.RoleSuperAdmin}

	_, err := suite.service.PreviousYearsTotals(ctx, identity, domain.SummaryQuery{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestApartmentDetail_UnknownApartmentIsNotFound() {
	ctx := context.Background()
	identity := domain.Identity{UserID: "owner-1", Role: domain.RoleOwner}

	suite.mockApartments.On("FindApartmentInfo", ctx, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ApartmentDetail(ctx, identity, "missing", domain.SummaryQuery{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestApartmentDetail_HiddenApartmentIsForbidden() {
	ctx := context.Background()
	identity := domain.Identity{UserID: "owner-1", Role: domain.RoleOwner}

	suite.mockApartments.On("FindApartmentInfo", ctx, "apt-9").
		Return(&domain.ApartmentInfo{ApartmentID: "apt-9"}, nil).Once()
	suite.mockApartments.On("IsApartmentVisible", ctx, mock.Anything, "apt-9").
		Return(false, nil).Once()

	_, err := suite.service.ApartmentDetail(ctx, identity, "apt-9", domain.SummaryQuery{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *InvoiceServiceTestSuite) TestApartmentDetail_MergesAndSortsLines() {
	ctx := context.Background()
	identity := domain.Identity{UserID: "owner-1", Role: domain.RoleOwner}
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }

	suite.mockApartments.On("FindApartmentInfo", ctx, "apt-1").
		Return(&domain.ApartmentInfo{ApartmentID: "apt-1", Name: "A1"}, nil).Once()
	suite.mockApartments.On("IsApartmentVisible", ctx, mock.Anything, "apt-1").
		Return(true, nil).Once()

	suite.mockPayments.On("ListLines", ctx, mock.Anything, mock.Anything).
		Return([]domain.InvoiceLine{
			{LineID: "payment_1", Source: domain.SourcePayment, Amount: decimal.NewFromInt(500), Currency: domain.EGP, Date: day(10)},
		}, nil).Once()
	suite.mockRequests.On("ListLines", ctx, mock.Anything, mock.Anything).
		Return([]domain.InvoiceLine{
			{LineID: "service_request_1", Source: domain.SourceServiceRequest, Amount: decimal.NewFromInt(200), Currency: domain.EGP, Date: day(20)},
		}, nil).Once()
	suite.mockUtilities.On("ListLines", ctx, mock.Anything, mock.Anything).
		Return([]domain.InvoiceLine{
			{LineID: "utility_reading_1", Source: domain.SourceUtilityReading, Amount: decimal.NewFromInt(100), Currency: domain.EGP, Date: day(15)},
		}, nil).Once()

	detail, err := suite.service.ApartmentDetail(ctx, identity, "apt-1", domain.SummaryQuery{})

	suite.Require().NoError(err)
	suite.Require().Len(detail.Lines, 3)
	// Newest first
	suite.Equal("service_request_1", detail.Lines[0].LineID)
	suite.Equal("utility_reading_1", detail.Lines[1].LineID)
	suite.Equal("payment_1", detail.Lines[2].LineID)
	// Totals derived from the listed lines
	suite.True(detail.Totals.MoneySpent.Get(domain.EGP).Equal(decimal.NewFromInt(500)))
	suite.True(detail.Totals.MoneyRequested.Get(domain.EGP).Equal(decimal.NewFromInt(300)))
	suite.True(detail.Totals.NetMoney.Get(domain.EGP).Equal(decimal.NewFromInt(-200)))
}

func (suite *InvoiceServiceTestSuite) TestUserDetail_RenterSeesOnlyOwnActions() {
	ctx := context.Background()
	renter := domain.Identity{UserID: "renter-1", Role: domain.RoleRenter}

	suite.mockUsers.On("FindUserByID", ctx, "renter-1").
		Return(&domain.User{UserID: "renter-1", Role: domain.RoleRenter}, nil).Once()

	actorScope := mock.MatchedBy(func(scope domain.LineScope) bool {
		return scope.ActorUserID != nil && *scope.ActorUserID == "renter-1" && scope.ApartmentID == nil
	})
	renterWideFilter := mock.MatchedBy(func(filter domain.TxnFilter) bool {
		return filter.IncludeRenter
	})
	suite.mockPayments.On("ListLines", ctx, actorScope, renterWideFilter).
		Return([]domain.InvoiceLine{}, nil).Once()
	suite.mockRequests.On("ListLines", ctx, actorScope, renterWideFilter).
		Return([]domain.InvoiceLine{}, nil).Once()
	suite.mockUtilities.On("ListLines", ctx, actorScope, renterWideFilter).
		Return([]domain.InvoiceLine{}, nil).Once()

	detail, err := suite.service.UserDetail(ctx, renter, "renter-1", domain.SummaryQuery{})

	suite.Require().NoError(err)
	suite.Empty(detail.Lines)
	suite.mockPayments.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUserDetail_StrangerIsForbidden() {
	ctx := context.Background()
	renter := domain.Identity{UserID: "renter-1", Role: domain.RoleRenter}

	suite.mockUsers.On("FindUserByID", ctx, "owner-2").
		Return(&domain.User{UserID: "owner-2", Role: domain.RoleOwner}, nil).Once()

	_, err := suite.service.UserDetail(ctx, renter, "owner-2", domain.SummaryQuery{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *InvoiceServiceTestSuite) TestUserDetail_VillageAdminConfinedToVillage() {
	ctx := context.Background()
	villageID := "village-1"
	admin := domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin, ResponsibleVillageID: &villageID}

	suite.mockUsers.On("FindUserByID", ctx, "owner-2").
		Return(&domain.User{UserID: "owner-2", Role: domain.RoleOwner}, nil).Once()
	suite.mockUsers.On("UserBelongsToVillage", ctx, "owner-2", villageID).
		Return(false, nil).Once()

	_, err := suite.service.UserDetail(ctx, admin, "owner-2", domain.SummaryQuery{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUsers.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUserDetail_OwnerWithNoApartmentsIsEmpty() {
	ctx := context.Background()
	owner := domain.Identity{UserID: "owner-1", Role: domain.RoleOwner}

	suite.mockUsers.On("FindUserByID", ctx, "owner-1").
		Return(&domain.User{UserID: "owner-1", Role: domain.RoleOwner}, nil).Once()
	suite.mockApartments.On("ListOwnedApartmentIDs", ctx, "owner-1").
		Return([]string{}, nil).Once()

	detail, err := suite.service.UserDetail(ctx, owner, "owner-1", domain.SummaryQuery{})

	suite.Require().NoError(err)
	suite.Empty(detail.Lines)
	suite.True(detail.Totals.NetMoney.Get(domain.EGP).IsZero())
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
