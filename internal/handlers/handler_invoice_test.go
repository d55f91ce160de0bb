package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/touristvillage/portfolio_backend/internal/apperrors"
	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	portssvc "github.com/touristvillage/portfolio_backend/internal/core/ports/services"
	"github.com/touristvillage/portfolio_backend/internal/dto"
	"github.com/touristvillage/portfolio_backend/internal/handlers"
	"github.com/touristvillage/portfolio_backend/internal/platform/config"
	"github.com/touristvillage/portfolio_backend/internal/utils"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) ApartmentSummary(ctx context.Context, identity domain.Identity, query domain.SummaryQuery) (*domain.ApartmentSummaryReport, error) {
	args := m.Called(ctx, identity, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApartmentSummaryReport), args.Error(1)
}

func (m *MockInvoiceService) PreviousYearsTotals(ctx context.Context, identity domain.Identity, query domain.SummaryQuery) (*domain.SummaryTotals, error) {
	args := m.Called(ctx, identity, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SummaryTotals), args.Error(1)
}

func (m *MockInvoiceService) ApartmentDetail(ctx context.Context, identity domain.Identity, apartmentID string, query domain.SummaryQuery) (*domain.ApartmentDetail, error) {
	args := m.Called(ctx, identity, apartmentID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApartmentDetail), args.Error(1)
}

func (m *MockInvoiceService) UserDetail(ctx context.Context, identity domain.Identity, userID string, query domain.SummaryQuery) (*domain.UserDetail, error) {
	args := m.Called(ctx, identity, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserDetail), args.Error(1)
}

func (m *MockInvoiceService) RenterSummary(ctx context.Context, identity domain.Identity, apartmentID string) (*domain.RenterSummary, error) {
	args := m.Called(ctx, identity, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenterSummary), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Test Suite ---

type InvoiceHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockInvoiceSvc *MockInvoiceService
	cfg            *config.Config
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidations()

	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
		AuthRateLimit:     "100-M",
	}
	suite.mockInvoiceSvc = new(MockInvoiceService)

	services := &portssvc.ServiceContainer{
		Invoice: suite.mockInvoiceSvc,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, services)
}

func (suite *InvoiceHandlerTestSuite) bearerToken(identity domain.Identity) string {
	token, err := utils.GenerateJWT(identity.UserID, string(identity.Role), identity.ResponsibleVillageID, suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *InvoiceHandlerTestSuite) TestGetSummary_RequiresAuth() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/summary", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestGetSummary_ReturnsReport() {
	identity := domain.Identity{UserID: "owner-1", Role: domain.RoleOwner}

	totals := domain.NewSummaryTotals()
	totals.MoneySpent.Add(domain.EGP, decimal.NewFromInt(500))
	totals.NetMoney = totals.MoneyRequested.Sub(totals.MoneySpent)
	report := &domain.ApartmentSummaryReport{
		Rows: []domain.ApartmentSummaryRow{
			{ApartmentID: "apt-1", ApartmentName: "A1", SummaryTotals: totals},
		},
		Totals:     totals,
		Pagination: domain.Pagination{Page: 1, Limit: 50, Total: 1, TotalPages: 1},
	}
	suite.mockInvoiceSvc.On("ApartmentSummary", mock.Anything, identity, mock.Anything).
		Return(report, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/summary?year=2025", nil)
	req.Header.Set("Authorization", suite.bearerToken(identity))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ApartmentSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Apartments, 1)
	suite.Equal("apt-1", resp.Apartments[0].ApartmentID)
	suite.True(resp.Totals.MoneySpent.EGP.Equal(decimal.NewFromInt(500)))
	suite.True(resp.Totals.MoneySpent.GBP.IsZero())
	suite.Equal(int64(1), resp.Pagination.Total)

	suite.mockInvoiceSvc.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestGetSummary_RejectsBadDate() {
	identity := domain.Identity{UserID: "owner-1", Role: domain.RoleOwner}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/summary?date_from=June+2024", nil)
	req.Header.Set("Authorization", suite.bearerToken(identity))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestGetApartmentDetail_MapsForbidden() {
	identity := domain.Identity{UserID: "renter-1", Role: domain.RoleRenter}

	suite.mockInvoiceSvc.On("ApartmentDetail", mock.Anything, identity, "apt-9", mock.Anything).
		Return(nil, apperrors.ErrForbidden).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/apartments/apt-9", nil)
	req.Header.Set("Authorization", suite.bearerToken(identity))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestGetRenterSummary_MapsNotFound() {
	identity := domain.Identity{UserID: "owner-1", Role: domain.RoleOwner}

	suite.mockInvoiceSvc.On("RenterSummary", mock.Anything, identity, "apt-1").
		Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/apartments/apt-1/renter-summary", nil)
	req.Header.Set("Authorization", suite.bearerToken(identity))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestGetPreviousYears_RequiresBeforeYear() {
	identity := domain.Identity{UserID: "owner-1", Role: domain.RoleOwner}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/summary/previous-years", nil)
	req.Header.Set("Authorization", suite.bearerToken(identity))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestGetPreviousYears_ReturnsTotals() {
	identity := domain.Identity{UserID: "owner-1", Role: domain.RoleOwner}

	totals := domain.NewSummaryTotals()
	totals.MoneyRequested.Add(domain.EGP, decimal.NewFromInt(75))
	totals.NetMoney = totals.MoneyRequested.Sub(totals.MoneySpent)
	suite.mockInvoiceSvc.On("PreviousYearsTotals", mock.Anything, identity, mock.Anything).
		Return(&totals, nil).Once()

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/invoices/summary/previous-years?before_year=%d", 2025), nil)
	req.Header.Set("Authorization", suite.bearerToken(identity))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.PreviousYearsTotalsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2025, resp.BeforeYear)
	suite.True(resp.Totals.MoneyRequested.EGP.Equal(decimal.NewFromInt(75)))
}

func TestInvoiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
