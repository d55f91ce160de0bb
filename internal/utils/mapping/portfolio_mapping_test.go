package mapping

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	"github.com/touristvillage/portfolio_backend/internal/models"
)

func strPtr(v string) *string { return &v }

func TestToDomainPayment_NormalizesPayerAndCurrency(t *testing.T) {
	tests := []struct {
		name      string
		currency  string
		payerRole *string
		wantCur   domain.Currency
		wantPayer domain.PayerRole
	}{
		{"missing payer defaults to owner", "EGP", nil, domain.EGP, domain.PayerOwner},
		{"blank payer defaults to owner", "GBP", strPtr("  "), domain.GBP, domain.PayerOwner},
		{"legacy mixed case payer", "egp", strPtr("Renter"), domain.EGP, domain.PayerRenter},
		{"company payer", "gbp", strPtr("COMPANY"), domain.GBP, domain.PayerCompany},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := models.Payment{
				PaymentID:   "pay-1",
				ApartmentID: "apt-1",
				Amount:      decimal.NewFromInt(100),
				Currency:    tt.currency,
				PaidAt:      time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
				PayerRole:   tt.payerRole,
			}

			payment, err := ToDomainPayment(m)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCur, payment.Currency)
			assert.Equal(t, tt.wantPayer, payment.PayerRole)
		})
	}
}

func TestToDomainPayment_RejectsUnknownValues(t *testing.T) {
	_, err := ToDomainPayment(models.Payment{PaymentID: "pay-1", Currency: "USD"})
	assert.Error(t, err)

	_, err = ToDomainPayment(models.Payment{PaymentID: "pay-1", Currency: "EGP", PayerRole: strPtr("landlord")})
	assert.Error(t, err)
}

func TestToDomainServiceRequest_EffectiveDate(t *testing.T) {
	created := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	actioned := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	m := models.ServiceRequest{
		ServiceRequestID: "sr-1",
		ApartmentID:      "apt-1",
		RequesterID:      "user-1",
		Cost:             decimal.NewFromInt(200),
		Currency:         "EGP",
		WhoPays:          strPtr("owner"),
	}
	m.CreatedAt = created

	request, err := ToDomainServiceRequest(m)
	require.NoError(t, err)
	assert.Equal(t, created, request.EffectiveDate(), "no action date falls back to creation time")

	m.ActionAt = &actioned
	request, err = ToDomainServiceRequest(m)
	require.NoError(t, err)
	assert.Equal(t, actioned, request.EffectiveDate(), "action date wins when recorded")
}

func TestToDomainUtilityReading_NormalizesPayer(t *testing.T) {
	start := decimal.NewFromInt(100)
	end := decimal.NewFromInt(150)

	m := models.UtilityReading{
		UtilityReadingID: "ur-1",
		ApartmentID:      "apt-1",
		WaterStart:       &start,
		WaterEnd:         &end,
		WhoPays:          nil,
	}

	reading, err := ToDomainUtilityReading(m)

	require.NoError(t, err)
	assert.Equal(t, domain.PayerOwner, reading.PayerRole)
	assert.Nil(t, reading.ElectricityStart)
	require.NotNil(t, reading.WaterStart)
	assert.True(t, reading.WaterStart.Equal(start))
}
