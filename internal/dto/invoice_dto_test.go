package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touristvillage/portfolio_backend/internal/apperrors"
	"github.com/touristvillage/portfolio_backend/internal/dto"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestToSummaryQuery_YearWinsOverDateRange(t *testing.T) {
	params := dto.SummaryQueryParams{
		Year:     intPtr(2024),
		DateFrom: strPtr("2024-01-01"),
		DateTo:   strPtr("2024-06-30"),
	}

	query, err := params.ToSummaryQuery()
	require.NoError(t, err)

	require.NotNil(t, query.Year)
	assert.Equal(t, 2024, *query.Year)
	assert.Nil(t, query.DateFrom)
	assert.Nil(t, query.DateTo)

	filter := query.TxnFilter()
	require.NotNil(t, filter.Year)
	assert.Nil(t, filter.DateFrom)
}

func TestToSummaryQuery_DateToIsInclusive(t *testing.T) {
	params := dto.SummaryQueryParams{
		DateFrom: strPtr("2024-01-01"),
		DateTo:   strPtr("2024-01-31"),
	}

	query, err := params.ToSummaryQuery()
	require.NoError(t, err)

	require.NotNil(t, query.DateTo)
	// End of the requested day, so transactions dated anytime on Jan 31 match.
	assert.Equal(t, 2024, query.DateTo.Year())
	assert.Equal(t, time.January, query.DateTo.Month())
	assert.Equal(t, 31, query.DateTo.Day())
	assert.Equal(t, 23, query.DateTo.Hour())
}

func TestToSummaryQuery_RejectsInvertedRange(t *testing.T) {
	params := dto.SummaryQueryParams{
		DateFrom: strPtr("2024-06-01"),
		DateTo:   strPtr("2024-01-01"),
	}

	_, err := params.ToSummaryQuery()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToSummaryQuery_RejectsMalformedDates(t *testing.T) {
	params := dto.SummaryQueryParams{DateFrom: strPtr("01/06/2024")}

	_, err := params.ToSummaryQuery()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToSummaryQuery_RejectsUnknownUserType(t *testing.T) {
	params := dto.SummaryQueryParams{UserType: strPtr("visitor")}

	_, err := params.ToSummaryQuery()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
