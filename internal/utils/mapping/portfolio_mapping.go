package mapping

import (
	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	"github.com/touristvillage/portfolio_backend/internal/models"
)

// ToDomainVillage converts a model Village to a domain Village.
func ToDomainVillage(m models.Village) domain.Village {
	return domain.Village{
		VillageID:        m.VillageID,
		Name:             m.Name,
		ElectricityPrice: m.ElectricityPrice,
		WaterPrice:       m.WaterPrice,
		Phases:           m.Phases,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainApartment converts a model Apartment to a domain Apartment.
func ToDomainApartment(m models.Apartment) domain.Apartment {
	return domain.Apartment{
		ApartmentID: m.ApartmentID,
		Name:        m.Name,
		VillageID:   m.VillageID,
		Phase:       m.Phase,
		OwnerID:     m.OwnerID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBooking converts a model Booking to a domain Booking.
func ToDomainBooking(m models.Booking) (domain.Booking, error) {
	userType, err := domain.ParseBookingUserType(m.UserType)
	if err != nil {
		return domain.Booking{}, err
	}
	return domain.Booking{
		BookingID:   m.BookingID,
		ApartmentID: m.ApartmentID,
		UserID:      m.UserID,
		UserType:    userType,
		ArrivalDate: m.ArrivalDate,
		LeavingDate: m.LeavingDate,
		Status:      m.Status,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainPayment converts a model Payment to a domain Payment, normalizing
// the nullable user_type column (nil resolves to owner).
func ToDomainPayment(m models.Payment) (domain.Payment, error) {
	currency, err := domain.ParseCurrency(m.Currency)
	if err != nil {
		return domain.Payment{}, err
	}
	payer, err := domain.ParsePayerRole(m.PayerRole)
	if err != nil {
		return domain.Payment{}, err
	}
	return domain.Payment{
		PaymentID:   m.PaymentID,
		ApartmentID: m.ApartmentID,
		BookingID:   m.BookingID,
		Amount:      m.Amount,
		Currency:    currency,
		PaidAt:      m.PaidAt,
		PayerRole:   payer,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainServiceRequest converts a model ServiceRequest to a domain
// ServiceRequest, normalizing who_pays (nil resolves to owner).
func ToDomainServiceRequest(m models.ServiceRequest) (domain.ServiceRequest, error) {
	currency, err := domain.ParseCurrency(m.Currency)
	if err != nil {
		return domain.ServiceRequest{}, err
	}
	payer, err := domain.ParsePayerRole(m.WhoPays)
	if err != nil {
		return domain.ServiceRequest{}, err
	}
	return domain.ServiceRequest{
		ServiceRequestID: m.ServiceRequestID,
		ApartmentID:      m.ApartmentID,
		BookingID:        m.BookingID,
		RequesterID:      m.RequesterID,
		Description:      m.Description,
		Cost:             m.Cost,
		Currency:         currency,
		PayerRole:        payer,
		ActionAt:         m.ActionAt,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainUtilityReading converts a model UtilityReading to a domain
// UtilityReading, normalizing who_pays (nil resolves to owner).
func ToDomainUtilityReading(m models.UtilityReading) (domain.UtilityReading, error) {
	payer, err := domain.ParsePayerRole(m.WhoPays)
	if err != nil {
		return domain.UtilityReading{}, err
	}
	return domain.UtilityReading{
		UtilityReadingID: m.UtilityReadingID,
		ApartmentID:      m.ApartmentID,
		BookingID:        m.BookingID,
		WaterStart:       m.WaterStart,
		WaterEnd:         m.WaterEnd,
		ElectricityStart: m.ElectricityStart,
		ElectricityEnd:   m.ElectricityEnd,
		PayerRole:        payer,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}, nil
}
