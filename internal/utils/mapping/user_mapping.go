package mapping

import (
	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	"github.com/touristvillage/portfolio_backend/internal/models"
)

// ToDomainUser converts a model User to a domain User, normalizing the raw
// role column into the closed Role type.
func ToDomainUser(m models.User) (domain.User, error) {
	role, err := domain.ParseRole(m.Role)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		UserID:               m.UserID,
		Name:                 m.Name,
		Email:                m.Email,
		Role:                 role,
		ResponsibleVillageID: m.ResponsibleVillageID,
		PasswordHash:         m.PasswordHash,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
		DeletedAt:            m.DeletedAt,
	}, nil
}

// ToModelUser converts a domain User to a model User.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:               d.UserID,
		Name:                 d.Name,
		Email:                d.Email,
		PasswordHash:         d.PasswordHash,
		Role:                 string(d.Role),
		ResponsibleVillageID: d.ResponsibleVillageID,
		AuditFields:          ToModelAuditFields(d.AuditFields),
		DeletedAt:            d.DeletedAt,
	}
}
