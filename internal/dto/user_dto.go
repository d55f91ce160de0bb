package dto

import (
	"time"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a new user.
type CreateUserRequest struct {
	Name                 string  `json:"name" binding:"required"`
	Email                string  `json:"email" binding:"required,email"`
	Password             string  `json:"password" binding:"required,min=8"`
	Role                 string  `json:"role" binding:"required,oneof=owner renter admin super_admin"`
	ResponsibleVillageID *string `json:"responsibleVillageID"`
}

// UserResponse defines the user data returned by the API.
type UserResponse struct {
	UserID               string    `json:"userID"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Role                 string    `json:"role"`
	ResponsibleVillageID *string   `json:"responsibleVillageID,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:               user.UserID,
		Name:                 user.Name,
		Email:                user.Email,
		Role:                 string(user.Role),
		ResponsibleVillageID: user.ResponsibleVillageID,
		CreatedAt:            user.CreatedAt,
	}
}
