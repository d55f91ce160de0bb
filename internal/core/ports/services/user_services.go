package services

import (
	"context"
	"time"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	"github.com/touristvillage/portfolio_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID, enforcing the caller's visibility.
	GetUserByID(ctx context.Context, identity domain.Identity, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates a new user.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed JWT carrying the user's identity
	// (id, role, responsible village).
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
