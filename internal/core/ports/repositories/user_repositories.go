package repositories

import (
	"context"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a specific user by their login email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UserBelongsToVillage reports whether the user owns an apartment or holds
	// a booking inside the given village. Used to scope village admins.
	UserBelongsToVillage(ctx context.Context, userID string, villageID string) (bool, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
