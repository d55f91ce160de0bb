package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/touristvillage/portfolio_backend/internal/apperrors"
	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	portsrepo "github.com/touristvillage/portfolio_backend/internal/core/ports/repositories"
	portssvc "github.com/touristvillage/portfolio_backend/internal/core/ports/services"
	"github.com/touristvillage/portfolio_backend/internal/dto"
	"github.com/touristvillage/portfolio_backend/internal/utils"
)

// userServiceImpl implements the UserSvcFacade interface
type userServiceImpl struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserServiceImpl creates a new user service
func NewUserServiceImpl(repo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userServiceImpl{userRepo: repo}
}

// Ensure userServiceImpl implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userServiceImpl)(nil)

// GetUserByID retrieves a user, enforcing the caller's visibility: users see
// themselves, super admins see everyone, village admins see users who own or
// rent inside their village.
func (s *userServiceImpl) GetUserByID(ctx context.Context, identity domain.Identity, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch {
	case identity.UserID == userID || identity.Role == domain.RoleSuperAdmin:
		return user, nil
	case identity.Role == domain.RoleAdmin:
		if identity.ResponsibleVillageID == nil {
			return user, nil
		}
		belongs, err := s.userRepo.UserBelongsToVillage(ctx, userID, *identity.ResponsibleVillageID)
		if err != nil {
			s.LogError(ctx, err, "Failed to check village membership", slog.String("user_id", userID))
			return nil, err
		}
		if !belongs {
			return nil, apperrors.ErrForbidden
		}
		return user, nil
	default:
		return nil, apperrors.ErrForbidden
	}
}

// CreateUser registers a new user with a hashed password.
func (s *userServiceImpl) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrDuplicate
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	now := time.Now()
	newUserID := uuid.NewString()
	user := domain.User{
		UserID:               newUserID,
		Name:                 req.Name,
		Email:                req.Email,
		Role:                 role,
		ResponsibleVillageID: req.ResponsibleVillageID,
		PasswordHash:         passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, err
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(role)))
	return &user, nil
}

// AuthenticateUser verifies the credentials and returns the user. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *userServiceImpl) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrForbidden
	}

	return user, nil
}
