package services

import (
	"context"
	"time"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	portssvc "github.com/touristvillage/portfolio_backend/internal/core/ports/services"
	"github.com/touristvillage/portfolio_backend/internal/platform/config"
	"github.com/touristvillage/portfolio_backend/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing JWT access tokens.
// It requires access to application configuration for secrets and expiry times.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user. The
// token embeds the role and responsible village so downstream requests can be
// scoped without a user lookup.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, string(user.Role), user.ResponsibleVillageID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
