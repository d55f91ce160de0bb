package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	"github.com/touristvillage/portfolio_backend/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens
// and stores the caller's identity (id, role, village scope) in the context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		role, err := domain.ParseRole(claims.Role)
		if err != nil {
			logger.Error("Unknown role in token claims", "role", claims.Role)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		identity := domain.Identity{
			UserID:               claims.Subject,
			Role:                 role,
			ResponsibleVillageID: claims.ResponsibleVillageID,
		}

		// Store the identity in both the Gin context and the request context,
		// and enrich the request logger with the caller's id.
		enrichedLogger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("user_id", identity.UserID))
		ctx := context.WithValue(c.Request.Context(), identityKey, identity)
		ctx = context.WithValue(ctx, loggerKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(identityKey), identity)

		c.Next()
	}
}
