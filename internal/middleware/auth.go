package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aquispel/burnout-api/config"
	"github.com/aquispel/burnout-api/internal/dto"
	"github.com/aquispel/burnout-api/internal/model"
	"github.com/aquispel/burnout-api/internal/repository"
	"github.com/aquispel/burnout-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	ContextUserID   = "auth_user_id"
	ContextUserRole = "auth_user_role"
)

// Auth validates the Bearer token and loads the account it names. Handlers
// behind it can trust CurrentUserID without re-checking credentials.
func Auth(cfg *config.Config, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(ctx, "missing bearer token")
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		var claims service.Claims
		token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(ctx, "invalid or expired token")
			return
		}

		user, err := userRepo.FindByUsername(claims.Subject)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortUnauthorized(ctx, "unknown user")
				return
			}
			log.Error().Err(err).Msg("Auth middleware: user lookup failed")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Kind: "internal", Message: "could not verify credentials",
			})
			return
		}
		if !user.Active {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Kind: "forbidden", Message: "account is inactive",
			})
			return
		}

		ctx.Set(ContextUserID, user.ID)
		ctx.Set(ContextUserRole, string(user.Role))
		ctx.Next()
	}
}

// RequireAdmin must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetString(ContextUserRole) != string(model.RoleAdmin) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Kind: "forbidden", Message: "administrator privileges required",
			})
			return
		}
		ctx.Next()
	}
}

// CurrentUserID returns the authenticated user's id set by Auth.
func CurrentUserID(ctx *gin.Context) uint {
	if v, ok := ctx.Get(ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func abortUnauthorized(ctx *gin.Context, message string) {
	ctx.Header("WWW-Authenticate", "Bearer")
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Kind: "unauthorized", Message: message,
	})
}
