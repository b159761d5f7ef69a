// Package middleware holds gin middleware for session tokens and role checks.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/courseboard/internal/dto"
	"github.com/lshigami/courseboard/internal/model"
	"github.com/lshigami/courseboard/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	usernameKey = "username"
	roleKey     = "role"
)

// RequireAuth validates the bearer token and stores the caller in the context.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
			return
		}
		claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Rejected session token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}
		ctx.Set(usernameKey, claims.Username)
		ctx.Set(roleKey, claims.Role)
		ctx.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if CurrentRole(ctx) != role {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Access denied"})
			return
		}
		ctx.Next()
	}
}

func CurrentUsername(ctx *gin.Context) string {
	return ctx.GetString(usernameKey)
}

func CurrentRole(ctx *gin.Context) model.Role {
	role, _ := ctx.Get(roleKey)
	r, _ := role.(model.Role)
	return r
}
