package auth

import (
	"codeberg.org/leveltrack/server/internal/ratelimit"
	"codeberg.org/leveltrack/server/internal/token"
	"codeberg.org/leveltrack/server/leveltrack/auth"
	"codeberg.org/leveltrack/server/leveltrack/users"
	"github.com/gin-gonic/gin"
)

// registers all authentication routes
func RegisterRoutes(router *gin.RouterGroup, authService *auth.Service, userRepo *users.Repository, issuer *token.Issuer) {
	// credential endpoints share a per-IP budget to slow down guessing
	limiter := ratelimit.New(5, 10)

	authGroup := router.Group("/auth")
	authGroup.Use(limiter.Middleware())
	{
		authGroup.POST("/register", RegisterHandler(authService))
		authGroup.POST("/login", LoginHandler(authService))
		authGroup.POST("/google", GoogleLoginHandler(authService))
		authGroup.POST("/google/code", GoogleCodeHandler(authService))
		authGroup.GET("/me", token.AuthMiddleware(issuer), GetCurrentUserHandler(userRepo))
	}
}
