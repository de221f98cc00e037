package auth

import (
	"errors"
	"net/http"

	apierrors "codeberg.org/leveltrack/server/internal/errors"
	"codeberg.org/leveltrack/server/internal/token"
	"codeberg.org/leveltrack/server/leveltrack/auth"
	"codeberg.org/leveltrack/server/leveltrack/users"
	"github.com/gin-gonic/gin"
)

// RegisterHandler creates a local account and returns a session token
func RegisterHandler(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		sessionToken, err := authService.Register(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrCredentialTaken) {
				apierrors.Forbidden(c, err.Error())
				return
			}

			apierrors.InternalError(c, "failed to register user", err)
			return
		}

		c.JSON(http.StatusCreated, TokenResponse{AccessToken: sessionToken})
	}
}

// LoginHandler authenticates a local account and returns a session token
func LoginHandler(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		sessionToken, err := authService.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				apierrors.Forbidden(c, err.Error())
				return
			}

			apierrors.InternalError(c, "failed to log in", err)
			return
		}

		c.JSON(http.StatusOK, TokenResponse{AccessToken: sessionToken})
	}
}

// GoogleLoginHandler authenticates with a Google ID token
func GoogleLoginHandler(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GoogleLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		resp, err := authService.LoginWithGoogle(c.Request.Context(), req.IDToken)
		if err != nil {
			apierrors.InternalError(c, "google authentication failed", err)
			return
		}

		c.JSON(http.StatusOK, TokenResponse{AccessToken: resp.AccessToken})
	}
}

// GoogleCodeHandler authenticates by exchanging an authorization code
func GoogleCodeHandler(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GoogleCodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		resp, err := authService.LoginWithGoogleCode(c.Request.Context(), req.Code, req.RedirectURI)
		if err != nil {
			apierrors.InternalError(c, "google authentication failed", err)
			return
		}

		c.JSON(http.StatusOK, TokenResponse{AccessToken: resp.AccessToken})
	}
}

// GetCurrentUserHandler returns the authenticated user's profile
func GetCurrentUserHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := token.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			apierrors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}
