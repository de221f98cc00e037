package auth

import "codeberg.org/leveltrack/server/leveltrack/users"

// CredentialsRequest carries a local email/password pair
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries a Google ID token obtained by the client
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// GoogleCodeRequest carries an authorization code for server-side exchange
type GoogleCodeRequest struct {
	Code        string `json:"code" binding:"required"`
	RedirectURI string `json:"redirect_uri" binding:"required,url"`
}

// TokenResponse returned after successful authentication
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// UserResponse wraps user data
type UserResponse struct {
	User *users.User `json:"user"`
}
