package auth

import (
	"context"
	"errors"

	"codeberg.org/leveltrack/server/leveltrack/users"
)

var (
	// the email is already registered. Safe to surface to the caller.
	ErrCredentialTaken = errors.New("credential taken")

	// unknown email or wrong password. One error for both causes so
	// responses never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("credential incorrect")
)

// identity claims extracted from a verified provider token
type Identity struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// persists and looks up user accounts
type UserStore interface {
	Create(ctx context.Context, params users.CreateParams) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
}

// produces signed session tokens
type TokenSigner interface {
	Sign(userID, email string) (string, error)
}

// verifies third-party identity tokens
type IdentityVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*Identity, error)
	ExchangeCode(ctx context.Context, code, redirectURL string) (*Identity, error)
}

// authenticates users and issues session tokens
type Service struct {
	store    UserStore
	signer   TokenSigner
	verifier IdentityVerifier
}

// wraps a session token for identity-provider logins
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
