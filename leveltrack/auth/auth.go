package auth

import (
	"context"
	"errors"
	"strings"

	"codeberg.org/leveltrack/server/leveltrack/users"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt work factor, matching existing stored hashes
const hashCost = 10

// creates an auth service with its collaborators
func NewService(store UserStore, signer TokenSigner, verifier IdentityVerifier) *Service {
	return &Service{
		store:    store,
		signer:   signer,
		verifier: verifier,
	}
}

// registers a new local account and returns a session token.
// Returns ErrCredentialTaken when the email is already registered;
// any other store failure passes through unchanged.
func (s *Service) Register(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}

	user, err := s.store.Create(ctx, users.CreateParams{
		Email:        email,
		Name:         defaultName(email),
		PasswordHash: string(hash),
	})

	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return "", ErrCredentialTaken
		}

		return "", err
	}

	return s.signer.Sign(user.ID, user.Email)
}

// authenticates a local account and returns a session token.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", ErrInvalidCredentials
		}

		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.signer.Sign(user.ID, user.Email)
}

// authenticates with a Google ID token, creating the account on first
// login. Verification failures propagate unchanged.
func (s *Service) LoginWithGoogle(ctx context.Context, idToken string) (*TokenResponse, error) {
	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	return s.loginIdentity(ctx, identity)
}

// authenticates by exchanging a Google authorization code server-side,
// then follows the same account reconciliation as LoginWithGoogle.
func (s *Service) LoginWithGoogleCode(ctx context.Context, code, redirectURL string) (*TokenResponse, error) {
	identity, err := s.verifier.ExchangeCode(ctx, code, redirectURL)
	if err != nil {
		return nil, err
	}

	return s.loginIdentity(ctx, identity)
}

// finds or creates the account for a verified identity and issues a
// session token. Existing accounts are reused as-is; name and image
// are not refreshed on repeat logins.
func (s *Service) loginIdentity(ctx context.Context, identity *Identity) (*TokenResponse, error) {
	user, err := s.store.FindByEmail(ctx, identity.Email)

	if err != nil {
		if !errors.Is(err, users.ErrNotFound) {
			return nil, err
		}

		user, err = s.store.Create(ctx, users.CreateParams{
			Email: identity.Email,
			Name:  identity.Name,
			Image: identity.Picture,
		})
		if err != nil {
			return nil, err
		}
	}

	token, err := s.signer.Sign(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{AccessToken: token}, nil
}

// derives a display name from the email local part
func defaultName(email string) string {
	name, _, found := strings.Cut(email, "@")
	if !found || name == "" {
		return email
	}

	return name
}
