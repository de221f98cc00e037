package googleid

import (
	"context"
	"fmt"

	"codeberg.org/leveltrack/server/leveltrack/auth"
	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

const issuerURL = "https://accounts.google.com"

// verifies Google ID tokens for this application
type Verifier struct {
	verifier    *oidc.IDTokenVerifier
	oauthConfig *oauth2.Config
}

// creates a verifier bound to the given OAuth client credentials.
// The expected token audience is the client id.
func New(ctx context.Context, clientID, clientSecret string) (*Verifier, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("google client credentials must be set")
	}

	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init google oidc provider: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	return &Verifier{
		verifier:    provider.Verifier(&oidc.Config{ClientID: clientID}),
		oauthConfig: oauthConfig,
	}, nil
}

// verifies the token signature and audience, returning the identity claims
func (v *Verifier) Verify(ctx context.Context, rawIDToken string) (*auth.Identity, error) {
	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("google id_token verification failed: %w", err)
	}

	var identity auth.Identity
	if err := idToken.Claims(&identity); err != nil {
		return nil, fmt.Errorf("google id_token claims parse failed: %w", err)
	}

	if identity.Email == "" {
		return nil, fmt.Errorf("google id_token missing email claim")
	}

	return &identity, nil
}

// exchanges an authorization code for tokens and verifies the returned
// ID token. Used by clients that complete the code flow server-side.
func (v *Verifier) ExchangeCode(ctx context.Context, code, redirectURL string) (*auth.Identity, error) {
	cfg := *v.oauthConfig
	cfg.RedirectURL = redirectURL

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google code exchange failed: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("google did not return id_token")
	}

	return v.Verify(ctx, rawIDToken)
}
