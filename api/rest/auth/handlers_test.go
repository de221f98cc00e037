package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/leveltrack/server/internal/token"
	"codeberg.org/leveltrack/server/leveltrack/auth"
	"codeberg.org/leveltrack/server/leveltrack/users"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	byEmail map[string]*users.User
	nextID  int
}

func (s *memoryStore) Create(_ context.Context, params users.CreateParams) (*users.User, error) {
	if _, exists := s.byEmail[params.Email]; exists {
		return nil, users.ErrEmailTaken
	}

	s.nextID++
	user := &users.User{
		ID:           fmt.Sprintf("user-%d", s.nextID),
		Email:        params.Email,
		Name:         params.Name,
		Image:        params.Image,
		PasswordHash: params.PasswordHash,
	}
	s.byEmail[params.Email] = user

	return user, nil
}

func (s *memoryStore) FindByEmail(_ context.Context, email string) (*users.User, error) {
	user, exists := s.byEmail[email]
	if !exists {
		return nil, users.ErrNotFound
	}

	return user, nil
}

type stubVerifier struct {
	identities map[string]*auth.Identity
}

func (v *stubVerifier) Verify(_ context.Context, rawIDToken string) (*auth.Identity, error) {
	identity, ok := v.identities[rawIDToken]
	if !ok {
		return nil, errors.New("id_token verification failed")
	}

	return identity, nil
}

func (v *stubVerifier) ExchangeCode(_ context.Context, code, _ string) (*auth.Identity, error) {
	return v.Verify(context.Background(), code)
}

func newTestRouter(t *testing.T, verifier auth.IdentityVerifier) *gin.Engine {
	t.Helper()

	issuer, err := token.NewIssuer("test-secret-key-for-testing")
	require.NoError(t, err)

	store := &memoryStore{byEmail: map[string]*users.User{}}
	service := auth.NewService(store, issuer, verifier)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	authGroup := router.Group("/api/v1/auth")
	authGroup.POST("/register", RegisterHandler(service))
	authGroup.POST("/login", LoginHandler(service))
	authGroup.POST("/google", GoogleLoginHandler(service))
	authGroup.POST("/google/code", GoogleCodeHandler(service))

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func accessToken(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp.AccessToken
}

func TestRegisterHandler_Success(t *testing.T) {
	router := newTestRouter(t, &stubVerifier{})

	w := postJSON(t, router, "/api/v1/auth/register", CredentialsRequest{
		Email:    "a@b.com",
		Password: "pw1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, accessToken(t, w))
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	router := newTestRouter(t, &stubVerifier{})

	first := postJSON(t, router, "/api/v1/auth/register", CredentialsRequest{
		Email:    "a@b.com",
		Password: "pw1",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, router, "/api/v1/auth/register", CredentialsRequest{
		Email:    "a@b.com",
		Password: "pw2",
	})

	assert.Equal(t, http.StatusForbidden, second.Code)
	assert.Contains(t, second.Body.String(), "credential taken")
}

func TestRegisterHandler_InvalidBody(t *testing.T) {
	router := newTestRouter(t, &stubVerifier{})

	w := postJSON(t, router, "/api/v1/auth/register", gin.H{"email": "not-an-email", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, router, "/api/v1/auth/register", gin.H{"email": "a@b.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginHandler_FailuresAreIndistinguishable(t *testing.T) {
	router := newTestRouter(t, &stubVerifier{})

	w := postJSON(t, router, "/api/v1/auth/register", CredentialsRequest{
		Email:    "a@b.com",
		Password: "pw1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	unknown := postJSON(t, router, "/api/v1/auth/login", CredentialsRequest{
		Email:    "nobody@b.com",
		Password: "pw1",
	})
	wrongPw := postJSON(t, router, "/api/v1/auth/login", CredentialsRequest{
		Email:    "a@b.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusForbidden, unknown.Code)
	assert.Equal(t, http.StatusForbidden, wrongPw.Code)
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String(),
		"responses must not reveal which credential was wrong")
}

func TestLoginHandler_Success(t *testing.T) {
	router := newTestRouter(t, &stubVerifier{})

	w := postJSON(t, router, "/api/v1/auth/register", CredentialsRequest{
		Email:    "a@b.com",
		Password: "pw1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/v1/auth/login", CredentialsRequest{
		Email:    "a@b.com",
		Password: "pw1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, accessToken(t, w))
}

func TestGoogleLoginHandler_Success(t *testing.T) {
	verifier := &stubVerifier{identities: map[string]*auth.Identity{
		"good-token": {Email: "g@b.com", Name: "G User", Picture: "https://p.example/g.png"},
	}}
	router := newTestRouter(t, verifier)

	w := postJSON(t, router, "/api/v1/auth/google", GoogleLoginRequest{IDToken: "good-token"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, accessToken(t, w))
}

func TestGoogleLoginHandler_VerificationFailure(t *testing.T) {
	router := newTestRouter(t, &stubVerifier{})

	w := postJSON(t, router, "/api/v1/auth/google", GoogleLoginRequest{IDToken: "bogus"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGoogleCodeHandler_Success(t *testing.T) {
	verifier := &stubVerifier{identities: map[string]*auth.Identity{
		"auth-code": {Email: "code@b.com", Name: "Code User"},
	}}
	router := newTestRouter(t, verifier)

	w := postJSON(t, router, "/api/v1/auth/google/code", GoogleCodeRequest{
		Code:        "auth-code",
		RedirectURI: "https://app.example/cb",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, accessToken(t, w))
}
