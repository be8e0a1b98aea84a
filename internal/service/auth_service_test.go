package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/nextstop-api/internal/models"
	appErrors "github.com/noah-isme/nextstop-api/pkg/errors"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(nil, nil, AuthConfig{
		AdminEmail:        "info@nextstoprussia.com",
		AdminPasswordHash: string(hash),
		Secret:            "test-secret",
		Expiry:            time.Hour,
	})
}

func TestAuthServiceLoginIssuesValidToken(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "INFO@nextstoprussia.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "info@nextstoprussia.com", claims.Email)
}

func TestAuthServiceLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t)

	for _, req := range []models.LoginRequest{
		{Email: "info@nextstoprussia.com", Password: "wrong"},
		{Email: "someone@else.com", Password: "s3cret-pass"},
	} {
		_, err := svc.Login(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErrors.FromError(err).Status)
	}
}

func TestAuthServiceLoginValidatesPayload(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestAuthServiceLoginWithoutConfiguredHash(t *testing.T) {
	svc := NewAuthService(nil, nil, AuthConfig{AdminEmail: "info@nextstoprussia.com", Secret: "x"})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "info@nextstoprussia.com", Password: "anything"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, appErrors.FromError(err).Status)
}

func TestAuthServiceValidateTokenRejectsExpired(t *testing.T) {
	svc := newTestAuthService(t)
	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "info@nextstoprussia.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.ValidateToken(resp.Token)
	require.Error(t, err)
	assert.Equal(t, "token expired", appErrors.FromError(err).Message)
}

func TestAuthServiceValidateTokenRejectsForeignTokens(t *testing.T) {
	svc := newTestAuthService(t)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, models.JWTClaims{
		Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := other.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	require.Error(t, err)

	_, err = svc.ValidateToken("garbage")
	require.Error(t, err)
	assert.Equal(t, "invalid token", appErrors.FromError(err).Message)
}
