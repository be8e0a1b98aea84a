package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/nextstop-api/internal/models"
	"github.com/noah-isme/nextstop-api/internal/service"
	appErrors "github.com/noah-isme/nextstop-api/pkg/errors"
)

type staticValidator struct {
	token string
}

func (v staticValidator) ValidateToken(token string) (*models.JWTClaims, error) {
	if token != v.token {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
	}
	return &models.JWTClaims{Email: "info@nextstoprussia.com", Role: models.RoleAdmin}, nil
}

func newGuardedRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/leads", handler, func(c *gin.Context) {
		email := ""
		if claims, ok := CurrentClaims(c); ok {
			email = claims.Email
		}
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

func TestJWTMiddleware(t *testing.T) {
	r := newGuardedRouter(JWT(staticValidator{token: "good"}))

	cases := []struct {
		header string
		status int
	}{
		{"", http.StatusUnauthorized},
		{"Basic abc", http.StatusUnauthorized},
		{"Bearer bad", http.StatusUnauthorized},
		{"Bearer good", http.StatusOK},
		{"bearer good", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/leads", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, tc.status, rec.Code, tc.header)
	}
}

func newAdminAuth(t *testing.T) (*service.AuthService, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pass"), bcrypt.MinCost)
	require.NoError(t, err)
	auth := service.NewAuthService(nil, nil, service.AuthConfig{
		AdminEmail:        "info@nextstoprussia.com",
		AdminPasswordHash: string(hash),
		Secret:            "secret",
		Expiry:            time.Hour,
	})
	token, err := auth.Login(context.Background(), models.LoginRequest{Email: "info@nextstoprussia.com", Password: "pass"})
	require.NoError(t, err)
	return auth, token.Token
}

func TestLeadAccessPassThroughWhenNotRequired(t *testing.T) {
	r := newGuardedRouter(LeadAccess(false, nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":""}`, rec.Body.String())
}

func TestLeadAccessRequiresTokenWhenEnabled(t *testing.T) {
	auth, token := newAdminAuth(t)
	r := newGuardedRouter(LeadAccess(true, auth))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"info@nextstoprussia.com"}`, rec.Body.String())
}

func TestLeadAccessWithoutAuthServiceRejects(t *testing.T) {
	r := newGuardedRouter(LeadAccess(true, nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMetricsMiddlewareTolerantOfNil(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics(nil))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	r = gin.New()
	r.Use(Metrics(service.NewMetricsService()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
