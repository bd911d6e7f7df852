package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriceWisniewsky/MotionCut/config"
	"github.com/PatriceWisniewsky/MotionCut/internal/core/auth"
	"github.com/PatriceWisniewsky/MotionCut/internal/store/local"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func createTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, w
}

func newAuthService(t *testing.T) *auth.Service {
	t.Helper()
	db, err := local.Open(t.TempDir())
	require.NoError(t, err)
	cfg := &config.JWTConfig{Secret: "test-secret", ExpirationHours: 1}
	return auth.NewService(auth.NewRepository(db), cfg)
}

func TestGetUserID_Valid(t *testing.T) {
	c, _ := createTestContext()
	c.Set(ContextUserID, "user-123")

	id, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, "user-123", id)
}

func TestGetUserID_NotSet(t *testing.T) {
	c, _ := createTestContext()

	_, ok := GetUserID(c)
	assert.False(t, ok)
}

func TestGetUserID_InvalidType(t *testing.T) {
	c, _ := createTestContext()
	c.Set(ContextUserID, 42)

	_, ok := GetUserID(c)
	assert.False(t, ok)
}

func TestGetUserID_Empty(t *testing.T) {
	c, _ := createTestContext()
	c.Set(ContextUserID, "")

	_, ok := GetUserID(c)
	assert.False(t, ok)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	svc := newAuthService(t)
	c, w := createTestContext()

	NewAuthMiddleware(svc).Authenticate()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	svc := newAuthService(t)
	c, w := createTestContext()
	c.Request.Header.Set("Authorization", "Basic abc123")

	NewAuthMiddleware(svc).Authenticate()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	svc := newAuthService(t)
	c, w := createTestContext()
	c.Request.Header.Set("Authorization", "Bearer not-a-real-token")

	NewAuthMiddleware(svc).Authenticate()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(context.Background(), &auth.RegisterRequest{
		Email:       "mw@example.com",
		Password:    "supersecret",
		DisplayName: "MW",
	})
	require.NoError(t, err)

	c, _ := createTestContext()
	c.Request.Header.Set("Authorization", "Bearer "+resp.Token)

	NewAuthMiddleware(svc).Authenticate()(c)

	assert.False(t, c.IsAborted())
	id, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, resp.User.ID, id)
}

func TestAuthenticate_BearerCaseInsensitive(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(context.Background(), &auth.RegisterRequest{
		Email:       "case@example.com",
		Password:    "supersecret",
		DisplayName: "C",
	})
	require.NoError(t, err)

	c, _ := createTestContext()
	c.Request.Header.Set("Authorization", "bearer "+resp.Token)

	NewAuthMiddleware(svc).Authenticate()(c)

	assert.False(t, c.IsAborted())
}
