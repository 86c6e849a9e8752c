package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dimitrije/sharevault/internal/services"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *services.JWTService {
	return services.NewJWTService("test-secret-key", 15*time.Minute)
}

func generateTestToken(t *testing.T, jwtSvc *services.JWTService, accountID uuid.UUID, name string) string {
	t.Helper()
	token, err := jwtSvc.GenerateAccessToken(accountID, name)
	require.NoError(t, err)
	return token.Token
}

func newProtectedApp(jwtSvc *services.JWTService) http.Handler {
	app := drift.New()
	app.Use(Auth(jwtSvc))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return app
}

func TestAuth_MissingAuthorizationHeader(t *testing.T) {
	app := newProtectedApp(newTestJWTService())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing authorization header")
}

func TestAuth_InvalidAuthorizationFormat(t *testing.T) {
	app := newProtectedApp(newTestJWTService())

	testCases := []struct {
		name   string
		header string
	}{
		{"no bearer", "Token some-token"},
		{"only bearer", "Bearer"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", tc.header)
			rec := httptest.NewRecorder()

			app.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid authorization header format")
		})
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	app := newProtectedApp(newTestJWTService())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestAuth_ExpiredToken(t *testing.T) {
	jwtSvc := services.NewJWTService("test-secret-key", 1*time.Millisecond)
	token := generateTestToken(t, jwtSvc, uuid.New(), "alice")

	time.Sleep(10 * time.Millisecond)

	app := newProtectedApp(jwtSvc)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestAuth_WrongSecret(t *testing.T) {
	token := generateTestToken(t, services.NewJWTService("secret-1", 15*time.Minute), uuid.New(), "alice")
	app := newProtectedApp(services.NewJWTService("secret-2", 15*time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	jwtSvc := newTestJWTService()
	app := drift.New()

	accountID := uuid.New()
	token := generateTestToken(t, jwtSvc, accountID, "alice")

	var extractedID uuid.UUID
	var extractedName string

	app.Use(Auth(jwtSvc))
	app.Get("/protected", func(c *drift.Context) {
		extractedID = GetAccountID(c)
		extractedName = GetAccountName(c)
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, accountID, extractedID)
	assert.Equal(t, "alice", extractedName)
}

func TestAuth_BearerCaseInsensitive(t *testing.T) {
	jwtSvc := newTestJWTService()
	token := generateTestToken(t, jwtSvc, uuid.New(), "alice")
	app := newProtectedApp(jwtSvc)

	for _, bearer := range []string{"bearer", "BEARER", "BeArEr"} {
		t.Run(bearer, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", bearer+" "+token)
			rec := httptest.NewRecorder()

			app.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestGetAccountID_NotSet(t *testing.T) {
	app := drift.New()

	var extractedID uuid.UUID
	var extractedName string

	app.Get("/test", func(c *drift.Context) {
		extractedID = GetAccountID(c)
		extractedName = GetAccountName(c)
		_ = c.JSON(http.StatusOK, nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, uuid.Nil, extractedID)
	assert.Equal(t, "", extractedName)
}
