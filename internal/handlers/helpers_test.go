package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dimitrije/sharevault/internal/middleware"
	"github.com/dimitrije/sharevault/internal/services"
	"github.com/google/uuid"
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

func serve(t *testing.T, app http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func serveWithCap(t *testing.T, app http.Handler, path, token, capID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(middleware.AdminCapHeader, capID)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}
