package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/dimitrije/sharevault/internal/middleware"
	"github.com/dimitrije/sharevault/internal/models"
	"github.com/dimitrije/sharevault/internal/services"
	"github.com/dimitrije/sharevault/internal/sse"
	"github.com/dimitrije/sharevault/tests/testutil"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSSEHandler_Subscribe(t *testing.T) {
	hub := sse.NewHub()
	go hub.Run()
	defer hub.Stop()

	mockVaultService := new(testutil.MockVaultService)
	handler := NewSSEHandler(hub, mockVaultService)
	jwtSvc := newTestJWTService()

	accountID := uuid.New()
	vaultID := uuid.New()
	client := &sse.Client{
		ID:        "client-1",
		AccountID: accountID,
		Vaults:    map[uuid.UUID]bool{},
		Send:      make(chan []byte, 1),
	}
	hub.Register(client)

	mockVaultService.On("GetByID", mock.Anything, vaultID).Return(&models.Vault{ID: vaultID}, nil)

	app := drift.New()
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/sse/:clientId/subscribe/:vaultId", handler.Subscribe)

	token := generateTestToken(t, jwtSvc, accountID, "alice")
	rec := serve(t, app, http.MethodPost, "/sse/client-1/subscribe/"+vaultID.String(), token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	hub.PublishVaultEvent(&models.VaultEvent{ID: 1, VaultID: vaultID, Kind: models.EventDeposit})
	select {
	case msg := <-client.Send:
		assert.Contains(t, string(msg), "vault_deposit")
	case <-time.After(time.Second):
		t.Fatal("subscribed client did not receive the event")
	}
}

func TestSSEHandler_Subscribe_UnknownVault(t *testing.T) {
	mockVaultService := new(testutil.MockVaultService)
	handler := NewSSEHandler(sse.NewHub(), mockVaultService)
	jwtSvc := newTestJWTService()

	vaultID := uuid.New()
	mockVaultService.On("GetByID", mock.Anything, vaultID).Return(nil, services.ErrVaultNotFound)

	app := drift.New()
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/sse/:clientId/subscribe/:vaultId", handler.Subscribe)

	token := generateTestToken(t, jwtSvc, uuid.New(), "alice")
	rec := serve(t, app, http.MethodPost, "/sse/client-1/subscribe/"+vaultID.String(), token, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSSEHandler_Stream_UnknownVault(t *testing.T) {
	mockVaultService := new(testutil.MockVaultService)
	handler := NewSSEHandler(sse.NewHub(), mockVaultService)
	jwtSvc := newTestJWTService()

	vaultID := uuid.New()
	mockVaultService.On("GetByID", mock.Anything, vaultID).Return(nil, services.ErrVaultNotFound)

	app := drift.New()
	app.Use(middleware.Auth(jwtSvc))
	app.Get("/vaults/:vaultId/stream", handler.Stream)

	token := generateTestToken(t, jwtSvc, uuid.New(), "alice")
	rec := serve(t, app, http.MethodGet, "/vaults/"+vaultID.String()+"/stream", token, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSSEHandler_Unsubscribe(t *testing.T) {
	hub := sse.NewHub()
	go hub.Run()
	defer hub.Stop()

	handler := NewSSEHandler(hub, new(testutil.MockVaultService))
	jwtSvc := newTestJWTService()

	vaultID := uuid.New()
	client := &sse.Client{
		ID:     "client-2",
		Vaults: map[uuid.UUID]bool{vaultID: true},
		Send:   make(chan []byte, 1),
	}
	hub.Register(client)

	app := drift.New()
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/sse/:clientId/unsubscribe/:vaultId", handler.Unsubscribe)

	token := generateTestToken(t, jwtSvc, uuid.New(), "alice")
	rec := serve(t, app, http.MethodPost, "/sse/client-2/unsubscribe/"+vaultID.String(), token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, hub.IsSubscribed("client-2", vaultID))
}
