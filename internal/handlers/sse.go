package handlers

import (
	"fmt"

	"github.com/dimitrije/sharevault/internal/middleware"
	"github.com/dimitrije/sharevault/internal/sse"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type SSEHandler struct {
	hub          *sse.Hub
	vaultService VaultServiceInterface
}

func NewSSEHandler(hub *sse.Hub, vaultService VaultServiceInterface) *SSEHandler {
	return &SSEHandler{
		hub:          hub,
		vaultService: vaultService,
	}
}

// Stream sends every committed event of the vault to the caller until the
// request is cancelled.
func (h *SSEHandler) Stream(c *drift.Context) {
	accountID := middleware.GetAccountID(c)
	if accountID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	if _, err := h.vaultService.GetByID(c.Request.Context(), vaultID); err != nil {
		respondError(c, err, "failed to get vault")
		return
	}

	sseCtx := c.SSE()

	clientID := uuid.New().String()
	client := &sse.Client{
		ID:        clientID,
		AccountID: accountID,
		Vaults:    map[uuid.UUID]bool{vaultID: true},
		Send:      make(chan []byte, 256),
	}

	h.hub.Register(client)
	defer h.hub.Unregister(client)

	if err := sseCtx.SendJSON(map[string]string{
		"type":      "connected",
		"client_id": clientID,
	}, "system", ""); err != nil {
		return
	}

	done := c.Request.Context().Done()
	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			if err := sseCtx.Send(string(msg), "message", ""); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// Subscribe adds another vault to an open stream.
func (h *SSEHandler) Subscribe(c *drift.Context) {
	if middleware.GetAccountID(c) == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	clientID := c.Param("clientId")
	if clientID == "" {
		c.BadRequest("client_id is required")
		return
	}

	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	if _, err := h.vaultService.GetByID(c.Request.Context(), vaultID); err != nil {
		respondError(c, err, "failed to get vault")
		return
	}

	h.hub.Subscribe(clientID, vaultID)

	_ = c.JSON(200, map[string]string{
		"message": fmt.Sprintf("subscribed to vault %s", vaultID),
	})
}

func (h *SSEHandler) Unsubscribe(c *drift.Context) {
	if middleware.GetAccountID(c) == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	clientID := c.Param("clientId")
	if clientID == "" {
		c.BadRequest("client_id is required")
		return
	}

	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	h.hub.Unsubscribe(clientID, vaultID)

	_ = c.JSON(200, map[string]string{
		"message": fmt.Sprintf("unsubscribed from vault %s", vaultID),
	})
}
