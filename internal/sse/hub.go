package sse

import (
	"encoding/json"
	"sync"

	"github.com/dimitrije/sharevault/internal/models"
	"github.com/google/uuid"
)

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Client is one open stream. Vaults is guarded by the hub's lock.
type Client struct {
	ID        string
	AccountID uuid.UUID
	Vaults    map[uuid.UUID]bool
	Send      chan []byte
}

type VaultMessage struct {
	VaultID uuid.UUID
	Event   Event
}

// Hub fans committed vault events out to the streams subscribed to that
// vault. Slow clients lose messages instead of stalling the hub.
type Hub struct {
	mu        sync.RWMutex
	clients   map[string]*Client
	broadcast chan *VaultMessage
	quit      chan struct{}
	stopOnce  sync.Once
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]*Client),
		broadcast: make(chan *VaultMessage, 256),
		quit:      make(chan struct{}),
	}
}

// Run delivers queued messages until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case msg := <-h.broadcast:
			h.deliver(msg)
		case <-h.quit:
			return
		}
	}
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}

func (h *Hub) deliver(msg *VaultMessage) {
	data, err := json.Marshal(msg.Event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		if !client.Vaults[msg.VaultID] {
			continue
		}
		select {
		case client.Send <- data:
		default:
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
}

// Unregister removes the client and closes its Send channel.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client.ID]; ok {
		delete(h.clients, client.ID)
		close(client.Send)
	}
}

func (h *Hub) Subscribe(clientID string, vaultID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		client.Vaults[vaultID] = true
	}
}

func (h *Hub) Unsubscribe(clientID string, vaultID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		delete(client.Vaults, vaultID)
	}
}

func (h *Hub) IsSubscribed(clientID string, vaultID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	client, ok := h.clients[clientID]
	return ok && client.Vaults[vaultID]
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// PublishVaultEvent queues a committed journal entry for the vault's
// subscribers. It never blocks; when the queue is full the event is dropped
// and clients can recover it from the journal.
func (h *Hub) PublishVaultEvent(event *models.VaultEvent) {
	msg := &VaultMessage{
		VaultID: event.VaultID,
		Event:   Event{Type: "vault_" + event.Kind, Data: event},
	}
	select {
	case h.broadcast <- msg:
	default:
	}
}
