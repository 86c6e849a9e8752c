package dto

import "github.com/google/uuid"

type CoinResponse struct {
	ID        uuid.UUID `json:"id"`
	AssetID   uuid.UUID `json:"asset_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Value     uint64    `json:"value"`
	UpdatedAt string    `json:"updated_at"`
}

type ShareResponse struct {
	ID        uuid.UUID `json:"id"`
	VaultID   uuid.UUID `json:"vault_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Value     uint64    `json:"value"`
	UpdatedAt string    `json:"updated_at"`
}

type SplitRequest struct {
	Amount uint64 `json:"amount"`
}

type SplitResponse[T any] struct {
	Original T `json:"original"`
	Split    T `json:"split"`
}

type MergeRequest struct {
	OtherID uuid.UUID `json:"other_id"`
}

type TransferRequest struct {
	To uuid.UUID `json:"to"`
}
