package models

import (
	"time"

	"github.com/google/uuid"
)

// Coin is an owned amount of one base asset.
type Coin struct {
	ID        uuid.UUID `json:"id"`
	AssetID   uuid.UUID `json:"asset_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Value     int64     `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShareToken is an owned claim on the vault that issued it.
type ShareToken struct {
	ID        uuid.UUID `json:"id"`
	VaultID   uuid.UUID `json:"vault_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Value     int64     `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AdminCap struct {
	ID        uuid.UUID `json:"id"`
	VaultID   uuid.UUID `json:"vault_id"`
	HolderID  uuid.UUID `json:"holder_id"`
	CreatedAt time.Time `json:"created_at"`
}
