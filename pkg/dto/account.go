package dto

import "github.com/google/uuid"

type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"created_at"`
}

type AssetResponse struct {
	ID       uuid.UUID `json:"id"`
	Symbol   string    `json:"symbol"`
	Decimals int16     `json:"decimals"`
}
