package models

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Asset struct {
	ID        uuid.UUID `json:"id"`
	Symbol    string    `json:"symbol"`
	Decimals  int16     `json:"decimals"`
	CreatedAt time.Time `json:"created_at"`
}
