package handlers

import (
	"time"

	"github.com/dimitrije/sharevault/internal/models"
	"github.com/dimitrije/sharevault/pkg/dto"
	"github.com/dimitrije/sharevault/pkg/vault"
	"github.com/google/uuid"
)

// Stored values are never negative, so the uint64 conversions below are exact.

func coinResponse(c *models.Coin) dto.CoinResponse {
	return dto.CoinResponse{
		ID:        c.ID,
		AssetID:   c.AssetID,
		OwnerID:   c.OwnerID,
		Value:     uint64(c.Value),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func shareResponse(s *models.ShareToken) dto.ShareResponse {
	return dto.ShareResponse{
		ID:        s.ID,
		VaultID:   s.VaultID,
		OwnerID:   s.OwnerID,
		Value:     uint64(s.Value),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

func vaultResponse(v *models.Vault) dto.VaultResponse {
	return dto.VaultResponse{
		ID:          v.ID,
		AssetID:     v.AssetID,
		AssetSymbol: v.AssetSymbol,
		BaseBalance: uint64(v.BaseBalance),
		ShareSupply: uint64(v.ShareSupply),
		CreatedBy:   v.CreatedBy,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
	}
}

func adminCapResponse(c *models.AdminCap) dto.AdminCapResponse {
	return dto.AdminCapResponse{
		ID:        c.ID,
		VaultID:   c.VaultID,
		HolderID:  c.HolderID,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func valuesResponse(vaultID uuid.UUID, v vault.Values) dto.VaultValuesResponse {
	return dto.VaultValuesResponse{
		VaultID:          vaultID,
		BaseBalance:      v.Base,
		TotalShareSupply: v.Shares,
	}
}

func eventResponse(e *models.VaultEvent) dto.VaultEventResponse {
	return dto.VaultEventResponse{
		ID:          e.ID,
		Kind:        e.Kind,
		ActorID:     e.ActorID,
		Amount:      uint64(e.Amount),
		BaseBalance: uint64(e.BaseBalance),
		ShareSupply: uint64(e.ShareSupply),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
