package handlers

import (
	"context"

	"github.com/dimitrije/sharevault/internal/models"
	"github.com/dimitrije/sharevault/internal/services"
	"github.com/dimitrije/sharevault/pkg/vault"
	"github.com/google/uuid"
)

// AccountServiceInterface defines the methods used by handlers from AccountService
type AccountServiceInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
}

// AssetServiceInterface defines the methods used by handlers from AssetService
type AssetServiceInterface interface {
	List(ctx context.Context) ([]models.Asset, error)
}

// HoldingServiceInterface is implemented by CoinService over models.Coin and
// by ShareService over models.ShareToken.
type HoldingServiceInterface[M any] interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]M, error)
	Get(ctx context.Context, id, ownerID uuid.UUID) (*M, error)
	Split(ctx context.Context, id, ownerID uuid.UUID, amount uint64) (*M, *M, error)
	Merge(ctx context.Context, id, otherID, ownerID uuid.UUID) (*M, error)
	Transfer(ctx context.Context, id, ownerID, to uuid.UUID) (*M, error)
}

// VaultServiceInterface defines the methods used by handlers from VaultService
type VaultServiceInterface interface {
	Create(ctx context.Context, assetID, creatorID uuid.UUID) (*models.Vault, *models.AdminCap, error)
	GetByID(ctx context.Context, vaultID uuid.UUID) (*models.Vault, error)
	List(ctx context.Context) ([]models.Vault, error)
	Values(ctx context.Context, vaultID uuid.UUID) (vault.Values, error)
	Deposit(ctx context.Context, vaultID, coinID, callerID uuid.UUID, amount uint64) (*services.DepositResult, error)
	Withdraw(ctx context.Context, vaultID, shareID, callerID uuid.UUID, amount uint64) (*services.WithdrawResult, error)
	ListEvents(ctx context.Context, vaultID uuid.UUID, limit int) ([]models.VaultEvent, error)
	GetAdminCaps(ctx context.Context, holderID uuid.UUID) ([]models.AdminCap, error)
	VerifyAdmin(ctx context.Context, capID, vaultID, holderID uuid.UUID) error
	ListHolders(ctx context.Context, vaultID uuid.UUID) ([]models.Holder, error)
}

// Ensure services implement the interfaces
var (
	_ AccountServiceInterface                    = (*services.AccountService)(nil)
	_ AssetServiceInterface                      = (*services.AssetService)(nil)
	_ HoldingServiceInterface[models.Coin]       = (*services.CoinService)(nil)
	_ HoldingServiceInterface[models.ShareToken] = (*services.ShareService)(nil)
	_ VaultServiceInterface                      = (*services.VaultService)(nil)
)
