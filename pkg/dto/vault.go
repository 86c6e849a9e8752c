package dto

import "github.com/google/uuid"

type CreateVaultRequest struct {
	AssetID uuid.UUID `json:"asset_id"`
}

type VaultResponse struct {
	ID          uuid.UUID `json:"id"`
	AssetID     uuid.UUID `json:"asset_id"`
	AssetSymbol string    `json:"asset_symbol"`
	BaseBalance uint64    `json:"base_balance"`
	ShareSupply uint64    `json:"share_supply"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   string    `json:"created_at"`
}

type AdminCapResponse struct {
	ID        uuid.UUID `json:"id"`
	VaultID   uuid.UUID `json:"vault_id"`
	HolderID  uuid.UUID `json:"holder_id"`
	CreatedAt string    `json:"created_at"`
}

type CreateVaultResponse struct {
	Vault    VaultResponse    `json:"vault"`
	AdminCap AdminCapResponse `json:"admin_cap"`
}

type VaultValuesResponse struct {
	VaultID          uuid.UUID `json:"vault_id"`
	BaseBalance      uint64    `json:"base_balance"`
	TotalShareSupply uint64    `json:"total_share_supply"`
}

type DepositRequest struct {
	CoinID uuid.UUID `json:"coin_id"`
	Amount uint64    `json:"amount"`
}

type DepositResponse struct {
	Share  ShareResponse       `json:"share"`
	Coin   CoinResponse        `json:"coin"`
	Values VaultValuesResponse `json:"values"`
}

type WithdrawRequest struct {
	ShareID uuid.UUID `json:"share_id"`
	Amount  uint64    `json:"amount"`
}

type WithdrawResponse struct {
	Coin   CoinResponse        `json:"coin"`
	Share  ShareResponse       `json:"share"`
	Values VaultValuesResponse `json:"values"`
}

type VaultEventResponse struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	ActorID     uuid.UUID `json:"actor_id"`
	Amount      uint64    `json:"amount"`
	BaseBalance uint64    `json:"base_balance"`
	ShareSupply uint64    `json:"share_supply"`
	CreatedAt   string    `json:"created_at"`
}

type HolderResponse struct {
	AccountID   uuid.UUID `json:"account_id"`
	AccountName string    `json:"account_name"`
	Shares      uint64    `json:"shares"`
	Tokens      int64     `json:"tokens"`
}
