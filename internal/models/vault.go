package models

import (
	"time"

	"github.com/dimitrije/sharevault/pkg/vault"
	"github.com/google/uuid"
)

type Vault struct {
	ID          uuid.UUID `json:"id"`
	AssetID     uuid.UUID `json:"asset_id"`
	AssetSymbol string    `json:"asset_symbol"`
	BaseBalance int64     `json:"base_balance"`
	ShareSupply int64     `json:"share_supply"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Values converts the stored columns into engine values. The columns carry a
// non-negative check, so the conversion is lossless.
func (v *Vault) Values() vault.Values {
	return vault.Values{Base: uint64(v.BaseBalance), Shares: uint64(v.ShareSupply)}
}

// Vault event kinds
const (
	EventCreated  = "created"
	EventDeposit  = "deposit"
	EventWithdraw = "withdraw"
)

type VaultEvent struct {
	ID          int64     `json:"id"`
	VaultID     uuid.UUID `json:"vault_id"`
	Kind        string    `json:"kind"`
	ActorID     uuid.UUID `json:"actor_id"`
	Amount      int64     `json:"amount"`
	BaseBalance int64     `json:"base_balance"`
	ShareSupply int64     `json:"share_supply"`
	CreatedAt   time.Time `json:"created_at"`
}

// Holder is one account's aggregate position in a vault.
type Holder struct {
	OwnerID     uuid.UUID `json:"owner_id"`
	AccountName string    `json:"account_name"`
	Shares      int64     `json:"shares"`
	Tokens      int64     `json:"tokens"`
}
